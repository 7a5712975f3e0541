package flowstate

import (
	"context"
	"sync"
	"time"

	"go.uber.org/fx"

	"webiecellar/internal/structs"
)

var Module = fx.Provide(New)

// Sessions are abandoned when the user navigates away without ending the
// flow; idle entries are evicted lazily after this long.
const sessionIdleTTL = 2 * time.Hour

type Repo interface {
	Get(ctx context.Context, id string) (structs.FlowSession, error)
	Set(ctx context.Context, session structs.FlowSession) error
	Delete(ctx context.Context, id string) error
}

type repo struct {
	m        sync.RWMutex
	sessions map[string]structs.FlowSession
}

func New() Repo {
	return &repo{
		sessions: map[string]structs.FlowSession{},
	}
}

func (r *repo) Get(ctx context.Context, id string) (structs.FlowSession, error) {
	r.m.RLock()
	sess, ok := r.sessions[id]
	r.m.RUnlock()

	if !ok {
		return structs.FlowSession{}, structs.ErrSessionNotFound
	}
	if time.Since(sess.UpdatedAt) > sessionIdleTTL {
		r.m.Lock()
		delete(r.sessions, id)
		r.m.Unlock()
		return structs.FlowSession{}, structs.ErrSessionNotFound
	}
	return sess, nil
}

func (r *repo) Set(ctx context.Context, session structs.FlowSession) error {
	session.UpdatedAt = time.Now()

	r.m.Lock()
	defer r.m.Unlock()
	r.sessions[session.ID] = session
	return nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	r.m.Lock()
	defer r.m.Unlock()
	delete(r.sessions, id)
	return nil
}
