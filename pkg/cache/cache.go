package cache

import (
	"sync"
	"time"

	"webiecellar/pkg/logger"
	"webiecellar/pkg/utils"

	"go.uber.org/fx"
)

var (
	Module      = fx.Provide(New)
	errNotFound = utils.ErrCacheMiss
)

type (
	Params struct {
		fx.In
		Logger logger.Logger
	}

	ICache interface {
		SaveObj(key string, value interface{}, ttl time.Duration) error
		GetObj(key string, value interface{}) error
		Delete(key string) error
	}

	entry struct {
		data      []byte
		expiresAt time.Time
	}

	cache struct {
		logger   logger.Logger
		memCache map[string]entry
		m        sync.RWMutex
	}
)

func New(p Params) ICache {
	return &cache{
		logger:   p.Logger,
		memCache: map[string]entry{},
	}
}

func (c *cache) SaveObj(key string, value interface{}, ttl time.Duration) error {
	c.m.Lock()
	defer c.m.Unlock()

	e := entry{data: utils.Marshal(value)}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	c.memCache[key] = e
	return nil
}

func (c *cache) GetObj(key string, value interface{}) error {
	c.m.RLock()
	e, ok := c.memCache[key]
	c.m.RUnlock()

	if !ok {
		return errNotFound
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		c.m.Lock()
		delete(c.memCache, key)
		c.m.Unlock()
		return errNotFound
	}

	return utils.Unmarshal(e.data, value)
}

func (c *cache) Delete(key string) error {
	c.m.Lock()
	defer c.m.Unlock()

	delete(c.memCache, key)
	return nil
}
