package logger

import (
	"context"
	crand "crypto/rand"
	"encoding/hex"
	"time"

	"go.uber.org/zap"
)

const logIDKey = "logID"

type logCtxKey struct{}

var logCtx logCtxKey

type logContext struct {
	StartTime time.Time
	LogID     string
}

func (lgCtx *logContext) toFields() []zap.Field {
	if lgCtx == nil {
		return nil
	}
	return []zap.Field{zap.String(logIDKey, lgCtx.LogID)}
}

func newLogID() string {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// Context attaches a fresh logID to ctx unless one is already present.
func (l *logger) Context(ctx context.Context) context.Context {
	_, ok := ctx.Value(&logCtx).(*logContext)
	if ok {
		return ctx
	}

	lgCtx := &logContext{StartTime: time.Now(), LogID: newLogID()}
	return context.WithValue(ctx, &logCtx, lgCtx)
}

func getAttrs(ctx context.Context) []zap.Field {
	lgCtx, _ := ctx.Value(&logCtx).(*logContext)
	if lgCtx == nil {
		return nil
	}
	return lgCtx.toFields()
}
