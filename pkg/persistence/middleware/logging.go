package middleware

import (
	"context"
	"log/slog"

	"github.com/dashwright/dashwright/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.ArtifactCache
	logger *slog.Logger
}

// NewLoggingMiddleware creates a middleware that logs cache traffic at debug
// level, useful for diagnosing why a build is re-rendering artifacts.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.ArtifactCache) ports.ArtifactCache {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) Put(ctx context.Context, key string, artifact ports.Artifact) error {
	err := m.next.Put(ctx, key, artifact)
	if err != nil {
		m.logger.Warn("cache put failed", "key", key, "error", err)
		return err
	}
	m.logger.Debug("cache put", "key", key, "bytes", len(artifact))
	return nil
}

func (m *loggingMiddleware) Get(ctx context.Context, key string) (ports.Artifact, bool, error) {
	artifact, ok, err := m.next.Get(ctx, key)
	switch {
	case err != nil:
		m.logger.Warn("cache get failed", "key", key, "error", err)
	case ok:
		m.logger.Debug("cache hit", "key", key, "bytes", len(artifact))
	default:
		m.logger.Debug("cache miss", "key", key)
	}
	return artifact, ok, err
}
