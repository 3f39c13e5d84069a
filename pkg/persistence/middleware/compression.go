package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"

	"github.com/dashwright/dashwright/pkg/ports"
)

type compressionMiddleware struct {
	next  ports.ArtifactCache
	level int
}

// NewCompressionMiddleware creates a middleware that gzips artifacts before
// they reach the underlying cache. Rendered fragments are mostly markup and
// compress well, which matters for remote caches.
func NewCompressionMiddleware(level int) Middleware {
	if level < gzip.HuffmanOnly || level > gzip.BestCompression {
		panic(fmt.Sprintf("invalid gzip level %d", level))
	}
	return func(next ports.ArtifactCache) ports.ArtifactCache {
		return &compressionMiddleware{next: next, level: level}
	}
}

func (m *compressionMiddleware) Put(ctx context.Context, key string, artifact ports.Artifact) error {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, m.level)
	if err != nil {
		return err
	}
	if _, err := zw.Write(artifact); err != nil {
		return fmt.Errorf("compressing artifact: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compressing artifact: %w", err)
	}
	return m.next.Put(ctx, key, buf.Bytes())
}

func (m *compressionMiddleware) Get(ctx context.Context, key string) (ports.Artifact, bool, error) {
	compressed, ok, err := m.next.Get(ctx, key)
	if err != nil || !ok {
		return nil, ok, err
	}

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, false, fmt.Errorf("decompressing artifact %q: %w", key, err)
	}
	defer zr.Close()

	plain, err := io.ReadAll(zr)
	if err != nil {
		return nil, false, fmt.Errorf("decompressing artifact %q: %w", key, err)
	}
	return plain, true, nil
}
