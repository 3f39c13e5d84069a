// Package redis implements ports.ArtifactCache on Redis, so repeated site
// generation skips re-rendering leaves whose content hash is unchanged.
package redis

import (
	"context"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/dashwright/dashwright/pkg/ports"
)

// Cache implements ports.ArtifactCache using Redis.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached artifacts.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for artifacts.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a Redis cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "dashwright:artifact:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(cache)
	}
	return cache
}

func (c *Cache) key(hash string) string {
	return c.prefix + hash
}

// Put stores a rendered artifact under its content hash.
func (c *Cache) Put(ctx context.Context, key string, artifact ports.Artifact) error {
	if err := c.client.Set(ctx, c.key(key), []byte(artifact), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save artifact to redis: %w", err)
	}
	return nil
}

// Get retrieves a cached artifact. A missing key reports ok=false, not an
// error.
func (c *Cache) Get(ctx context.Context, key string) (ports.Artifact, bool, error) {
	val, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if err == backend.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get artifact from redis: %w", err)
	}
	return ports.Artifact(val), true, nil
}
