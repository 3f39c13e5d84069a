package middleware

import "github.com/dashwright/dashwright/pkg/ports"

// Middleware allows wrapping an ArtifactCache to add behavior.
type Middleware func(ports.ArtifactCache) ports.ArtifactCache

// Chain applies middlewares to a cache, outermost first.
func Chain(cache ports.ArtifactCache, mws ...Middleware) ports.ArtifactCache {
	for i := len(mws) - 1; i >= 0; i-- {
		cache = mws[i](cache)
	}
	return cache
}
