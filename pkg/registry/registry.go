package registry

import (
	"fmt"
	"sync"

	"github.com/dashwright/dashwright/pkg/ports"
)

// Registry manages the available visualization renderers, keyed by backend
// name (the value of an item's "backend" parameter).
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]ports.Renderer
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]ports.Renderer),
	}
}

// Register adds a renderer to the registry.
// If a renderer with the same backend name exists, it is overwritten.
func (r *Registry) Register(backend string, renderer ports.Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[backend] = renderer
}

// Lookup returns the renderer for a backend name.
// Returns an error if no renderer is registered for it.
func (r *Registry) Lookup(backend string) (ports.Renderer, error) {
	r.mu.RLock()
	renderer, ok := r.renderers[backend]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("no renderer registered for backend %q", backend)
	}
	return renderer, nil
}
