package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashwright/dashwright/pkg/ports"
)

type fakeRenderer struct {
	id string
}

func (r *fakeRenderer) Render(_ context.Context, _ ports.RenderLeaf) (ports.Artifact, error) {
	return ports.Artifact(r.id), nil
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()
	renderer := &fakeRenderer{id: "a"}
	reg.Register("static", renderer)

	got, err := reg.Lookup("static")
	require.NoError(t, err)
	assert.Same(t, renderer, got)
}

func TestRegistryUnknownBackend(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Lookup("webgl")
	assert.ErrorContains(t, err, `no renderer registered for backend "webgl"`)
}

func TestRegistryOverwrite(t *testing.T) {
	reg := NewRegistry()
	reg.Register("static", &fakeRenderer{id: "old"})
	replacement := &fakeRenderer{id: "new"}
	reg.Register("static", replacement)

	got, err := reg.Lookup("static")
	require.NoError(t, err)
	assert.Same(t, replacement, got)
}
