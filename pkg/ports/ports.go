package ports

import (
	"context"

	"github.com/dashwright/dashwright/pkg/domain"
)

// DataSource is an opaque tabular dataset handle. The core never inspects
// rows; it threads the handle and an optional predicate through to the leaf
// for the renderer to apply.
type DataSource interface {
	// Name identifies the dataset for cache keys and diagnostics.
	Name() string
	// Columns returns the column names in declaration order.
	Columns() []string
	// Len returns the row count.
	Len() int
	// Filter returns a new handle restricted to rows matching the
	// predicate. The receiver is left untouched.
	Filter(predicate string) (DataSource, error)
}

// RenderLeaf is one finalized visualization handed to a Renderer: the item
// (kind, payload, effective parameters) plus its resolved dataset, already
// filtered by the item's predicate. Data is nil for items without a dataset
// binding.
type RenderLeaf struct {
	Item *domain.Item
	Data DataSource
}

// Artifact is the opaque output of rendering one leaf, an HTML fragment in
// the shipped adapters.
type Artifact []byte

// Renderer turns one frozen leaf into a visual artifact. Calls are
// sequenced in tree order by the generator; implementations that want to
// parallelize must snapshot the frozen tree first.
type Renderer interface {
	Render(ctx context.Context, leaf RenderLeaf) (Artifact, error)
}

// PageMeta is the per-page metadata handed to a site generator alongside
// the frozen tree.
type PageMeta struct {
	Name   string
	Icon   string
	Navbar string // navbar placement: "left", "right" or "" for default
}

// SiteGenerator consumes a frozen tree plus page metadata and produces the
// on-disk output. The tree's traversal iterator is its sole input surface.
type SiteGenerator interface {
	GeneratePage(ctx context.Context, meta PageMeta, tree *domain.Tree) error
}

// ArtifactCache stores rendered artifacts keyed by content hash, so
// regenerating an unchanged dashboard skips re-rendering its leaves.
type ArtifactCache interface {
	Get(ctx context.Context, key string) (Artifact, bool, error)
	Put(ctx context.Context, key string, artifact Artifact) error
}
