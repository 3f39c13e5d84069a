package dsl

import (
	"fmt"

	"github.com/dashwright/dashwright/pkg/domain"
	"github.com/dashwright/dashwright/pkg/params"
	"github.com/dashwright/dashwright/pkg/ports"
	"github.com/dashwright/dashwright/pkg/schema"
)

// PageBuilder accumulates the ordered item sequence of one page.
type PageBuilder struct {
	name     string
	icon     string
	navbar   string
	defaults params.Layer
	labels   map[string]string
	items    []*domain.Item
	errs     []error
}

// PageOption configures a PageBuilder at creation time.
type PageOption func(*PageBuilder)

// WithIcon sets the page's navbar icon.
func WithIcon(icon string) PageOption {
	return func(p *PageBuilder) {
		p.icon = icon
	}
}

// WithNavbar sets the navbar placement ("left" or "right").
func WithNavbar(placement string) PageOption {
	return func(p *PageBuilder) {
		p.navbar = placement
	}
}

// WithDefaults sets the page-level parameter layer. It sits between the
// collection defaults and per-item overrides in the resolution chain.
func WithDefaults(layer params.Layer) PageOption {
	return func(p *PageBuilder) {
		p.defaults = layer.Clone()
	}
}

// NewPage creates an empty page builder.
func NewPage(name string, opts ...PageOption) *PageBuilder {
	p := &PageBuilder{name: name}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Meta returns the page metadata handed to site generators.
func (p *PageBuilder) Meta() ports.PageMeta {
	return ports.PageMeta{Name: p.name, Icon: p.icon, Navbar: p.navbar}
}

// Labels registers display-label overrides applied to the built tree.
// Keys match group names (path segments or tabset-label values) at any
// depth.
func (p *PageBuilder) Labels(labels map[string]string) *PageBuilder {
	if p.labels == nil {
		p.labels = make(map[string]string, len(labels))
	}
	for k, v := range labels {
		p.labels[k] = v
	}
	return p
}

func (p *PageBuilder) add(payload domain.Payload) *ItemBuilder {
	item := &domain.Item{Payload: payload}
	p.items = append(p.items, item)
	return &ItemBuilder{page: p, item: item}
}

// Viz adds a visualization of the given type bound to the x variable.
func (p *PageBuilder) Viz(vizType, x string) *ItemBuilder {
	return p.add(domain.Viz{Type: vizType, X: x})
}

// Text adds a markdown text block.
func (p *PageBuilder) Text(markdown string) *ItemBuilder {
	return p.add(domain.Text{Markdown: markdown})
}

// Callout adds an admonition block ("note", "tip", "warning", ...).
func (p *PageBuilder) Callout(variant, markdown string) *ItemBuilder {
	return p.add(domain.Callout{Variant: variant, Markdown: markdown})
}

// Image adds a static image.
func (p *PageBuilder) Image(src string) *ItemBuilder {
	return p.add(domain.Image{Src: src})
}

// Accordion adds a collapsible markdown section.
func (p *PageBuilder) Accordion(title, markdown string) *ItemBuilder {
	return p.add(domain.Accordion{Title: title, Markdown: markdown})
}

// Card adds a bordered markdown panel.
func (p *PageBuilder) Card(title, markdown string) *ItemBuilder {
	return p.add(domain.Card{Title: title, Markdown: markdown})
}

// Divider adds a horizontal rule.
func (p *PageBuilder) Divider() *ItemBuilder {
	return p.add(domain.Divider{})
}

// PageBreak adds a root-level pagination marker. Group calls on the
// returned builder have no placement effect; the marker always attaches at
// root.
func (p *PageBuilder) PageBreak() *ItemBuilder {
	return p.add(domain.PageBreak{})
}

// ValueBoxes adds a horizontal row of summary boxes.
func (p *PageBuilder) ValueBoxes(boxes ...domain.ValueBox) *ItemBuilder {
	return p.add(domain.ValueBoxRow{Boxes: boxes})
}

// AddItem appends an externally constructed item (e.g. one loaded from a
// content directory) to the page sequence.
func (p *PageBuilder) AddItem(item *domain.Item) *PageBuilder {
	p.items = append(p.items, item)
	return p
}

// Err returns the accumulated builder errors without building.
func (p *PageBuilder) Err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return &schema.AggregateError{Errors: p.errs}
}

// Build is BuildWith with no collection-level defaults.
func (p *PageBuilder) Build() (*domain.Tree, error) {
	return p.BuildWith(nil)
}

// BuildWith resolves every item's effective parameters against the chain
// collection -> page -> item, folds the item sequence into a tree in call
// order, applies registered labels and returns the tree frozen. The builder
// stays usable: building twice yields two independent trees.
func (p *PageBuilder) BuildWith(collection params.Layer) (*domain.Tree, error) {
	errs := append([]error(nil), p.errs...)
	tree := domain.NewTree()

	for _, item := range p.items {
		resolved, err := params.Resolve(item.Kind(), collection, p.defaults, item.LocalParams)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		placed := item.Clone()
		placed.Params = resolved
		if err := tree.Insert(placed); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return nil, &schema.AggregateError{Errors: errs}
	}

	tree.ApplyLabels(p.labels)
	tree.Freeze()
	return tree, nil
}

// Combine merges already-built trees left to right into a new frozen tree.
// It is the named form of the documented "+" page composition.
func Combine(trees ...*domain.Tree) (*domain.Tree, error) {
	return domain.MergeAll(trees...)
}

// ItemBuilder configures the most recently added item.
type ItemBuilder struct {
	page *PageBuilder
	item *domain.Item
}

// Group places the item under a slash-delimited group path. A path with no
// usable segments records an InvalidPathError surfaced at Build.
func (ib *ItemBuilder) Group(path string) *ItemBuilder {
	segments, err := domain.ParsePath(path)
	if err != nil {
		ib.page.errs = append(ib.page.errs, err)
		return ib
	}
	ib.item.GroupPath = segments
	return ib
}

// Tabset sets the secondary value-keyed grouping label. Only visualizations
// split into sub-tabs; calling this on any other kind records an error.
func (ib *ItemBuilder) Tabset(label string) *ItemBuilder {
	if ib.item.Kind() != domain.KindVisualization {
		ib.page.errs = append(ib.page.errs,
			fmt.Errorf("tabset label %q: only visualizations support tabset grouping, not %s", label, ib.item.Kind()))
		return ib
	}
	ib.item.TabsetLabel = label
	return ib
}

// Param sets one explicit parameter override. params.Unset is a valid
// value and behaves like the key was never set.
func (ib *ItemBuilder) Param(name string, value any) *ItemBuilder {
	if ib.item.LocalParams == nil {
		ib.item.LocalParams = make(map[string]any)
	}
	ib.item.LocalParams[name] = value
	return ib
}

// Params sets several overrides at once.
func (ib *ItemBuilder) Params(overrides map[string]any) *ItemBuilder {
	for name, value := range overrides {
		ib.Param(name, value)
	}
	return ib
}

// Title sets the item's title: the "title" parameter for visualizations,
// the payload title for callouts, cards and accordions.
func (ib *ItemBuilder) Title(title string) *ItemBuilder {
	switch p := ib.item.Payload.(type) {
	case domain.Viz:
		return ib.Param("title", title)
	case domain.Callout:
		p.Title = title
		ib.item.Payload = p
	case domain.Card:
		p.Title = title
		ib.item.Payload = p
	case domain.Accordion:
		p.Title = title
		ib.item.Payload = p
	default:
		ib.page.errs = append(ib.page.errs,
			fmt.Errorf("title: %s items have no title", ib.item.Kind()))
	}
	return ib
}

func (ib *ItemBuilder) mutateViz(op string, fn func(*domain.Viz)) *ItemBuilder {
	viz, ok := ib.item.Payload.(domain.Viz)
	if !ok {
		ib.page.errs = append(ib.page.errs,
			fmt.Errorf("%s: item is %s, not a visualization", op, ib.item.Kind()))
		return ib
	}
	fn(&viz)
	ib.item.Payload = viz
	return ib
}

// Y binds the visualization's y variable.
func (ib *ItemBuilder) Y(column string) *ItemBuilder {
	return ib.mutateViz("y binding", func(v *domain.Viz) { v.Y = column })
}

// Dataset names the dataset the visualization draws from.
func (ib *ItemBuilder) Dataset(name string) *ItemBuilder {
	return ib.mutateViz("dataset binding", func(v *domain.Viz) { v.Dataset = name })
}

// Filter sets the opaque row predicate handed to the data source.
func (ib *ItemBuilder) Filter(predicate string) *ItemBuilder {
	return ib.mutateViz("filter", func(v *domain.Viz) { v.Filter = predicate })
}
