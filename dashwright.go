package dashwright

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dashwright/dashwright/pkg/domain"
	"github.com/dashwright/dashwright/pkg/dsl"
	"github.com/dashwright/dashwright/pkg/params"
	"github.com/dashwright/dashwright/pkg/ports"
)

// Version is the library version, reported by the CLI.
const Version = "0.1.0"

// Dashboard is the high-level entry point for the library: a named
// collection of pages sharing collection-level defaults, labels and
// datasets.
type Dashboard struct {
	name     string
	logger   *slog.Logger
	defaults params.Layer
	labels   map[string]string
	sources  map[string]ports.DataSource
	pages    []*dsl.PageBuilder
}

// Option defines a functional option for configuring the Dashboard.
type Option func(*Dashboard)

// WithLogger sets a custom structured logger. The core never logs; the
// logger covers page assembly and generation progress.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dashboard) {
		d.logger = logger
	}
}

// WithDefaults sets the collection-level parameter layer. Pages receive a
// clone, so sibling dashboards never share parameter state.
func WithDefaults(layer params.Layer) Option {
	return func(d *Dashboard) {
		d.defaults = layer.Clone()
	}
}

// WithTheme sets the theme as an ordinary collection-level parameter. It is
// resolved through the same chain as any other default, not held as ambient
// state.
func WithTheme(theme string) Option {
	return func(d *Dashboard) {
		if d.defaults == nil {
			d.defaults = params.Layer{}
		}
		d.defaults["theme"] = theme
	}
}

// WithLabels registers display-label overrides applied to every page tree.
func WithLabels(labels map[string]string) Option {
	return func(d *Dashboard) {
		d.labels = labels
	}
}

// WithDataSource registers a dataset under its own name for visualization
// bindings to reference.
func WithDataSource(ds ports.DataSource) Option {
	return func(d *Dashboard) {
		d.sources[ds.Name()] = ds
	}
}

// New creates a Dashboard.
func New(name string, opts ...Option) *Dashboard {
	d := &Dashboard{
		name:    name,
		sources: make(map[string]ports.DataSource),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	d.logger = d.logger.With("dashboard", name)
	return d
}

// Name returns the dashboard title.
func (d *Dashboard) Name() string { return d.name }

// Source looks up a registered dataset by name.
func (d *Dashboard) Source(name string) (ports.DataSource, bool) {
	ds, ok := d.sources[name]
	return ds, ok
}

// AddPage appends a page builder. Pages generate in the order they were
// added.
func (d *Dashboard) AddPage(page *dsl.PageBuilder) *Dashboard {
	d.pages = append(d.pages, page)
	return d
}

// BuiltPage pairs a frozen tree with its page metadata.
type BuiltPage struct {
	Meta ports.PageMeta
	Tree *domain.Tree
}

// Build resolves and freezes every page tree without generating output.
// The collection defaults feed each page's resolution chain; registered
// labels apply to every tree.
func (d *Dashboard) Build() ([]BuiltPage, error) {
	built := make([]BuiltPage, 0, len(d.pages))
	for _, page := range d.pages {
		meta := page.Meta()
		tree, err := page.BuildWith(d.defaults)
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", meta.Name, err)
		}
		tree.ApplyLabels(d.labels)
		built = append(built, BuiltPage{Meta: meta, Tree: tree})
	}
	return built, nil
}

// Generate builds every page and hands the frozen trees to the site
// generator in page order.
func (d *Dashboard) Generate(ctx context.Context, gen ports.SiteGenerator) error {
	pages, err := d.Build()
	if err != nil {
		return err
	}
	for _, page := range pages {
		d.logger.Info("generating page", "page", page.Meta.Name)
		if err := gen.GeneratePage(ctx, page.Meta, page.Tree); err != nil {
			return fmt.Errorf("page %q: %w", page.Meta.Name, err)
		}
	}
	d.logger.Info("dashboard generated", "pages", len(pages))
	return nil
}
