// Package htmlgen implements ports.SiteGenerator: it turns frozen content
// trees into static HTML pages. Markdown content goes through goldmark,
// visualization leaves are delegated to the configured ports.Renderer, and
// root-level page breaks split a tree into numbered output files.
package htmlgen

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/dashwright/dashwright/pkg/domain"
	"github.com/dashwright/dashwright/pkg/ports"
	"github.com/dashwright/dashwright/pkg/registry"
)

// Generator writes one HTML file per page segment into its output
// directory.
type Generator struct {
	outDir    string
	renderer  ports.Renderer
	renderers *registry.Registry
	cache     ports.ArtifactCache
	sources   map[string]ports.DataSource
	logger    *slog.Logger
	md        goldmark.Markdown
	tmpl      *template.Template
}

// Option configures a Generator.
type Option func(*Generator)

// WithRenderer sets the visualization renderer. Defaults to the static
// figure renderer.
func WithRenderer(r ports.Renderer) Option {
	return func(g *Generator) {
		g.renderer = r
	}
}

// WithRendererRegistry routes visualizations to a renderer selected by
// their "backend" parameter. Backends missing from the registry fall back
// to the default renderer.
func WithRendererRegistry(r *registry.Registry) Option {
	return func(g *Generator) {
		g.renderers = r
	}
}

// WithCache plugs in an artifact cache so unchanged leaves skip rendering.
func WithCache(c ports.ArtifactCache) Option {
	return func(g *Generator) {
		g.cache = c
	}
}

// WithDataSource registers a dataset for visualization bindings to
// reference by name.
func WithDataSource(ds ports.DataSource) Option {
	return func(g *Generator) {
		g.sources[ds.Name()] = ds
	}
}

// WithLogger sets a structured logger for generation progress.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New creates a Generator writing into outDir, creating the directory if
// needed.
func New(outDir string, opts ...Option) (*Generator, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	g := &Generator{
		outDir:  outDir,
		sources: make(map[string]ports.DataSource),
		md:      goldmark.New(),
		tmpl:    template.Must(template.New("page").Parse(pageTemplate)),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.renderer == nil {
		g.renderer = &StaticRenderer{}
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return g, nil
}

// GeneratePage renders the frozen tree into one or more HTML files. A
// root-level PageBreak starts a new numbered file; groups become sections
// (tab containers when they hold sub-groups); every other leaf renders by
// kind.
func (g *Generator) GeneratePage(ctx context.Context, meta ports.PageMeta, tree *domain.Tree) error {
	segments := splitOnPageBreaks(tree.Root().Children)

	for i, segment := range segments {
		var body bytes.Buffer
		for _, node := range segment {
			if err := g.renderNode(ctx, &body, node); err != nil {
				return err
			}
		}

		name := pageFileName(meta.Name, i)
		if err := g.writePage(name, meta, i, len(segments), body.Bytes()); err != nil {
			return err
		}
		g.logger.Info("page written", "page", meta.Name, "file", name)
	}
	return nil
}

// splitOnPageBreaks divides the root child sequence into ordered segments,
// dropping the markers themselves.
func splitOnPageBreaks(children []domain.Node) [][]domain.Node {
	segments := [][]domain.Node{nil}
	for _, child := range children {
		if item, ok := child.(*domain.Item); ok && item.Kind() == domain.KindPageBreak {
			segments = append(segments, nil)
			continue
		}
		segments[len(segments)-1] = append(segments[len(segments)-1], child)
	}
	return segments
}

func pageFileName(page string, segment int) string {
	name := slug(page)
	if segment > 0 {
		name = fmt.Sprintf("%s-%d", name, segment+1)
	}
	return name + ".html"
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, s)
	return strings.Trim(s, "-")
}

func (g *Generator) renderNode(ctx context.Context, w *bytes.Buffer, node domain.Node) error {
	switch n := node.(type) {
	case *domain.Group:
		return g.renderGroup(ctx, w, n)
	case *domain.Item:
		return g.renderItem(ctx, w, n)
	}
	return nil
}

func (g *Generator) renderGroup(ctx context.Context, w *bytes.Buffer, group *domain.Group) error {
	class := "group"
	if group.IsTabsetParent() {
		class = "tabset"
	}
	fmt.Fprintf(w, "<section class=%q data-group=%q>\n", class, group.Name)
	fmt.Fprintf(w, "<h2>%s</h2>\n", template.HTMLEscapeString(group.DisplayLabel))
	for _, child := range group.Children {
		if err := g.renderNode(ctx, w, child); err != nil {
			return err
		}
	}
	w.WriteString("</section>\n")
	return nil
}

func (g *Generator) renderItem(ctx context.Context, w *bytes.Buffer, item *domain.Item) error {
	switch payload := item.Payload.(type) {
	case domain.Viz:
		return g.renderViz(ctx, w, item, payload)
	case domain.Text:
		return g.markdown(w, payload.Markdown)
	case domain.Callout:
		fmt.Fprintf(w, "<aside class=\"callout callout-%s\">\n", slug(payload.Variant))
		if payload.Title != "" {
			fmt.Fprintf(w, "<strong>%s</strong>\n", template.HTMLEscapeString(payload.Title))
		}
		if err := g.markdown(w, payload.Markdown); err != nil {
			return err
		}
		w.WriteString("</aside>\n")
	case domain.Image:
		w.WriteString("<figure class=\"image\">\n")
		fmt.Fprintf(w, "<img src=%q alt=%q>\n", payload.Src, payload.Alt)
		if payload.Caption != "" {
			fmt.Fprintf(w, "<figcaption>%s</figcaption>\n", template.HTMLEscapeString(payload.Caption))
		}
		w.WriteString("</figure>\n")
	case domain.Accordion:
		open := ""
		if v, ok := item.Params["open"].(bool); ok && v {
			open = " open"
		}
		fmt.Fprintf(w, "<details%s>\n<summary>%s</summary>\n", open, template.HTMLEscapeString(payload.Title))
		if err := g.markdown(w, payload.Markdown); err != nil {
			return err
		}
		w.WriteString("</details>\n")
	case domain.Card:
		w.WriteString("<div class=\"card\">\n")
		if payload.Title != "" {
			fmt.Fprintf(w, "<h3>%s</h3>\n", template.HTMLEscapeString(payload.Title))
		}
		if err := g.markdown(w, payload.Markdown); err != nil {
			return err
		}
		w.WriteString("</div>\n")
	case domain.Divider:
		w.WriteString("<hr>\n")
	case domain.ValueBoxRow:
		w.WriteString("<div class=\"value-boxes\">\n")
		for _, box := range payload.Boxes {
			fmt.Fprintf(w, "<div class=\"value-box\" style=\"--box-color: %s\">\n", box.Color)
			fmt.Fprintf(w, "<span class=\"value\">%s</span>\n", template.HTMLEscapeString(box.Value))
			fmt.Fprintf(w, "<span class=\"title\">%s</span>\n", template.HTMLEscapeString(box.Title))
			w.WriteString("</div>\n")
		}
		w.WriteString("</div>\n")
	case domain.PageBreak:
		// Handled at the root split; one nested here would be a core bug,
		// not a rendering concern.
	}
	return nil
}

func (g *Generator) renderViz(ctx context.Context, w *bytes.Buffer, item *domain.Item, viz domain.Viz) error {
	leaf := ports.RenderLeaf{Item: item}
	if viz.Dataset != "" {
		source, ok := g.sources[viz.Dataset]
		if !ok {
			return fmt.Errorf("visualization references unknown dataset %q", viz.Dataset)
		}
		filtered, err := source.Filter(viz.Filter)
		if err != nil {
			return fmt.Errorf("dataset %q: %w", viz.Dataset, err)
		}
		leaf.Data = filtered
	}

	key := leafKey(item)
	if g.cache != nil {
		if artifact, ok, err := g.cache.Get(ctx, key); err != nil {
			return err
		} else if ok {
			w.Write(artifact)
			return nil
		}
	}

	artifact, err := g.rendererFor(item).Render(ctx, leaf)
	if err != nil {
		return fmt.Errorf("render %s of %q: %w", viz.Type, viz.X, err)
	}
	if g.cache != nil {
		if err := g.cache.Put(ctx, key, artifact); err != nil {
			return err
		}
	}
	w.Write(artifact)
	return nil
}

// rendererFor picks the renderer for a visualization's backend parameter,
// falling back to the default when none is registered.
func (g *Generator) rendererFor(item *domain.Item) ports.Renderer {
	if g.renderers == nil {
		return g.renderer
	}
	backend, _ := item.Params["backend"].(string)
	if backend == "" {
		return g.renderer
	}
	renderer, err := g.renderers.Lookup(backend)
	if err != nil {
		return g.renderer
	}
	return renderer
}

func (g *Generator) markdown(w *bytes.Buffer, source string) error {
	if err := g.md.Convert([]byte(source), w); err != nil {
		return fmt.Errorf("markdown conversion failed: %w", err)
	}
	return nil
}

type pageData struct {
	Title    string
	Icon     string
	Segment  int
	Segments int
	Body     template.HTML
}

func (g *Generator) writePage(filename string, meta ports.PageMeta, segment, segments int, body []byte) error {
	f, err := os.Create(filepath.Join(g.outDir, filename))
	if err != nil {
		return fmt.Errorf("failed to create page file: %w", err)
	}
	defer f.Close()

	return g.tmpl.Execute(f, pageData{
		Title:    meta.Name,
		Icon:     meta.Icon,
		Segment:  segment + 1,
		Segments: segments,
		Body:     template.HTML(body),
	})
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<header>
<h1>{{if .Icon}}<span class="icon" data-icon="{{.Icon}}"></span> {{end}}{{.Title}}</h1>
{{if gt .Segments 1}}<nav class="pagination">Part {{.Segment}} of {{.Segments}}</nav>{{end}}
</header>
<main>
{{.Body}}</main>
</body>
</html>
`
