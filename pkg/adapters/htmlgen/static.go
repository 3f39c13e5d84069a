package htmlgen

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"html/template"
	"sort"

	"github.com/dashwright/dashwright/pkg/domain"
	"github.com/dashwright/dashwright/pkg/ports"
)

// StaticRenderer is the default ports.Renderer: it emits a self-contained
// HTML figure describing the chart and its data slice instead of drawing
// it. Real charting backends replace it through WithRenderer.
type StaticRenderer struct{}

// Render produces the figure fragment for one leaf.
func (r *StaticRenderer) Render(_ context.Context, leaf ports.RenderLeaf) (ports.Artifact, error) {
	viz, ok := leaf.Item.Payload.(domain.Viz)
	if !ok {
		return nil, fmt.Errorf("static renderer only handles visualizations, got %s", leaf.Item.Kind())
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<figure class=\"viz viz-%s\">\n", slug(viz.Type))

	title, _ := leaf.Item.Params["title"].(string)
	if title != "" {
		fmt.Fprintf(&buf, "<figcaption>%s</figcaption>\n", template.HTMLEscapeString(title))
	}

	binding := viz.X
	if viz.Y != "" {
		binding += " × " + viz.Y
	}
	fmt.Fprintf(&buf, "<p class=\"viz-binding\">%s of <code>%s</code></p>\n",
		template.HTMLEscapeString(viz.Type), template.HTMLEscapeString(binding))

	if leaf.Data != nil {
		fmt.Fprintf(&buf, "<p class=\"viz-data\">dataset %s: %d rows",
			template.HTMLEscapeString(leaf.Data.Name()), leaf.Data.Len())
		if viz.Filter != "" {
			fmt.Fprintf(&buf, " where <code>%s</code>", template.HTMLEscapeString(viz.Filter))
		}
		buf.WriteString("</p>\n")
	}

	buf.WriteString("</figure>\n")
	return ports.Artifact(buf.Bytes()), nil
}

// leafKey derives a stable cache key from everything that affects a leaf's
// rendered output: payload, tabset label and effective parameters.
// Parameters are serialized in sorted key order so the hash is
// deterministic.
func leafKey(item *domain.Item) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00", item.Kind(), item.TabsetLabel)
	payload, _ := json.Marshal(item.Payload)
	h.Write(payload)

	keys := make([]string, 0, len(item.Params))
	for k := range item.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(h, "\x00%s=%v", k, item.Params[k])
	}
	return hex.EncodeToString(h.Sum(nil))
}
