package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashwright/dashwright/pkg/domain"
	"github.com/dashwright/dashwright/pkg/params"
	"github.com/dashwright/dashwright/pkg/schema"
)

func leafOrder(t *testing.T, tree *domain.Tree) []string {
	t.Helper()
	var out []string
	err := tree.Walk(func(ev domain.Event) error {
		switch ev.Type {
		case domain.EventGroupEnter:
			out = append(out, ">"+ev.Group.Name)
		case domain.EventGroupLeave:
			out = append(out, "<"+ev.Group.Name)
		case domain.EventItem:
			switch p := ev.Item.Payload.(type) {
			case domain.Text:
				out = append(out, p.Markdown)
			case domain.Viz:
				out = append(out, p.Type+":"+p.X)
			default:
				out = append(out, string(ev.Item.Kind()))
			}
		}
		return nil
	})
	require.NoError(t, err)
	return out
}

func TestPageBuilder_SimplePage(t *testing.T) {
	page := NewPage("Overview", WithIcon("house"))

	page.Text("intro")
	page.Viz("histogram", "happiness_score").
		Group("happiness").
		Param("bins", 20)
	page.Divider()
	page.Text("details").Group("happiness")

	tree, err := page.Build()
	require.NoError(t, err)
	assert.True(t, tree.Frozen())

	assert.Equal(t, []string{
		"intro",
		">happiness", "histogram:happiness_score", "details", "<happiness",
		"divider",
	}, leafOrder(t, tree))

	meta := page.Meta()
	assert.Equal(t, "Overview", meta.Name)
	assert.Equal(t, "house", meta.Icon)
}

func TestPageBuilder_TabsetSplit(t *testing.T) {
	page := NewPage("Happiness")
	page.Viz("histogram", "score").Group("happiness").Tabset("Male").Filter(`gender == "Male"`)
	page.Viz("histogram", "score").Group("happiness").Tabset("Female").Filter(`gender == "Female"`)

	tree, err := page.Build()
	require.NoError(t, err)

	assert.Equal(t, []string{
		">happiness",
		">Male", "histogram:score", "<Male",
		">Female", "histogram:score", "<Female",
		"<happiness",
	}, leafOrder(t, tree))
}

func TestPageBuilder_DefaultsChain(t *testing.T) {
	page := NewPage("Stats", WithDefaults(params.Layer{"bins": 20}))
	page.Viz("histogram", "age").Param("color", "red")

	tree, err := page.BuildWith(params.Layer{"color": "blue", "bins": 30})
	require.NoError(t, err)

	var resolved map[string]any
	require.NoError(t, tree.Walk(func(ev domain.Event) error {
		if ev.Type == domain.EventItem {
			resolved = ev.Item.Params
		}
		return nil
	}))

	assert.Equal(t, "red", resolved["color"]) // item override wins
	assert.Equal(t, 20, resolved["bins"])     // page layer beats collection
}

func TestPageBuilder_ErrorsAccumulate(t *testing.T) {
	page := NewPage("Broken")
	page.Viz("histogram", "x").Group(" / ")           // invalid path
	page.Viz("histogram", "x").Param("colour", "red") // unknown parameter
	page.Text("prose").Tabset("Male")                 // tabset on non-viz

	_, err := page.Build()
	require.Error(t, err)

	var pathErr *domain.InvalidPathError
	assert.ErrorAs(t, err, &pathErr)
	var unknown *schema.UnknownParameterError
	assert.ErrorAs(t, err, &unknown)
	assert.Equal(t, "color", unknown.Suggestion)
	assert.Len(t, schema.ValidationErrors(err), 3)
}

func TestPageBuilder_BuildTwiceIsIndependent(t *testing.T) {
	page := NewPage("Reuse")
	page.Text("one").Group("g")

	first, err := page.Build()
	require.NoError(t, err)
	second, err := page.Build()
	require.NoError(t, err)

	// The trees own their nodes; mutating one leaves the other intact.
	first.Root().Children = nil
	assert.Equal(t, []string{">g", "one", "<g"}, leafOrder(t, second))
}

func TestPageBuilder_PageBreakIgnoresGroup(t *testing.T) {
	page := NewPage("Paged")
	page.Text("a").Group("demo")
	page.PageBreak().Group("demo")
	page.Text("b").Group("demo")

	tree, err := page.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{
		">demo", "a", "b", "<demo",
		"page_break",
	}, leafOrder(t, tree))
}

func TestCombine_MergesSharedGroups(t *testing.T) {
	left := NewPage("Left")
	left.Text("from left").Group("demo")
	right := NewPage("Right")
	right.Text("from right").Group("demo")

	lt, err := left.Build()
	require.NoError(t, err)
	rt, err := right.Build()
	require.NoError(t, err)

	combined, err := Combine(lt, rt)
	require.NoError(t, err)
	assert.Equal(t, []string{
		">demo", "from left", "from right", "<demo",
	}, leafOrder(t, combined))
}

func TestPageBuilder_Labels(t *testing.T) {
	page := NewPage("Labelled").Labels(map[string]string{"demo": "Demographics"})
	page.Text("x").Group("demo")

	tree, err := page.Build()
	require.NoError(t, err)
	assert.Equal(t, "Demographics", tree.Root().Children[0].(*domain.Group).DisplayLabel)
}
