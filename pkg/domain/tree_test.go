package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textItem(label string, path ...string) *Item {
	return &Item{Payload: Text{Markdown: label}, GroupPath: path}
}

func vizItem(x string, path []string, tabset string) *Item {
	return &Item{
		Payload:     Viz{Type: "histogram", X: x},
		GroupPath:   path,
		TabsetLabel: tabset,
	}
}

// trace flattens a traversal into strings like "enter:a", "item:hello",
// "leave:a" so tests can compare structure and order in one assertion.
func trace(t *testing.T, tree *Tree) []string {
	t.Helper()
	var out []string
	err := tree.Walk(func(ev Event) error {
		switch ev.Type {
		case EventGroupEnter:
			out = append(out, "enter:"+ev.Group.Name)
		case EventGroupLeave:
			out = append(out, "leave:"+ev.Group.Name)
		case EventItem:
			out = append(out, "item:"+itemLabel(ev.Item))
		}
		return nil
	})
	require.NoError(t, err)
	return out
}

func itemLabel(it *Item) string {
	switch p := it.Payload.(type) {
	case Text:
		return p.Markdown
	case Viz:
		return p.X
	case PageBreak:
		return "<page break>"
	default:
		return string(it.Kind())
	}
}

func TestTree_InsertPreservesOrder(t *testing.T) {
	tree := NewTree()
	require.NoError(t, tree.Insert(textItem("one", "a")))
	require.NoError(t, tree.Insert(textItem("two")))
	require.NoError(t, tree.Insert(textItem("three", "a")))
	require.NoError(t, tree.Insert(textItem("four", "b")))
	require.NoError(t, tree.Insert(textItem("five", "a")))

	// Each group appears once, at the position of its first referencing
	// insert; leaves keep insertion order within their group.
	assert.Equal(t, []string{
		"enter:a", "item:one", "item:three", "item:five", "leave:a",
		"item:two",
		"enter:b", "item:four", "leave:b",
	}, trace(t, tree))
}

func TestTree_PathIdempotence(t *testing.T) {
	tree := NewTree()
	require.NoError(t, tree.Insert(textItem("parent", "a")))
	require.NoError(t, tree.Insert(textItem("child", "a", "b")))

	// "a/b" after "a" nests b under a, never as a sibling.
	assert.Equal(t, []string{
		"enter:a",
		"item:parent",
		"enter:b", "item:child", "leave:b",
		"leave:a",
	}, trace(t, tree))
}

func TestTree_TabsetLabelSubGrouping(t *testing.T) {
	tree := NewTree()
	require.NoError(t, tree.Insert(vizItem("male_score", []string{"happiness"}, "Male")))
	require.NoError(t, tree.Insert(vizItem("female_score", []string{"happiness"}, "Female")))

	assert.Equal(t, []string{
		"enter:happiness",
		"enter:Male", "item:male_score", "leave:Male",
		"enter:Female", "item:female_score", "leave:Female",
		"leave:happiness",
	}, trace(t, tree))

	happiness := tree.Root().childGroup("happiness")
	require.NotNil(t, happiness)
	assert.False(t, happiness.Tabset)
	assert.True(t, happiness.IsTabsetParent())
	male := happiness.childGroup("Male")
	require.NotNil(t, male)
	assert.True(t, male.Tabset)
}

func TestTree_PageBreakAlwaysAtRoot(t *testing.T) {
	tree := NewTree()
	require.NoError(t, tree.Insert(textItem("intro", "demo")))
	pageBreak := &Item{Payload: PageBreak{}, GroupPath: []string{"demo"}}
	require.NoError(t, tree.Insert(pageBreak))
	require.NoError(t, tree.Insert(textItem("outro", "demo")))

	// The marker sits between root children even though the surrounding
	// items share a group; its own path is ignored.
	assert.Equal(t, []string{
		"enter:demo", "item:intro", "item:outro", "leave:demo",
		"item:<page break>",
	}, trace(t, tree))
}

func TestTree_FreezeRejectsInsert(t *testing.T) {
	tree := NewTree()
	require.NoError(t, tree.Insert(textItem("before")))
	tree.Freeze()

	err := tree.Insert(textItem("after"))
	var frozenErr *TreeFrozenError
	require.ErrorAs(t, err, &frozenErr)
	assert.Equal(t, "insert", frozenErr.Op)
	assert.Equal(t, []string{"item:before"}, trace(t, tree))
}

func TestTree_ApplyLabels(t *testing.T) {
	tree := NewTree()
	require.NoError(t, tree.Insert(textItem("x", "demo", "trends")))
	require.NoError(t, tree.Insert(textItem("y", "other", "demo")))
	tree.Freeze()

	// Label application is allowed on frozen trees: it changes labels, not
	// shape. Every matching name gets the label, at any depth.
	tree.ApplyLabels(map[string]string{"demo": "Demographics"})

	top := tree.Root().childGroup("demo")
	require.NotNil(t, top)
	assert.Equal(t, "Demographics", top.DisplayLabel)
	assert.Equal(t, "trends", top.childGroup("trends").DisplayLabel)

	nested := tree.Root().childGroup("other").childGroup("demo")
	require.NotNil(t, nested)
	assert.Equal(t, "Demographics", nested.DisplayLabel)
}

func TestTree_WalkStopsOnError(t *testing.T) {
	tree := NewTree()
	for i := 0; i < 5; i++ {
		require.NoError(t, tree.Insert(textItem(fmt.Sprintf("item-%d", i))))
	}

	seen := 0
	err := tree.Walk(func(ev Event) error {
		seen++
		if seen == 2 {
			return fmt.Errorf("stop here")
		}
		return nil
	})
	assert.EqualError(t, err, "stop here")
	assert.Equal(t, 2, seen)
}
