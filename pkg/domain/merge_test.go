package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T, items ...*Item) *Tree {
	t.Helper()
	tree := NewTree()
	for _, it := range items {
		require.NoError(t, tree.Insert(it))
	}
	tree.Freeze()
	return tree
}

func TestMerge_Identity(t *testing.T) {
	tree := buildTree(t,
		textItem("one", "demo"),
		textItem("two"),
		textItem("three", "demo", "nested"),
	)
	empty := NewTree()
	empty.Freeze()

	merged, err := Merge(tree, empty)
	require.NoError(t, err)
	assert.Equal(t, trace(t, tree), trace(t, merged))

	merged, err = Merge(empty, tree)
	require.NoError(t, err)
	assert.Equal(t, trace(t, tree), trace(t, merged))
}

func TestMerge_NameCollisionUnion(t *testing.T) {
	left := buildTree(t, textItem("from left", "demo"))
	right := buildTree(t, textItem("from right", "demo"))

	merged, err := Merge(left, right)
	require.NoError(t, err)

	// One "demo" group with both leaves, left then right, never two groups
	// with the same label.
	assert.Equal(t, []string{
		"enter:demo", "item:from left", "item:from right", "leave:demo",
	}, trace(t, merged))
}

func TestMerge_Associativity(t *testing.T) {
	a := buildTree(t,
		textItem("a1", "shared"),
		textItem("a2"),
	)
	b := buildTree(t,
		textItem("b1", "shared", "inner"),
		textItem("b2", "only-b"),
	)
	c := buildTree(t,
		textItem("c1", "shared"),
		textItem("c2", "only-b"),
		textItem("c3"),
	)

	ab, err := Merge(a, b)
	require.NoError(t, err)
	abc1, err := Merge(ab, c)
	require.NoError(t, err)

	bc, err := Merge(b, c)
	require.NoError(t, err)
	abc2, err := Merge(a, bc)
	require.NoError(t, err)

	assert.Equal(t, trace(t, abc1), trace(t, abc2))
}

func TestMerge_InputsUntouched(t *testing.T) {
	left := buildTree(t, textItem("left", "demo"))
	right := buildTree(t, textItem("right", "demo"))
	leftBefore := trace(t, left)
	rightBefore := trace(t, right)

	merged, err := Merge(left, right)
	require.NoError(t, err)

	// Value semantics: composing trees never corrupts them for reuse.
	assert.Equal(t, leftBefore, trace(t, left))
	assert.Equal(t, rightBefore, trace(t, right))

	// Mutating the merged copy must not leak back into an input.
	merged.Root().childGroup("demo").DisplayLabel = "changed"
	assert.Equal(t, "demo", left.Root().childGroup("demo").DisplayLabel)
}

func TestMerge_OutputIsFrozen(t *testing.T) {
	left := buildTree(t, textItem("left"))
	right := buildTree(t, textItem("right"))

	merged, err := Merge(left, right)
	require.NoError(t, err)
	assert.True(t, merged.Frozen())

	var frozenErr *TreeFrozenError
	assert.ErrorAs(t, merged.Insert(textItem("late")), &frozenErr)
}

func TestMerge_PageBreakNeutrality(t *testing.T) {
	left := buildTree(t,
		textItem("first"),
		&Item{Payload: PageBreak{}},
		textItem("second"),
	)
	right := buildTree(t, textItem("third"))

	merged, err := Merge(left, right)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"item:first", "item:<page break>", "item:second", "item:third",
	}, trace(t, merged))
}

func TestMerge_TabsetPathCollision(t *testing.T) {
	left := buildTree(t, vizItem("score", []string{"happiness"}, "Male"))
	// Same name "Male", but as a path segment under "happiness".
	right := buildTree(t, textItem("prose", "happiness", "Male"))

	_, err := Merge(left, right)
	var mergeErr *IncompatibleMergeError
	require.ErrorAs(t, err, &mergeErr)
	assert.Equal(t, "Male", mergeErr.Name)
	assert.Equal(t, []string{"happiness"}, mergeErr.Path)
}

func TestMergeAll(t *testing.T) {
	a := buildTree(t, textItem("a", "g"))
	b := buildTree(t, textItem("b", "g"))
	c := buildTree(t, textItem("c"))

	merged, err := MergeAll(a, b, c)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"enter:g", "item:a", "item:b", "leave:g", "item:c",
	}, trace(t, merged))

	single, err := MergeAll(a)
	require.NoError(t, err)
	assert.True(t, single.Frozen())
	assert.Equal(t, trace(t, a), trace(t, single))

	none, err := MergeAll()
	require.NoError(t, err)
	assert.True(t, none.Frozen())
	assert.Empty(t, trace(t, none))
}
