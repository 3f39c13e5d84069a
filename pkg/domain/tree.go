package domain

// EventType classifies traversal events emitted by Tree.Walk.
type EventType string

const (
	// EventGroupEnter is emitted before a group's children are visited.
	EventGroupEnter EventType = "group_enter"
	// EventItem is emitted for each leaf item.
	EventItem EventType = "item"
	// EventGroupLeave is emitted after a group's children are visited.
	EventGroupLeave EventType = "group_leave"
)

// Event is one step of a depth-first traversal. Group is set for
// group_enter/group_leave, Item for item events. Depth is 0 for root-level
// children.
type Event struct {
	Type  EventType
	Group *Group
	Item  *Item
	Depth int
}

// Tree is the rooted content structure of one page. The root group is
// unnamed; its ordered children are top-level Groups and root-level Items.
// A tree is mutable while building and frozen once built or merged.
type Tree struct {
	root   *Group
	frozen bool
}

// NewTree creates an empty, mutable tree.
func NewTree() *Tree {
	return &Tree{root: newGroup("", false)}
}

// Root exposes the root group for read-only traversal by generators.
// Callers must not mutate the returned structure.
func (t *Tree) Root() *Group { return t.root }

// Frozen reports whether the tree still accepts inserts.
func (t *Tree) Frozen() bool { return t.frozen }

// Freeze marks the tree immutable. Further Insert calls fail with
// TreeFrozenError. Freezing twice is a no-op.
func (t *Tree) Freeze() { t.frozen = true }

// Insert appends the item following its group path, creating any missing
// Groups along the way with DisplayLabel = Name. Within every group,
// children keep the exact order Insert was called in; that order determines
// final render order and survives label application and merging.
//
// A PageBreak attaches at root regardless of path. An item with a tabset
// label lands in a synthetic value-keyed sub-Group of its deepest path
// group, producing automatic sub-tabs for items that share a path but
// differ in subset label.
func (t *Tree) Insert(item *Item) error {
	if t.frozen {
		return &TreeFrozenError{Op: "insert"}
	}

	if item.Kind() == KindPageBreak {
		t.root.Children = append(t.root.Children, item)
		return nil
	}

	parent := t.root
	for _, segment := range item.GroupPath {
		next := parent.childGroup(segment)
		if next == nil {
			next = newGroup(segment, false)
			parent.Children = append(parent.Children, next)
		}
		parent = next
	}

	if item.TabsetLabel != "" {
		sub := parent.childGroup(item.TabsetLabel)
		if sub == nil {
			sub = newGroup(item.TabsetLabel, true)
			parent.Children = append(parent.Children, sub)
		}
		parent = sub
	}

	parent.Children = append(parent.Children, item)
	return nil
}

// ApplyLabels replaces the DisplayLabel of every group whose Name matches a
// key in the mapping. It applies to in-progress and frozen trees alike: the
// pass changes labels only, never shape. Same-named groups at different
// depths all receive the label; the mapping carries no depth information.
func (t *Tree) ApplyLabels(labels map[string]string) {
	if len(labels) == 0 {
		return
	}
	applyLabels(t.root, labels)
}

func applyLabels(g *Group, labels map[string]string) {
	for _, child := range g.Children {
		if sub, ok := child.(*Group); ok {
			if label, ok := labels[sub.Name]; ok {
				sub.DisplayLabel = label
			}
			applyLabels(sub, labels)
		}
	}
}

// Walk runs a depth-first, order-preserving traversal, calling fn for each
// group-enter, item and group-leave event. The unnamed root emits no
// events; traversal starts at its children. A non-nil error from fn stops
// the walk and is returned.
func (t *Tree) Walk(fn func(Event) error) error {
	return walkChildren(t.root, 0, fn)
}

func walkChildren(g *Group, depth int, fn func(Event) error) error {
	for _, child := range g.Children {
		switch c := child.(type) {
		case *Group:
			if err := fn(Event{Type: EventGroupEnter, Group: c, Depth: depth}); err != nil {
				return err
			}
			if err := walkChildren(c, depth+1, fn); err != nil {
				return err
			}
			if err := fn(Event{Type: EventGroupLeave, Group: c, Depth: depth}); err != nil {
				return err
			}
		case *Item:
			if err := fn(Event{Type: EventItem, Item: c, Depth: depth}); err != nil {
				return err
			}
		}
	}
	return nil
}
