package domain

// Node is either a *Group or an *Item. Every child slot in a tree holds one.
type Node interface {
	isNode()
}

func (*Group) isNode() {}
func (*Item) isNode()  {}

// Group is one level of tab/folder nesting. Name is the raw path segment
// (or tabset-label value, when Tabset is true) and is unique among siblings.
// DisplayLabel defaults to Name and can be replaced via Tree.ApplyLabels.
type Group struct {
	Name         string
	DisplayLabel string
	Tabset       bool
	Children     []Node
}

func newGroup(name string, tabset bool) *Group {
	return &Group{
		Name:         name,
		DisplayLabel: name,
		Tabset:       tabset,
	}
}

// IsTabsetParent reports whether this group renders as a tab container:
// true iff it has at least one Group child.
func (g *Group) IsTabsetParent() bool {
	for _, child := range g.Children {
		if _, ok := child.(*Group); ok {
			return true
		}
	}
	return false
}

// childGroup returns the direct child Group with the given name, or nil.
func (g *Group) childGroup(name string) *Group {
	for _, child := range g.Children {
		if sub, ok := child.(*Group); ok && sub.Name == name {
			return sub
		}
	}
	return nil
}

// clone deep-copies the group and its entire subtree.
func (g *Group) clone() *Group {
	dup := &Group{
		Name:         g.Name,
		DisplayLabel: g.DisplayLabel,
		Tabset:       g.Tabset,
	}
	if g.Children != nil {
		dup.Children = make([]Node, 0, len(g.Children))
		for _, child := range g.Children {
			switch c := child.(type) {
			case *Group:
				dup.Children = append(dup.Children, c.clone())
			case *Item:
				dup.Children = append(dup.Children, c.Clone())
			}
		}
	}
	return dup
}
