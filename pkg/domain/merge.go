package domain

// Merge combines two trees into a new frozen tree. Neither input is
// modified; every node in the result is a fresh copy, so the inputs stay
// valid for reuse elsewhere.
//
// Groups merge by name: a group in b whose name already exists among the
// accumulated siblings is unified into the existing one, recursively, so
// tab groups shared across independently built pages combine into a single
// tab. Groups without a match are appended with their full subtree, in b's
// order. Leaf children never merge by identity; b's leaves are appended
// after a's existing children at the same level. PageBreak markers are
// ordinary root-level leaves here; they neither partition nor reset the
// merge.
//
// The operation is associative: Merge(Merge(a,b),c) and Merge(a,Merge(b,c))
// produce identical traversal sequences, which is what makes left-to-right
// composition across many pages well defined.
func Merge(a, b *Tree) (*Tree, error) {
	out := &Tree{root: a.root.clone()}
	if err := mergeGroup(out.root, b.root, nil); err != nil {
		return nil, err
	}
	out.frozen = true
	return out, nil
}

// MergeAll folds Merge over the trees left to right. An empty call returns
// a new frozen empty tree; a single tree is deep-copied and frozen so the
// result never aliases its input.
func MergeAll(trees ...*Tree) (*Tree, error) {
	if len(trees) == 0 {
		empty := NewTree()
		empty.Freeze()
		return empty, nil
	}
	out := &Tree{root: trees[0].root.clone(), frozen: true}
	for _, t := range trees[1:] {
		merged, err := Merge(out, t)
		if err != nil {
			return nil, err
		}
		out = merged
	}
	return out, nil
}

func mergeGroup(dst, src *Group, path []string) error {
	for _, child := range src.Children {
		switch c := child.(type) {
		case *Group:
			existing := dst.childGroup(c.Name)
			if existing == nil {
				dst.Children = append(dst.Children, c.clone())
				continue
			}
			if existing.Tabset != c.Tabset {
				return &IncompatibleMergeError{Name: c.Name, Path: path}
			}
			if err := mergeGroup(existing, c, append(path, c.Name)); err != nil {
				return err
			}
		case *Item:
			dst.Children = append(dst.Children, c.Clone())
		}
	}
	return nil
}
