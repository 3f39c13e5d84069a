package domain

import "fmt"

// InvalidPathError reports a group path that is non-empty but reduces to
// zero usable segments (e.g. "/", "  /  ").
type InvalidPathError struct {
	Raw string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid group path %q: no usable segments", e.Raw)
}

// TreeFrozenError reports a structural mutation attempted on a frozen tree.
type TreeFrozenError struct {
	Op string
}

func (e *TreeFrozenError) Error() string {
	return fmt.Sprintf("tree is frozen: %s is not allowed after freeze", e.Op)
}

// IncompatibleMergeError reports two same-named sibling Groups that cannot
// be unified because one is a tabset-label synthetic group and the other is
// a path-segment group.
type IncompatibleMergeError struct {
	Name string
	Path []string
}

func (e *IncompatibleMergeError) Error() string {
	return fmt.Sprintf("cannot merge group %q at %v: tabset group and path group share a name", e.Name, e.Path)
}
