/*
Package domain defines the content model for dashwright dashboards: Items
(charts, text blocks, callouts, ...), Groups (tab/folder nesting levels) and
the Tree that holds them.

A Tree is built by appending Items in call order. Each Item may carry a
slash-delimited group path; inserting it creates or reuses the chain of
Groups along that path, so independently added items that share a path end up
as siblings under one Group. A Visualization may additionally carry a tabset
label, which opens a synthetic value-keyed sub-Group under its path; this is
how comparable charts (e.g. split by subgroup filter) become side-by-side
sub-tabs without manual nesting.

Trees are mutable while building and frozen afterwards. Merge combines two
frozen trees into a fresh one without touching its inputs, unifying Groups
that share a name and appending everything else in order.

The package performs no I/O and never logs; every failure is a typed error
returned to the caller.
*/
package domain
