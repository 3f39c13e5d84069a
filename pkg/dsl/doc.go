/*
Package dsl provides the fluent builder for composing dashboard pages
programmatically, as an alternative to external YAML definitions.

A PageBuilder accumulates content items through chained calls; nothing is
validated or placed until Build, which resolves every item's effective
parameters, folds the sequence into a content tree and returns it frozen.
Errors from bad group paths or unknown parameters accumulate in the builder
and surface together from Build, so a chain never panics mid-expression.

Example usage:

	page := dsl.NewPage("Overview", dsl.WithIcon("house"))

	page.Text("# Welcome\nA quick look at the survey.")

	page.Viz("histogram", "happiness_score").
		Group("happiness").
		Tabset("Male").
		Filter(`gender == "Male"`).
		Param("bins", 20)

	page.Viz("histogram", "happiness_score").
		Group("happiness").
		Tabset("Female").
		Filter(`gender == "Female"`)

	tree, err := page.Build()
	// tree is frozen; hand it to a ports.SiteGenerator or merge it
	// with another page via Combine.

Two independently built trees combine with Combine (the named form of the
documented "+" composition), which merges same-named groups instead of
duplicating tabs.
*/
package dsl
