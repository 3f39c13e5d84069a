/*
Package dashwright is a declarative dashboard composition library: a fluent
API for assembling visualizations, text blocks and layout containers into
hierarchical pages, rendered into static HTML by pluggable generators.

# Concept

A dashboard is a sequence of pages; each page is a sequence of content items
added in call order. Items carry an optional slash-delimited group path that
folds the flat sequence into a tree of tab groups, and visualizations may
carry a tabset label that splits comparable charts into automatic sub-tabs.
Parameters resolve through a layered chain (dashboard defaults, page
defaults, per-item overrides) with the innermost concrete value winning.

The core (tree building, merging, defaults resolution) is pure and
synchronous. Data access, chart rendering and site output live behind the
interfaces in pkg/ports, with adapters under pkg/adapters.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/dashwright/dashwright"
		"github.com/dashwright/dashwright/pkg/adapters/htmlgen"
		"github.com/dashwright/dashwright/pkg/dsl"
		"github.com/dashwright/dashwright/pkg/params"
	)

	func main() {
		dash := dashwright.New("Survey Results",
			dashwright.WithDefaults(params.Layer{"color": "teal"}),
		)

		page := dsl.NewPage("Happiness", dsl.WithIcon("smile"))
		page.Viz("histogram", "happiness_score").
			Group("happiness").
			Tabset("Male").
			Filter(`gender == "Male"`)
		page.Viz("histogram", "happiness_score").
			Group("happiness").
			Tabset("Female").
			Filter(`gender == "Female"`)
		dash.AddPage(page)

		gen, err := htmlgen.New("./site")
		if err != nil {
			log.Fatal(err)
		}
		if err := dash.Generate(context.Background(), gen); err != nil {
			log.Fatal(err)
		}
	}
*/
package dashwright
