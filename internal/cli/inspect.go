package cli

import (
	"fmt"

	"github.com/dashwright/dashwright/internal/presentation/graph"
	"github.com/dashwright/dashwright/internal/presentation/tui"
)

// InspectOptions contains all the configuration for the inspect command.
type InspectOptions struct {
	DefinitionPath string
	Page           string
	Mermaid        bool
	NoBanner       bool
	Debug          bool
}

// ExecuteInspect builds the dashboard's trees and prints an outline of each
// page, either glamour-rendered markdown or Mermaid flowchart syntax.
func ExecuteInspect(opts InspectOptions) error {
	logger := createLogger(opts.Debug)

	def, err := LoadDefinition(opts.DefinitionPath)
	if err != nil {
		return err
	}

	board, err := Assemble(def, logger)
	if err != nil {
		return err
	}

	pages, err := board.Build()
	if err != nil {
		return err
	}

	if !opts.NoBanner && !opts.Mermaid {
		tui.PrintBanner()
	}

	render := tui.NewRenderer()
	shown := 0
	for _, page := range pages {
		if opts.Page != "" && page.Meta.Name != opts.Page {
			continue
		}
		shown++

		if opts.Mermaid {
			fmt.Println(graph.GenerateMermaid(page.Meta.Name, page.Tree))
			continue
		}

		outline := tui.Outline(page.Meta.Name, page.Tree)
		pretty, err := render(outline)
		if err != nil {
			// Fall back to the raw markdown if the terminal renderer fails.
			fmt.Println(outline)
			continue
		}
		fmt.Print(pretty)
	}

	if opts.Page != "" && shown == 0 {
		return fmt.Errorf("dashboard has no page named %q", opts.Page)
	}
	return nil
}
