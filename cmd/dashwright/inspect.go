package main

import (
	"github.com/spf13/cobra"

	"github.com/dashwright/dashwright/internal/cli"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [definition.yaml]",
	Short: "Print an outline of each page's content tree",
	Long:  `Builds the dashboard without rendering it and prints each page as an outline, either formatted markdown or Mermaid flowchart syntax.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		definition := "dashboard.yaml"
		if len(args) > 0 {
			definition = args[0]
		}

		page, _ := cmd.Flags().GetString("page")
		mermaid, _ := cmd.Flags().GetBool("mermaid")
		noBanner, _ := cmd.Flags().GetBool("no-banner")
		debug, _ := cmd.Flags().GetBool("debug")

		return cli.ExecuteInspect(cli.InspectOptions{
			DefinitionPath: definition,
			Page:           page,
			Mermaid:        mermaid,
			NoBanner:       noBanner,
			Debug:          debug,
		})
	},
}

func init() {
	inspectCmd.Flags().String("page", "", "Limit output to a single page")
	inspectCmd.Flags().Bool("mermaid", false, "Emit Mermaid flowchart syntax instead of an outline")
	inspectCmd.Flags().Bool("no-banner", false, "Suppress the startup banner")
	rootCmd.AddCommand(inspectCmd)
}
