package main

import (
	"github.com/spf13/cobra"

	"github.com/dashwright/dashwright/internal/cli"
)

var buildCmd = &cobra.Command{
	Use:   "build [definition.yaml]",
	Short: "Build the static site from a dashboard definition",
	Long:  `Loads a dashboard definition, optionally folds in a markdown content directory, and writes the rendered site to the output directory.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		definition := "dashboard.yaml"
		if len(args) > 0 {
			definition = args[0]
		}

		outDir, _ := cmd.Flags().GetString("out")
		contentDir, _ := cmd.Flags().GetString("content")
		contentPage, _ := cmd.Flags().GetString("content-page")
		redisURL, _ := cmd.Flags().GetString("redis")
		debug, _ := cmd.Flags().GetBool("debug")

		return cli.ExecuteBuild(cmd.Context(), cli.BuildOptions{
			DefinitionPath: definition,
			ContentDir:     contentDir,
			ContentPage:    contentPage,
			OutDir:         outDir,
			RedisURL:       redisURL,
			Debug:          debug,
		})
	},
}

func init() {
	buildCmd.Flags().String("out", "_site", "Output directory for the generated site")
	buildCmd.Flags().String("content", "", "Directory of markdown content to fold into the dashboard")
	buildCmd.Flags().String("content-page", "notes", "Page name for items loaded from the content directory")
	buildCmd.Flags().String("redis", "", "Redis address for the artifact cache (e.g. localhost:6379)")
	rootCmd.AddCommand(buildCmd)
}
