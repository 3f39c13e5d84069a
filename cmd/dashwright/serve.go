package main

import (
	"github.com/spf13/cobra"

	"github.com/dashwright/dashwright/internal/cli"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a generated site for local preview",
	Long:  `Starts a local HTTP server over a previously built site directory, with health and metrics endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		port, _ := cmd.Flags().GetString("port")
		debug, _ := cmd.Flags().GetBool("debug")

		return cli.ExecuteServe(cmd.Context(), cli.ServeOptions{
			SiteDir: dir,
			Addr:    ":" + port,
			Debug:   debug,
		})
	},
}

func init() {
	serveCmd.Flags().String("dir", "_site", "Site directory to serve")
	serveCmd.Flags().String("port", "8080", "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}
