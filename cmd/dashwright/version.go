package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dashwright/dashwright"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dashwright",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dashwright version %s\n", strings.TrimSpace(dashwright.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
