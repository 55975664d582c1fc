package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the talentd version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Printf("talentd %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
