// Package main provides the entry point for the talentd matching engine.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talentd",
	Short: "Talent matching and rediscovery engine",
	Long:  "talentd scores candidate pools against job requirements across eight dimensions, detects rediscovery signals for overlooked candidates, and serves the results over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
