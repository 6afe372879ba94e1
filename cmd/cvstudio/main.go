// Package main provides the entry point for the CV Studio HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvstudio",
	Short: "CV Studio HTTP API Server",
	Long:  "CV Studio stores structured resume documents, scores them against ATS-style parsing heuristics and renders matching HTML previews and PDF exports via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
