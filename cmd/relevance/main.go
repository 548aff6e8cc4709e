// Package main provides the entry point for the resume relevance CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "relevance",
	Short: "Resume relevance scoring and ranking",
	Long:  "Relevance scores candidate resumes against job descriptions by fusing lexical skill overlap with embedding-based semantic similarity, and ranks whole candidate pools against one job.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
