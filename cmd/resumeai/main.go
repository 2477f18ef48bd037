// Package main provides the entry point for the ResumeAI service and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumeai",
	Short: "AI resume builder service",
	Long:  "ResumeAI aggregates career sources (free text, uploaded documents, public repositories), generates a structured resume through a generative model, and renders it through twenty layout variants with PDF, DOCX, and email export.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
