// Package main provides the entry point for the cv_render CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_render",
	Short: "CV markdown renderer",
	Long:  "cv_render turns tabular CV data (positions, text blocks, contact info, skill lists) into formatted markdown fragments and assembled PDF/HTML documents.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
