package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-renderer/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON workbook file",
	Long:  "Validates a JSON workbook file against the workbook schema and reports every violated field.",
	RunE:  runValidate,
}

var validateInputFile string

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to JSON workbook file (required)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(validateInputFile)
	if err != nil {
		return fmt.Errorf("failed to read workbook file: %w", err)
	}

	if err := schemas.ValidateWorkbook(string(data)); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Workbook is valid: %s\n", validateInputFile)
	return nil
}
