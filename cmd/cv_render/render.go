// Package main implements the cv_render CLI for markdown CV generation.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-renderer/internal/config"
	"github.com/jonathan/cv-renderer/internal/model"
	"github.com/jonathan/cv-renderer/internal/observability"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one document section as markdown",
	Long:  "Loads the workbook from the configured data source, normalizes it, and renders a single section (entries, output, text_block, contact_info, list, or side) to stdout or a file.",
	RunE:  runRender,
}

var (
	renderConfigPath string
	renderFlags      config.Config
	renderKind       string
	renderSection    string
	renderOutputFile string
)

func init() {
	renderCmd.Flags().StringVarP(&renderConfigPath, "config", "c", "", "Path to JSON config file")
	renderCmd.Flags().StringVar(&renderFlags.Source, "source", "", "Data source kind: sheets, csv, html, json, or postgres")
	renderCmd.Flags().StringVar(&renderFlags.Location, "location", "", "Source location: spreadsheet ID, directory, file path, or URL")
	renderCmd.Flags().StringVar(&renderFlags.AuthMode, "auth-mode", "", "Sheets auth mode: api-key, credentials-file, or none")
	renderCmd.Flags().StringVar(&renderFlags.APIKey, "api-key", "", "Google API key (or GOOGLE_API_KEY)")
	renderCmd.Flags().StringVar(&renderFlags.CredentialsFile, "credentials", "", "Path to service-account credentials file")
	renderCmd.Flags().StringVar(&renderFlags.DatabaseURL, "database-url", "", "PostgreSQL connection URL")
	renderCmd.Flags().BoolVar(&renderFlags.PDFMode, "pdf-mode", false, "Strip hyperlink markup for print output")
	renderCmd.Flags().BoolVarP(&renderFlags.Verbose, "verbose", "v", false, "Print detailed debug information")
	renderCmd.Flags().StringVar(&renderKind, "kind", "entries", "Section kind: entries, output, text_block, contact_info, list, or side")
	renderCmd.Flags().StringVar(&renderSection, "section", "", "Section identifier (or text-block label)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(renderConfigPath, renderFlags)
	if err != nil {
		return err
	}

	src, cleanup, err := newSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	m, err := model.Load(ctx, src, model.Options{PDFMode: cfg.PDFMode})
	if err != nil {
		return fmt.Errorf("failed to load CV model: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintEntries(m.Entries())
	}

	var fragment string
	switch renderKind {
	case "entries":
		fragment = m.RenderEntries(renderSection)
	case "output":
		fragment = m.RenderOutput(renderSection)
	case "text_block":
		fragment = m.RenderTextBlock(renderSection)
	case "contact_info":
		fragment = m.RenderContactInfo()
	case "list":
		fragment = m.RenderList(renderSection)
	case "side":
		fragment = m.RenderSide(renderSection)
	default:
		return fmt.Errorf("unknown section kind %q", renderKind)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintFragment(renderKind, renderSection, fragment)
	}

	if renderOutputFile == "" {
		fmt.Fprintln(os.Stdout, fragment)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(renderOutputFile), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(renderOutputFile, []byte(fragment), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
