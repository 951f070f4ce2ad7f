package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-renderer/internal/build"
	"github.com/jonathan/cv-renderer/internal/config"
	"github.com/jonathan/cv-renderer/internal/model"
	"github.com/jonathan/cv-renderer/internal/observability"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the full CV document",
	Long:  "Loads the workbook, renders every section of the configured layout, and writes markdown and HTML artifacts, optionally printing a PDF via a headless browser.",
	RunE:  runBuild,
}

var (
	buildConfigPath string
	buildFlags      config.Config
	buildPDF        bool
)

func init() {
	buildCmd.Flags().StringVarP(&buildConfigPath, "config", "c", "", "Path to JSON config file (required: carries the document layout)")
	buildCmd.Flags().StringVar(&buildFlags.Source, "source", "", "Data source kind: sheets, csv, html, json, or postgres")
	buildCmd.Flags().StringVar(&buildFlags.Location, "location", "", "Source location: spreadsheet ID, directory, file path, or URL")
	buildCmd.Flags().StringVar(&buildFlags.AuthMode, "auth-mode", "", "Sheets auth mode: api-key, credentials-file, or none")
	buildCmd.Flags().StringVar(&buildFlags.APIKey, "api-key", "", "Google API key (or GOOGLE_API_KEY)")
	buildCmd.Flags().StringVar(&buildFlags.CredentialsFile, "credentials", "", "Path to service-account credentials file")
	buildCmd.Flags().StringVar(&buildFlags.DatabaseURL, "database-url", "", "PostgreSQL connection URL")
	buildCmd.Flags().StringVar(&buildFlags.OutDir, "out-dir", "", "Directory for build artifacts (default \"out\")")
	buildCmd.Flags().BoolVar(&buildFlags.PDFMode, "pdf-mode", false, "Strip hyperlink markup for print output")
	buildCmd.Flags().BoolVar(&buildPDF, "pdf", false, "Print the document to PDF (requires Chrome/Chromium)")
	buildCmd.Flags().BoolVarP(&buildFlags.Verbose, "verbose", "v", false, "Print detailed debug information")

	if err := buildCmd.MarkFlagRequired("config"); err != nil {
		panic(fmt.Sprintf("failed to mark config flag as required: %v", err))
	}

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(buildConfigPath, buildFlags)
	if err != nil {
		return err
	}
	if cfg.Layout == nil || len(cfg.Layout.Sections) == 0 {
		return fmt.Errorf("config error: build requires a 'layout' with at least one section")
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "out"
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

	printer := observability.NewPrinter(os.Stderr)
	if cfg.Verbose {
		printer.PrintEntries(m.Entries())
	}

	result, err := build.Run(ctx, m, *cfg.Layout, build.Options{
		OutDir:  cfg.OutDir,
		PDF:     buildPDF,
		Verbose: cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to build document: %w", err)
	}

	printer.PrintBuildResult(result.RunID.String(), result.MarkdownPath, result.HTMLPath, result.PDFPath)
	return nil
}
