package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/cv-renderer/internal/config"
	"github.com/jonathan/cv-renderer/internal/source"
)

// newSource constructs the configured data-source backend. The returned
// cleanup func releases backend resources and is always non-nil.
func newSource(ctx context.Context, cfg *config.Config) (source.Source, func(), error) {
	noop := func() {}

	switch cfg.Source {
	case "sheets":
		mode := source.AuthMode(cfg.AuthMode)
		if mode == "" {
			mode = source.AuthNone
		}
		secret := cfg.APIKey
		if mode == source.AuthCredentialsFile {
			secret = cfg.CredentialsFile
		}
		src, err := source.NewSheetsSource(ctx, cfg.Location, mode, secret)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create sheets source: %w", err)
		}
		return src, noop, nil

	case "csv":
		return source.NewCSVSource(cfg.Location), noop, nil

	case "html":
		src, err := source.NewHTMLSource(ctx, cfg.Location)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create html source: %w", err)
		}
		return src, noop, nil

	case "json":
		src, err := source.NewJSONSource(cfg.Location)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create json source: %w", err)
		}
		return src, noop, nil

	case "postgres":
		src, err := source.NewPostgresSource(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create postgres source: %w", err)
		}
		return src, src.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown source kind %q", cfg.Source)
	}
}

// loadConfig merges the optional config file with CLI flag values. Flags win.
func loadConfig(configPath string, flags config.Config) (*config.Config, error) {
	cfg := flags
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = flags.MergeWithDefaults(*fileCfg)
	}

	// Env fallback for the API key, so it stays out of config files.
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GOOGLE_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
