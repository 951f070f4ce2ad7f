package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/cv-renderer/internal/model"
)

// Result holds the artifacts of one document build.
type Result struct {
	RunID        uuid.UUID
	MarkdownPath string
	HTMLPath     string
	PDFPath      string
}

// Options configures a document build.
type Options struct {
	// OutDir receives the build artifacts. Created if missing.
	OutDir string
	// PDF enables the headless-browser print step.
	PDF bool
	// PDFTimeout bounds the print step; zero uses DefaultPDFTimeout.
	PDFTimeout time.Duration
	// Verbose enables browser progress logging.
	Verbose bool
}

// Run assembles the document and writes the markdown, HTML, and optionally
// PDF artifacts, named by a fresh run ID.
func Run(ctx context.Context, m *model.CVModel, layout Layout, opts Options) (*Result, error) {
	runID := uuid.New()

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	markdown, err := Document(ctx, m, layout)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:        runID,
		MarkdownPath: filepath.Join(opts.OutDir, fmt.Sprintf("cv-%s.md", runID)),
	}
	if err := os.WriteFile(result.MarkdownPath, []byte(markdown), 0644); err != nil {
		return nil, fmt.Errorf("failed to write markdown: %w", err)
	}

	htmlDoc, err := HTML(markdown)
	if err != nil {
		return nil, err
	}
	result.HTMLPath = filepath.Join(opts.OutDir, fmt.Sprintf("cv-%s.html", runID))
	if err := os.WriteFile(result.HTMLPath, []byte(htmlDoc), 0644); err != nil {
		return nil, fmt.Errorf("failed to write HTML: %w", err)
	}

	if opts.PDF {
		result.PDFPath = filepath.Join(opts.OutDir, fmt.Sprintf("cv-%s.pdf", runID))
		if err := PDF(ctx, result.HTMLPath, result.PDFPath, opts.PDFTimeout, opts.Verbose); err != nil {
			return nil, err
		}
	}

	return result, nil
}
