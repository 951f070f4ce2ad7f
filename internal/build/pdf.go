package build

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultPDFTimeout bounds a single headless-browser print.
const DefaultPDFTimeout = 60 * time.Second

// PDF prints an HTML page to a PDF file using a headless browser.
// Requires Chrome/Chromium to be installed on the system.
func PDF(ctx context.Context, htmlPath, pdfPath string, timeout time.Duration, verbose bool) error {
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}

	absPath, err := filepath.Abs(htmlPath)
	if err != nil {
		return fmt.Errorf("failed to resolve HTML path: %w", err)
	}

	if verbose {
		log.Printf("[BROWSER] Printing %s to %s", absPath, pdfPath)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdfData []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+absPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfData = data
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("browser printing failed: %w", err)
	}

	if err := os.WriteFile(pdfPath, pdfData, 0644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	if verbose {
		log.Printf("[BROWSER] Wrote PDF: %d bytes", len(pdfData))
	}

	return nil
}
