package source

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// htmlFetchTimeout bounds the single HTTP fetch of a published workbook.
const htmlFetchTimeout = 30 * time.Second

// HTMLSource reads workbook tables from an HTML export of the spreadsheet
// (e.g. a sheet published to the web), one <table id="name"> per table.
// The location may be a URL or a local file path.
type HTMLSource struct {
	location string
	doc      *goquery.Document
}

// NewHTMLSource fetches and parses the HTML export once; ReadTable then works
// off the parsed document.
func NewHTMLSource(ctx context.Context, location string) (*HTMLSource, error) {
	doc, err := loadDocument(ctx, location)
	if err != nil {
		return nil, err
	}
	return &HTMLSource{location: location, doc: doc}, nil
}

// loadDocument reads the export from a URL or the local filesystem.
func loadDocument(ctx context.Context, location string) (*goquery.Document, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		fetchCtx, cancel := context.WithTimeout(ctx, htmlFetchTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, location, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch workbook export: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("workbook export returned status %d", resp.StatusCode)
		}

		doc, err := goquery.NewDocumentFromReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse workbook export: %w", err)
		}
		return doc, nil
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook export: %w", err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workbook export: %w", err)
	}
	return doc, nil
}

// ReadTable extracts the table with the matching id. The first row (th or td
// cells) is the header; document row order is preserved.
func (s *HTMLSource) ReadTable(ctx context.Context, name string) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sel := s.doc.Find(fmt.Sprintf("table#%s", name))
	if sel.Length() == 0 {
		return nil, &Error{
			Location: s.location,
			Table:    name,
			Message:  "table not found in workbook export",
		}
	}

	var records [][]string
	sel.First().Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var record []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			record = append(record, strings.TrimSpace(cell.Text()))
		})
		if len(record) > 0 {
			records = append(records, record)
		}
	})

	return tableFromCells(name, records), nil
}
