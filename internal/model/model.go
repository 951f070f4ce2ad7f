// Package model provides the CVModel aggregate: all six workbook tables
// loaded and normalized once, with one render entry point per section kind.
package model

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/cv-renderer/internal/normalize"
	"github.com/jonathan/cv-renderer/internal/render"
	"github.com/jonathan/cv-renderer/internal/source"
	"github.com/jonathan/cv-renderer/internal/types"
)

// Options configures CVModel construction.
type Options struct {
	// PDFMode strips hyperlink markup from rendered fragments, replacing
	// each link with a numbered superscript collected for RenderLinkList.
	PDFMode bool

	// Renderer overrides the default SectionRenderer.
	Renderer *render.SectionRenderer

	// Out receives output from the Print variants. Defaults to stdout.
	Out io.Writer
}

// CVModel holds the normalized workbook tables. It is read-only after Load;
// independent sections may render concurrently.
type CVModel struct {
	entries     []types.NormalizedEntry
	textBlocks  []types.TextBlock
	contactInfo []types.ContactInfoItem
	lists       []types.ListItem
	output      []types.OutputEntry
	side        []types.SideEntry

	pdfMode  bool
	renderer *render.SectionRenderer
	links    *render.LinkCollector
	out      io.Writer
}

// Load reads all six tables from the source and normalizes them eagerly.
// A failed fetch or missing table aborts construction; per-row anomalies are
// absorbed with defaults during normalization.
func Load(ctx context.Context, src source.Source, opts Options) (*CVModel, error) {
	tables := make(map[string]*source.Table, len(source.RequiredTables))
	for _, name := range source.RequiredTables {
		table, err := src.ReadTable(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to load table %q: %w", name, err)
		}
		tables[name] = table
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = render.New()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	return &CVModel{
		entries:     normalize.Entries(tables[source.TableEntries]),
		textBlocks:  normalize.TextBlocks(tables[source.TableTextBlocks]),
		contactInfo: normalize.ContactInfo(tables[source.TableContactInfo]),
		lists:       normalize.Lists(tables[source.TableList]),
		output:      normalize.Output(tables[source.TableOutput]),
		side:        normalize.Side(tables[source.TableSide]),
		pdfMode:     opts.PDFMode,
		renderer:    renderer,
		links:       &render.LinkCollector{},
		out:         out,
	}, nil
}

// Entries returns the normalized entries, newest first.
func (m *CVModel) Entries() []types.NormalizedEntry {
	return m.entries
}

// RenderEntries renders the in-resume entries of a section as markdown.
// An unknown section renders as an empty fragment.
func (m *CVModel) RenderEntries(section string) string {
	return m.sanitize(m.renderer.Entries(m.entries, section))
}

// RenderOutput renders the in-resume output rows of a section.
func (m *CVModel) RenderOutput(section string) string {
	return m.sanitize(m.renderer.Output(m.output, section))
}

// RenderTextBlock renders the text block with the given label, or an empty
// fragment when no label matches.
func (m *CVModel) RenderTextBlock(label string) string {
	return m.sanitize(m.renderer.TextBlock(m.textBlocks, label))
}

// RenderContactInfo renders every contact line.
func (m *CVModel) RenderContactInfo() string {
	return m.sanitize(m.renderer.ContactInfo(m.contactInfo))
}

// RenderList renders the in-resume list items of a section.
func (m *CVModel) RenderList(section string) string {
	return m.sanitize(m.renderer.List(m.lists, section))
}

// RenderSide renders the in-resume side fragments of a section.
func (m *CVModel) RenderSide(section string) string {
	return m.sanitize(m.renderer.Side(m.side, section))
}

// RenderLinkList renders the numbered list of links collected in PDF mode.
func (m *CVModel) RenderLinkList() string {
	return m.links.LinkList()
}

// sanitize applies PDF-mode link stripping. Link collection is the one
// side channel of rendering; the collector is its own synchronization.
func (m *CVModel) sanitize(fragment string) string {
	if !m.pdfMode {
		return fragment
	}
	return m.links.Sanitize(fragment)
}

// Print variants write the fragment and return the model so section calls can
// be chained. Chaining is purely ergonomic; no call mutates the model.

// PrintEntries writes a rendered entries section.
func (m *CVModel) PrintEntries(section string) *CVModel {
	fmt.Fprintln(m.out, m.RenderEntries(section))
	return m
}

// PrintOutput writes a rendered output section.
func (m *CVModel) PrintOutput(section string) *CVModel {
	fmt.Fprintln(m.out, m.RenderOutput(section))
	return m
}

// PrintTextBlock writes a text block.
func (m *CVModel) PrintTextBlock(label string) *CVModel {
	fmt.Fprintln(m.out, m.RenderTextBlock(label))
	return m
}

// PrintContactInfo writes the contact info lines.
func (m *CVModel) PrintContactInfo() *CVModel {
	fmt.Fprintln(m.out, m.RenderContactInfo())
	return m
}

// PrintList writes a rendered list section.
func (m *CVModel) PrintList(section string) *CVModel {
	fmt.Fprintln(m.out, m.RenderList(section))
	return m
}

// PrintSide writes a rendered side section.
func (m *CVModel) PrintSide(section string) *CVModel {
	fmt.Fprintln(m.out, m.RenderSide(section))
	return m
}

// PrintLinkList writes the collected link list.
func (m *CVModel) PrintLinkList() *CVModel {
	fmt.Fprintln(m.out, m.RenderLinkList())
	return m
}
