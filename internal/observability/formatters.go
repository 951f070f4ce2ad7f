// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/cv-renderer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintEntries outputs a human-readable summary of the normalized entries.
func (p *Printer) PrintEntries(entries []types.NormalizedEntry) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Entries:  %d\n", len(entries)))

	inResume := 0
	sections := make(map[string]int)
	for _, e := range entries {
		if e.InResume {
			inResume++
		}
		sections[e.Section]++
	}
	sb.WriteString(fmt.Sprintf("In CV:    %d\n", inResume))

	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("  %-12s %d\n", name+":", sections[name]))
	}
	sb.WriteString("\n")

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		sb.WriteString(fmt.Sprintf("  • %s (%s)\n", e.Title, e.Timeline))
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(entries)-maxItemsToShow))
	}

	p.printBox("Normalized Entries", strings.TrimRight(sb.String(), "\n"))
}

// PrintTable outputs a one-line summary of a loaded table.
func (p *Printer) PrintTable(name string, rows int) {
	fmt.Fprintf(p.out, "Loaded table %-14s %d rows\n", name+":", rows)
}

// PrintFragment outputs a summary of a rendered section fragment.
func (p *Printer) PrintFragment(kind, id string, fragment string) {
	blocks := 0
	if strings.TrimSpace(fragment) != "" {
		blocks = strings.Count(fragment, "\n\n\n\n") + 1
	}
	fmt.Fprintf(p.out, "Rendered %s %q: %d blocks, %d bytes\n", kind, id, blocks, len(fragment))
}

// PrintBuildResult outputs the artifact paths of a completed build.
func (p *Printer) PrintBuildResult(runID string, paths ...string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:  %s\n", runID))
	for _, path := range paths {
		if path != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", path))
		}
	}
	p.printBox("Build Complete", strings.TrimRight(sb.String(), "\n"))
}
