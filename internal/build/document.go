// Package build assembles rendered CV fragments into a full markdown
// document and converts it to HTML and PDF.
package build

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-renderer/internal/model"
	"github.com/jonathan/cv-renderer/internal/render"
)

// Section places one rendered fragment in the document layout.
type Section struct {
	// Kind selects the render entry point: entries, output, text_block,
	// contact_info, list, or side.
	Kind string `json:"kind"`
	// ID is the section identifier (or text-block label) to render.
	ID string `json:"id"`
	// Heading, when set, precedes the fragment as a level-2 heading.
	Heading string `json:"heading,omitempty"`
}

// Layout describes the full document: a title plus ordered sections.
type Layout struct {
	Title    string    `json:"title,omitempty"`
	Sections []Section `json:"sections"`
}

// Document renders every layout section and assembles them in layout order.
// Sections render in parallel; the model is read-only after construction, so
// concurrent renders are safe and their relative order does not matter.
func Document(ctx context.Context, m *model.CVModel, layout Layout) (string, error) {
	fragments := make([]string, len(layout.Sections))

	g, _ := errgroup.WithContext(ctx)
	for i, section := range layout.Sections {
		g.Go(func() error {
			fragment, err := renderSection(m, section)
			if err != nil {
				return err
			}
			fragments[i] = fragment
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("failed to render document: %w", err)
	}

	var sb strings.Builder
	if layout.Title != "" {
		sb.WriteString("# " + layout.Title + "\n")
		sb.WriteString(render.BlockSeparator)
	}
	for i, section := range layout.Sections {
		if section.Heading != "" {
			sb.WriteString("## " + section.Heading + "\n\n")
		}
		sb.WriteString(fragments[i])
		sb.WriteString(render.BlockSeparator)
	}

	// The link list, when present, closes the document.
	if links := m.RenderLinkList(); links != "" {
		sb.WriteString("## Links\n\n")
		sb.WriteString(links)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// renderSection dispatches one layout section to its render entry point.
func renderSection(m *model.CVModel, section Section) (string, error) {
	switch section.Kind {
	case "entries":
		return m.RenderEntries(section.ID), nil
	case "output":
		return m.RenderOutput(section.ID), nil
	case "text_block":
		return m.RenderTextBlock(section.ID), nil
	case "contact_info":
		return m.RenderContactInfo(), nil
	case "list":
		return m.RenderList(section.ID), nil
	case "side":
		return m.RenderSide(section.ID), nil
	default:
		return "", fmt.Errorf("unknown section kind %q", section.Kind)
	}
}
