package render

import (
	"strings"
	"text/template"

	"github.com/jonathan/cv-renderer/internal/normalize"
	"github.com/jonathan/cv-renderer/internal/types"
)

// SectionRenderer substitutes normalized rows into per-kind templates and
// joins the resulting blocks. It holds no entry state and never mutates its
// inputs; a renderer is safe for concurrent use once constructed.
type SectionRenderer struct {
	templates map[Kind]*template.Template
}

// New returns a SectionRenderer with the default template for every kind.
func New() *SectionRenderer {
	r := &SectionRenderer{templates: make(map[Kind]*template.Template, len(defaultTemplates))}
	for kind, text := range defaultTemplates {
		// Defaults are compile-checked by tests; a panic here means a
		// broken constant, not bad input.
		r.templates[kind] = template.Must(parse(kind, text))
	}
	return r
}

// Override replaces the template for one kind. The default remains in place
// when parsing fails.
func (r *SectionRenderer) Override(kind Kind, text string) error {
	tmpl, err := parse(kind, text)
	if err != nil {
		return &TemplateError{Kind: kind, Message: "failed to parse override", Cause: err}
	}
	r.templates[kind] = tmpl
	return nil
}

// parse compiles a section template. Missing placeholders render as empty
// strings, never as errors.
func parse(kind Kind, text string) (*template.Template, error) {
	return template.New(string(kind)).Option("missingkey=zero").Parse(text)
}

// Entries renders every in-resume entry of a section, in collection order.
// A section matching zero rows renders as an empty fragment.
func (r *SectionRenderer) Entries(entries []types.NormalizedEntry, section string) string {
	var blocks []map[string]string
	for _, e := range entries {
		if !e.InResume || e.Section != section {
			continue
		}
		blocks = append(blocks, entryValues(e))
	}
	return r.renderBlocks(KindEntries, blocks)
}

// entryValues computes every placeholder for an entry before substitution,
// keeping conditional logic out of the template text. The loc slot falls back
// to the description bullets, and a missing institution renders empty.
func entryValues(e types.NormalizedEntry) map[string]string {
	loc := e.Loc
	if loc == normalize.Missing {
		loc = e.DescriptionBullets
	}
	institution := e.Institution
	if institution == normalize.Missing {
		institution = ""
	}
	return map[string]string{
		"title":               e.Title,
		"loc":                 loc,
		"institution":         institution,
		"timeline":            e.Timeline,
		"description_bullets": e.DescriptionBullets,
		"extras":              e.Extras,
	}
}

// Output renders every in-resume output row of a section.
func (r *SectionRenderer) Output(entries []types.OutputEntry, section string) string {
	var blocks []map[string]string
	for _, e := range entries {
		if !e.InResume || e.Section != section {
			continue
		}
		blocks = append(blocks, map[string]string{
			"title":               e.Title,
			"institution_bullets": e.InstitutionBullets,
		})
	}
	return r.renderBlocks(KindOutput, blocks)
}

// List renders every in-resume list item of a section. An item without an
// icon keeps the icon slot occupied by a single space for markup
// compatibility.
func (r *SectionRenderer) List(items []types.ListItem, section string) string {
	var blocks []map[string]string
	for _, item := range items {
		if !item.InResume || item.Section != section {
			continue
		}
		icon := item.Icon
		if icon == "" {
			icon = " "
		}
		blocks = append(blocks, map[string]string{
			"icon": icon,
			"item": item.Item,
		})
	}
	return r.renderBlocks(KindList, blocks)
}

// ContactInfo renders every contact line.
func (r *SectionRenderer) ContactInfo(items []types.ContactInfoItem) string {
	var blocks []map[string]string
	for _, item := range items {
		blocks = append(blocks, map[string]string{
			"icon":    item.Icon,
			"contact": item.Contact,
		})
	}
	return r.renderBlocks(KindContactInfo, blocks)
}

// Side renders every in-resume side fragment of a section.
func (r *SectionRenderer) Side(entries []types.SideEntry, section string) string {
	var blocks []map[string]string
	for _, e := range entries {
		if !e.InResume || e.Section != section {
			continue
		}
		blocks = append(blocks, map[string]string{
			"entry_bullets": e.EntryBullets,
		})
	}
	return r.renderBlocks(KindSide, blocks)
}

// TextBlock returns the text of the block whose label matches exactly, or an
// empty fragment when no block matches.
func (r *SectionRenderer) TextBlock(blocks []types.TextBlock, label string) string {
	for _, b := range blocks {
		if b.Label == label {
			return b.Text
		}
	}
	return ""
}

// renderBlocks substitutes each value map into the kind's template and joins
// the blocks with the fixed separator. A block that fails to execute is
// skipped; one bad record cannot fail the whole render.
func (r *SectionRenderer) renderBlocks(kind Kind, blocks []map[string]string) string {
	tmpl := r.templates[kind]
	rendered := make([]string, 0, len(blocks))
	for _, values := range blocks {
		var sb strings.Builder
		if err := tmpl.Execute(&sb, values); err != nil {
			continue
		}
		rendered = append(rendered, sb.String())
	}
	return strings.Join(rendered, BlockSeparator)
}
