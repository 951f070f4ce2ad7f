// Package normalize transforms raw workbook rows into display-ready entries:
// it groups numbered columns, derives timelines, resolves sort dates, and
// orders entries newest-first.
package normalize

import (
	"sort"
	"strings"
	"time"

	"github.com/jonathan/cv-renderer/internal/dates"
	"github.com/jonathan/cv-renderer/internal/source"
	"github.com/jonathan/cv-renderer/internal/types"
)

const (
	// Missing is substituted for any display field left empty after
	// derivation.
	Missing = "N/A"

	// nullCell is the literal the source uses for an intentionally absent
	// start/end value.
	nullCell = "NULL"

	// bulletSeparator joins grouped description columns into markdown
	// bullets.
	bulletSeparator = "\n"

	// extraSeparator joins grouped extra columns as separate paragraphs.
	extraSeparator = "\n\n"
)

// RawEntries reads the entries table into typed rows: fields are trimmed and
// numbered columns grouped, but dates stay as written (including the literal
// "NULL") and no display defaults are substituted.
func RawEntries(table *source.Table) []types.RawEntry {
	if table == nil {
		return nil
	}
	raw := make([]types.RawEntry, 0, len(table.Rows))
	for _, row := range table.Rows {
		raw = append(raw, types.RawEntry{
			Title:        strings.TrimSpace(row.Get("title")),
			Loc:          strings.TrimSpace(row.Get("loc")),
			Institution:  strings.TrimSpace(row.Get("institution")),
			Start:        strings.TrimSpace(row.Get("start")),
			End:          strings.TrimSpace(row.Get("end")),
			Section:      strings.TrimSpace(row.Get("section")),
			InResume:     row.Bool("in_resume"),
			Descriptions: table.NumberedValues(row, "description"),
			Extras:       table.NumberedValues(row, "extra"),
		})
	}
	return raw
}

// Entries normalizes the entries table: one NormalizedEntry per row, sorted
// descending by resolved end date so ongoing/undated entries come first.
// A malformed row degrades to defaults; it never aborts the batch.
func Entries(table *source.Table) []types.NormalizedEntry {
	type keyed struct {
		entry   types.NormalizedEntry
		sortKey time.Time
	}

	rows := RawEntries(table)
	entries := make([]keyed, 0, len(rows))
	for _, raw := range rows {
		start := present(raw.Start)
		end := present(raw.End)

		entries = append(entries, keyed{
			entry: types.NormalizedEntry{
				Title:              orMissing(raw.Title),
				Loc:                orMissing(raw.Loc),
				Institution:        orMissing(raw.Institution),
				Section:            raw.Section,
				InResume:           raw.InResume,
				StartYear:          dates.ResolveYear(start),
				EndYear:            dates.ResolveYear(end),
				Timeline:           timeline(start, end),
				DescriptionBullets: Bullets(raw.Descriptions),
				Extras:             strings.Join(raw.Extras, extraSeparator),
			},
			// Sorted on the raw end value, before any substitution.
			sortKey: dates.SortDate(end),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].sortKey.After(entries[j].sortKey)
	})

	if len(entries) == 0 {
		return nil
	}
	result := make([]types.NormalizedEntry, len(entries))
	for i, k := range entries {
		result[i] = k.entry
	}
	return result
}

// Bullets renders grouped description values as markdown bullets. No values
// yields an empty string, never a separator-only string.
func Bullets(values []string) string {
	if len(values) == 0 {
		return ""
	}
	lines := make([]string, len(values))
	for i, v := range values {
		lines[i] = "- " + v
	}
	return strings.Join(lines, bulletSeparator)
}

// timeline derives the display label for an entry's active date range.
// Cases are evaluated in priority order: neither, end only, start only, both.
func timeline(start, end string) string {
	switch {
	case start == "" && end == "":
		return Missing
	case start == "":
		return end
	case end == "":
		return "Current - " + start
	default:
		return end + " - " + start
	}
}

// present maps the literal "NULL" in a start/end value to absent.
func present(v string) string {
	if v == nullCell {
		return ""
	}
	return v
}

// orMissing substitutes the display placeholder for empty cells.
func orMissing(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return Missing
	}
	return v
}

// Output normalizes the output table, grouping numbered institution columns.
func Output(table *source.Table) []types.OutputEntry {
	if table == nil {
		return nil
	}
	entries := make([]types.OutputEntry, 0, len(table.Rows))
	for _, row := range table.Rows {
		entries = append(entries, types.OutputEntry{
			Title:              orMissing(row.Get("title")),
			Section:            strings.TrimSpace(row.Get("section")),
			InResume:           row.Bool("in_resume"),
			InstitutionBullets: Bullets(table.NumberedValues(row, "institution")),
		})
	}
	return entries
}

// Side normalizes the side table, grouping numbered entry columns.
func Side(table *source.Table) []types.SideEntry {
	if table == nil {
		return nil
	}
	entries := make([]types.SideEntry, 0, len(table.Rows))
	for _, row := range table.Rows {
		entries = append(entries, types.SideEntry{
			Section:      strings.TrimSpace(row.Get("section")),
			InResume:     row.Bool("in_resume"),
			EntryBullets: strings.Join(table.NumberedValues(row, "entry"), extraSeparator),
		})
	}
	return entries
}

// TextBlocks normalizes the text_blocks table into label/text pairs.
func TextBlocks(table *source.Table) []types.TextBlock {
	if table == nil {
		return nil
	}
	blocks := make([]types.TextBlock, 0, len(table.Rows))
	for _, row := range table.Rows {
		blocks = append(blocks, types.TextBlock{
			Label: strings.TrimSpace(row.Get("loc")),
			Text:  row.Get("text"),
		})
	}
	return blocks
}

// ContactInfo normalizes the contact_info table.
func ContactInfo(table *source.Table) []types.ContactInfoItem {
	if table == nil {
		return nil
	}
	items := make([]types.ContactInfoItem, 0, len(table.Rows))
	for _, row := range table.Rows {
		items = append(items, types.ContactInfoItem{
			Icon:    strings.TrimSpace(row.Get("icon")),
			Contact: strings.TrimSpace(row.Get("contact")),
		})
	}
	return items
}

// Lists normalizes the list table.
func Lists(table *source.Table) []types.ListItem {
	if table == nil {
		return nil
	}
	items := make([]types.ListItem, 0, len(table.Rows))
	for _, row := range table.Rows {
		items = append(items, types.ListItem{
			Section:  strings.TrimSpace(row.Get("section")),
			Icon:     strings.TrimSpace(row.Get("icon")),
			Item:     strings.TrimSpace(row.Get("item")),
			InResume: row.Bool("in_resume"),
		})
	}
	return items
}
