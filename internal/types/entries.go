// Package types provides type definitions for the workbook tables used throughout the cv-renderer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RawEntry represents one row of the entries table as read from the source,
// before any normalization
type RawEntry struct {
	Title        string   `json:"title"`
	Loc          string   `json:"loc"`
	Institution  string   `json:"institution"`
	Start        string   `json:"start"`
	End          string   `json:"end"`
	Section      string   `json:"section"`
	InResume     bool     `json:"in_resume"`
	Descriptions []string `json:"descriptions,omitempty"`
	Extras       []string `json:"extras,omitempty"`
}

// NormalizedEntry represents an entry after date resolution, bullet grouping,
// timeline derivation, and display-field defaulting
type NormalizedEntry struct {
	Title              string `json:"title"`
	Loc                string `json:"loc"`
	Institution        string `json:"institution"`
	Section            string `json:"section"`
	InResume           bool   `json:"in_resume"`
	StartYear          int    `json:"start_year"`
	EndYear            int    `json:"end_year"`
	Timeline           string `json:"timeline"`
	DescriptionBullets string `json:"description_bullets"`
	Extras             string `json:"extras"`
}

// OutputEntry represents one row of the output table (publications, talks)
// with its numbered institution columns grouped into a single field
type OutputEntry struct {
	Title              string `json:"title"`
	Section            string `json:"section"`
	InResume           bool   `json:"in_resume"`
	InstitutionBullets string `json:"institution_bullets"`
}

// SideEntry represents one row of the side table (sidebar fragments) with its
// numbered entry columns grouped into a single field
type SideEntry struct {
	Section      string `json:"section"`
	InResume     bool   `json:"in_resume"`
	EntryBullets string `json:"entry_bullets"`
}
