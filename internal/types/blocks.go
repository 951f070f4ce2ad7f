// Package types provides type definitions for the workbook tables used throughout the cv-renderer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TextBlock represents a free-form prose block keyed by label
type TextBlock struct {
	Label string `json:"loc"`
	Text  string `json:"text"`
}

// ContactInfoItem represents a single contact line rendered as icon + text
type ContactInfoItem struct {
	Icon    string `json:"icon"`
	Contact string `json:"contact"`
}

// ListItem represents a bare bulleted fact with an optional icon
type ListItem struct {
	Section  string `json:"section"`
	Icon     string `json:"icon"`
	Item     string `json:"item"`
	InResume bool   `json:"in_resume"`
}
