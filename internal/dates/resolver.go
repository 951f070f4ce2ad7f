// Package dates resolves loosely-formatted date strings into sortable
// year/month values with defaulted fallbacks.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// yearPattern matches the first 4-digit year restricted to 19xx/20xx.
var yearPattern = regexp.MustCompile(`(?:19|20)\d{2}`)

// monthPattern matches a token immediately followed by a date separator and a
// 19xx/20xx year, e.g. "May 2020", "05/2020", "Sept-2019".
var monthPattern = regexp.MustCompile(`(\w+)[ /-]((?:19|20)\d{2})`)

// SentinelYear returns the year used for entries with no determinable end
// date. It is far enough in the future that undated/ongoing entries sort
// before every dated entry.
func SentinelYear() int {
	return time.Now().Year() + 10
}

// ResolveYear extracts the first 4-digit 19xx/20xx year from a date string.
// Strings without one resolve to SentinelYear.
func ResolveYear(date string) int {
	match := yearPattern.FindString(date)
	if match == "" {
		return SentinelYear()
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return SentinelYear()
	}
	return year
}

// ResolveMonth extracts the month token immediately preceding the year in a
// date string. Strings without one resolve to "1" (January).
func ResolveMonth(date string) string {
	match := monthPattern.FindStringSubmatch(date)
	if match == nil {
		return "1"
	}
	return match[1]
}

// SortDate combines the resolved month and year into a synthetic day-1
// calendar date used only for ordering, never for display.
func SortDate(date string) time.Time {
	return time.Date(ResolveYear(date), monthNumber(ResolveMonth(date)), 1, 0, 0, 0, 0, time.UTC)
}

// monthNumber converts a month token (number, full name, or abbreviation)
// into a calendar month. Unrecognizable tokens degrade to January rather than
// failing the row.
func monthNumber(token string) time.Month {
	if n, err := strconv.Atoi(token); err == nil && n >= 1 && n <= 12 {
		return time.Month(n)
	}

	normalized := normalizeMonthToken(token)
	if t, err := time.Parse("January", normalized); err == nil {
		return t.Month()
	}
	if len(normalized) >= 3 {
		if t, err := time.Parse("Jan", normalized[:3]); err == nil {
			return t.Month()
		}
	}

	return time.January
}

// normalizeMonthToken title-cases a token so it matches Go's month layouts.
func normalizeMonthToken(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return token
	}
	return strings.ToUpper(token[:1]) + strings.ToLower(token[1:])
}
