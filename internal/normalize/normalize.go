// Package normalize provides the pure record-normalization functions shared
// by the meet and athlete parsers: ordinal placement formatting, time
// conversion, team-name matching, and numeric sort keys.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// Sort-key sentinels. Places that fail to parse sort after every numeric
// place; grade labels that fail to parse sort after every numeric grade in
// a descending sort.
const (
	PlaceSentinel = 999999
	GradeSentinel = -999
)

var (
	annotationPattern = regexp.MustCompile(`(?i)(PR|SR|\*)`)
	nonTimePattern    = regexp.MustCompile(`[^0-9:.]`)
)

// Ordinal converts a placement like "23" or "23." into "23rd". Non-numeric
// input is returned trimmed and otherwise unchanged. The teen exception
// covers 11-13 mod 100.
func Ordinal(raw string) string {
	s := strings.TrimRight(strings.TrimSpace(raw), ".")
	if !isDigits(s) {
		return strings.TrimSpace(raw)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return strings.TrimSpace(raw)
	}

	suffix := "th"

	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}

	return strconv.Itoa(n) + suffix
}

// TimeToSeconds parses race times like "16:34.8PR", "17:55.6 SR" or
// "21:08.4" into seconds. Annotation tokens are stripped before parsing.
// ok is false when the string does not hold a minutes:seconds time.
func TimeToSeconds(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	s = annotationPattern.ReplaceAllString(s, "")
	s = nonTimePattern.ReplaceAllString(s, "")

	if strings.Count(s, ":") != 1 {
		return 0, false
	}

	parts := strings.Split(s, ":")

	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}

	seconds, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, false
	}

	return float64(minutes)*60 + seconds, true
}

// PlaceSortKey returns the numeric value of a place field, or PlaceSentinel
// when the field is not a plain non-negative integer. Trailing dots are
// tolerated ("23." sorts as 23).
func PlaceSortKey(raw string) int {
	s := strings.TrimRight(strings.TrimSpace(raw), ".")
	if !isDigits(s) {
		return PlaceSentinel
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return PlaceSentinel
	}

	return n
}

// GradeSortKey returns the numeric value of a grade label, or GradeSentinel
// for non-numeric labels such as "Other".
func GradeSortKey(raw string) int {
	s := strings.TrimSpace(raw)
	if !isDigits(s) {
		return GradeSentinel
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return GradeSentinel
	}

	return n
}

// TeamEqual reports whether a team cell matches the target team name after
// trimming. Comparison is case-sensitive; the line-oriented meet dialect
// uses this form.
func TeamEqual(cell, team string) bool {
	return strings.TrimSpace(cell) == team
}

// TeamEqualFold is the case-insensitive variant used by the row-oriented
// meet dialect. The two are deliberately not unified; the dialects differ
// here and each parser keeps its own rule.
func TeamEqualFold(cell, team string) bool {
	return strings.EqualFold(strings.TrimSpace(cell), team)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
