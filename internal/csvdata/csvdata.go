// Package csvdata provides the CSV primitives shared by the meet and
// athlete parsers: line reading, quoted-CSV block parsing, row padding,
// and header-keyed cell lookup with an empty-string fallback.
package csvdata

import (
	"encoding/csv"
	"os"
	"strings"
)

// ReadLines reads a file and returns its physical lines without trailing
// newlines.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	// A trailing newline produces one empty final element; drop it.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}

// ParseBlock parses CSV lines into rows, respecting quoted commas.
// Rows whose cells are all blank are dropped.
func ParseBlock(lines []string) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	raw, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var rows [][]string

	for _, row := range raw {
		if !IsBlankRow(row) {
			rows = append(rows, row)
		}
	}

	return rows, nil
}

// ReadFile parses an entire CSV file into rows, keeping blank rows so that
// positional metadata and blank-row block boundaries survive. encoding/csv
// silently skips empty lines, so the file is parsed in runs of non-blank
// lines with a single-cell blank row standing in for each blank line.
func ReadFile(path string) ([][]string, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}

	var (
		rows  [][]string
		chunk []string
	)

	flush := func() error {
		if len(chunk) == 0 {
			return nil
		}

		parsed, err := ParseBlock(chunk)
		if err != nil {
			return err
		}

		rows = append(rows, parsed...)
		chunk = chunk[:0]

		return nil
	}

	for _, line := range lines {
		// Comma-only lines are blank rows too; spreadsheets export empty
		// separator rows as bare commas.
		if strings.Trim(line, ", \t") == "" {
			if err := flush(); err != nil {
				return nil, err
			}

			rows = append(rows, []string{""})

			continue
		}

		chunk = append(chunk, line)
	}

	if err := flush(); err != nil {
		return nil, err
	}

	return rows, nil
}

// IsBlankRow reports whether every cell in the row is empty after trimming.
func IsBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

// PadRow right-pads a row with empty strings up to width. Rows already at
// or beyond width are returned unchanged.
func PadRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}

	padded := make([]string, width)
	copy(padded, row)

	return padded
}

// Columns maps trimmed header names to their positions so data cells can
// be fetched by column name with a defined fallback.
type Columns struct {
	index map[string]int
	width int
}

// NewColumns builds a column lookup from a header row.
func NewColumns(header []string) Columns {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	return Columns{index: index, width: len(header)}
}

// Width returns the number of header columns.
func (c Columns) Width() int {
	return c.width
}

// Get returns the trimmed cell under the named column, or "" when the
// column is unknown or the row is short. Missing columns never fail.
func (c Columns) Get(row []string, name string) string {
	i, ok := c.index[name]
	if !ok || i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}
