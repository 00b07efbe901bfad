// Package report renders aligned plain-text tables for CLI preview output.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const minColumnWidth = 3

// Table renders a header and rows as an aligned text table. Column widths
// use display width so wide runes in names line up.
func Table(header []string, rows [][]string) string {
	colCount := len(header)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	if colCount == 0 {
		return ""
	}

	widths := make([]int, colCount)
	measure := func(row []string) {
		for i := 0; i < len(row) && i < colCount; i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	measure(header)

	for _, row := range rows {
		measure(row)
	}

	for i := range widths {
		if widths[i] < minColumnWidth {
			widths[i] = minColumnWidth
		}
	}

	var b strings.Builder

	writeRow := func(row []string) {
		b.WriteString("|")

		for i := 0; i < colCount; i++ {
			content := ""
			if i < len(row) {
				content = row[i]
			}

			b.WriteString(" ")
			b.WriteString(content)

			if padding := widths[i] - runewidth.StringWidth(content); padding > 0 {
				b.WriteString(strings.Repeat(" ", padding))
			}

			b.WriteString(" |")
		}

		b.WriteString("\n")
	}

	writeRow(header)

	b.WriteString("|")

	for i := 0; i < colCount; i++ {
		b.WriteString(" ")
		b.WriteString(strings.Repeat("-", widths[i]))
		b.WriteString(" |")
	}

	b.WriteString("\n")

	for _, row := range rows {
		writeRow(row)
	}

	return b.String()
}
