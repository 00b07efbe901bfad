package report

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	out := Table(
		[]string{"Place", "Name", "Time"},
		[][]string{
			{"1", "Alex Smith", "16:34.8"},
			{"2", "Jo", "17:01.2"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4 (header, separator, 2 rows)", len(lines))
	}

	// Every line is padded to the same display width.
	for i := 1; i < len(lines); i++ {
		if len(lines[i]) != len(lines[0]) {
			t.Errorf("line %d width %d != header width %d:\n%s", i, len(lines[i]), len(lines[0]), out)
		}
	}

	if !strings.HasPrefix(lines[1], "| ---") {
		t.Errorf("separator line = %q", lines[1])
	}

	if !strings.Contains(lines[2], "| Alex Smith |") {
		t.Errorf("row content = %q", lines[2])
	}
}

func TestTableShortRows(t *testing.T) {
	out := Table([]string{"A", "B"}, [][]string{{"only"}})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	// The missing trailing cell still gets an empty, aligned column.
	if len(lines[2]) != len(lines[0]) {
		t.Errorf("short row not padded:\n%s", out)
	}
}

func TestTableEmpty(t *testing.T) {
	if out := Table(nil, nil); out != "" {
		t.Errorf("Table(nil, nil) = %q, want empty", out)
	}
}
