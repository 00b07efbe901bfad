package meets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"xcsite/internal/csvdata"
)

const testTeam = "Ann Arbor Skyline"

func lineFixture() []string {
	return []string{
		"Hudson Mills Invitational",
		"Sat Sep 14 2024",
		"https://example.com/meet/12345",
		"<p>A &amp; great race</p>",
		"",
		"Place,Team,Score",
		"1,Ann Arbor Skyline,45",
		"2,Pioneer,60",
		"",
		"Place,Grade,Name,Athlete Link,Time,Team,Team Link,Profile Pic",
		"3,12,Alex Smith,https://a.example/1,16:34.8PR,Ann Arbor Skyline,https://t.example,123.jpg",
		"1.,11,Jordan Lee,,17:01.2,Ann Arbor Skyline,,124.jpg",
		"abc,10,Sam Park,,17:30.0,Ann Arbor Skyline,,",
		"2,12,Riley Chen,,16:50.1,Ann Arbor Skyline,,",
		"5,12,Casey Munn,,16:00.0,Pioneer,,",
	}
}

func TestParseLines(t *testing.T) {
	p := NewParser(testTeam)

	record, err := p.ParseLines("meet.csv", lineFixture())
	if err != nil {
		t.Fatalf("ParseLines returned unexpected error: %v", err)
	}

	if record.Name != "Hudson Mills Invitational" {
		t.Errorf("Name = %q", record.Name)
	}

	if record.Date != "Sat Sep 14 2024" {
		t.Errorf("Date = %q", record.Date)
	}

	if record.ResultsURL != "https://example.com/meet/12345" {
		t.Errorf("ResultsURL = %q", record.ResultsURL)
	}

	if record.SummaryText != "A & great race" {
		t.Errorf("SummaryText = %q", record.SummaryText)
	}

	if len(record.TeamResults) != 2 {
		t.Fatalf("TeamResults = %d rows, want 2", len(record.TeamResults))
	}

	if record.TeamResults[0].Team != "Ann Arbor Skyline" || record.TeamResults[0].Score != "45" {
		t.Errorf("TeamResults[0] = %+v", record.TeamResults[0])
	}

	if len(record.Individual) != 5 {
		t.Fatalf("Individual = %d rows, want 5", len(record.Individual))
	}

	// Filter is case-sensitive; Pioneer drops out, places sort numerically
	// with the non-numeric place last.
	names := make([]string, 0, len(record.Filtered))
	for _, r := range record.Filtered {
		names = append(names, r.Name)
	}

	expected := "Jordan Lee,Riley Chen,Alex Smith,Sam Park"
	if got := strings.Join(names, ","); got != expected {
		t.Errorf("filtered order = %s, want %s", got, expected)
	}

	if record.Filtered[2].Time != "16:34.8PR" {
		t.Errorf("time should pass through unchanged, got %q", record.Filtered[2].Time)
	}
}

func TestParseLinesSortStability(t *testing.T) {
	lines := []string{
		"Meet", "Date", "URL", "Summary", "",
		"Place,Team",
		"Place,Grade,Name,Athlete Link,Time,Team,Team Link,Profile Pic",
		"3,12,C,,,Ann Arbor Skyline,,",
		"1.,12,A,,,Ann Arbor Skyline,,",
		"abc,12,X,,,Ann Arbor Skyline,,",
		"2,12,B,,,Ann Arbor Skyline,,",
		"zzz,12,Y,,,Ann Arbor Skyline,,",
	}

	p := NewParser(testTeam)

	record, err := p.ParseLines("meet.csv", lines)
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}

	var names []string
	for _, r := range record.Filtered {
		names = append(names, r.Name)
	}

	// Non-numeric places keep their relative order after the numeric ones.
	expected := "A,B,C,X,Y"
	if got := strings.Join(names, ","); got != expected {
		t.Errorf("order = %s, want %s", got, expected)
	}
}

func TestParseLinesShortRowsPadded(t *testing.T) {
	lines := []string{
		"Meet", "Date", "URL", "Summary", "",
		"Place,Team",
		"Place,Grade,Name,Athlete Link,Time,Team,Team Link,Profile Pic",
		"1,12,Alex Smith",
	}

	p := NewParser(testTeam)

	record, err := p.ParseLines("meet.csv", lines)
	if err != nil {
		t.Fatalf("short rows must never fail: %v", err)
	}

	if len(record.Individual) != 1 {
		t.Fatalf("Individual = %d rows, want 1", len(record.Individual))
	}

	row := record.Individual[0]
	if row.Time != "" || row.Team != "" || row.ProfilePic != "" {
		t.Errorf("missing trailing fields should be empty, got %+v", row)
	}

	// The padded row has no team, so nothing matches; still a success.
	if len(record.Filtered) != 0 {
		t.Errorf("Filtered = %d rows, want 0", len(record.Filtered))
	}
}

func TestParseLinesErrors(t *testing.T) {
	p := NewParser(testTeam)

	tests := []struct {
		name     string
		lines    []string
		sentinel error
	}{
		{
			name:     "insufficient lines",
			lines:    []string{"a", "b", "c"},
			sentinel: csvdata.ErrInsufficientLines,
		},
		{
			name:     "missing headers",
			lines:    []string{"a", "b", "c", "d", "e", "f"},
			sentinel: csvdata.ErrMissingHeader,
		},
		{
			name: "no data rows",
			lines: []string{
				"Meet", "Date", "URL", "Summary", "",
				"Place,Team",
				"Place,Grade,Name,Athlete Link,Time,Team,Team Link,Profile Pic",
			},
			sentinel: csvdata.ErrNoDataRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ParseLines("meet.csv", tt.lines)
			if err == nil {
				t.Fatal("expected error")
			}

			if !csvdata.IsFormatError(err) {
				t.Errorf("expected FormatError, got %T", err)
			}

			if !errors.Is(err, tt.sentinel) {
				t.Errorf("error = %v, want sentinel %v", err, tt.sentinel)
			}
		})
	}
}

func rowFixture() [][]string {
	return [][]string{
		{"Hudson Mills Invitational"},
		{"Sat Sep 14 2024"},
		{"https://example.com/meet/12345"},
		{`"First line<br>Second line"`},
		{"Place", "Team", "Score"},
		{"1", "Ann Arbor Skyline", "45"},
		{""},
		{"Place", "Grade", "Name", "Athlete Link", "Time", "Team", "Team Link", "Profile Pic"},
		{"2", "12", "Alex Smith", "", "16:34.8", "ANN ARBOR SKYLINE", "", "123.jpg"},
		{"1", "11", "Jordan Lee", "", "17:01.2", "ann arbor skyline", "", ""},
		{"3", "11", "Short Row"},
	}
}

func TestParseRows(t *testing.T) {
	p := NewParser(testTeam)

	record, err := p.ParseRows("meet.csv", rowFixture())
	if err != nil {
		t.Fatalf("ParseRows returned unexpected error: %v", err)
	}

	if record.SummaryText != "First line\nSecond line" {
		t.Errorf("SummaryText = %q", record.SummaryText)
	}

	if len(record.TeamResults) != 1 {
		t.Fatalf("TeamResults = %d rows, want 1", len(record.TeamResults))
	}

	if len(record.Individual) != 3 {
		t.Fatalf("Individual = %d rows, want 3", len(record.Individual))
	}

	// Row-dialect matching is case-insensitive; the short padded row has
	// no team and drops out of the filter.
	if len(record.Filtered) != 2 {
		t.Fatalf("Filtered = %d rows, want 2", len(record.Filtered))
	}

	if record.Filtered[0].Name != "Jordan Lee" || record.Filtered[1].Name != "Alex Smith" {
		t.Errorf("filtered order = %q, %q", record.Filtered[0].Name, record.Filtered[1].Name)
	}
}

func TestParseRowsErrors(t *testing.T) {
	p := NewParser(testTeam)

	tests := []struct {
		name     string
		rows     [][]string
		sentinel error
	}{
		{
			name:     "insufficient rows",
			rows:     [][]string{{"a"}, {"b"}},
			sentinel: csvdata.ErrInsufficientLines,
		},
		{
			name: "missing individual header",
			rows: [][]string{
				{"Meet"}, {"Date"}, {"URL"}, {"Summary"},
				{"1", "Team A", "20"},
			},
			sentinel: csvdata.ErrMissingHeader,
		},
		{
			name: "no data rows",
			rows: [][]string{
				{"Meet"}, {"Date"}, {"URL"}, {"Summary"},
				{""},
				{"Place", "Grade", "Name", "Athlete Link", "Time", "Team", "Team Link", "Profile Pic"},
			},
			sentinel: csvdata.ErrNoDataRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ParseRows("meet.csv", tt.rows)
			if err == nil {
				t.Fatal("expected error")
			}

			if !errors.Is(err, tt.sentinel) {
				t.Errorf("error = %v, want sentinel %v", err, tt.sentinel)
			}
		})
	}
}

func TestParseFileAutoDialect(t *testing.T) {
	dir := t.TempDir()
	p := NewParser(testTeam)

	// Exact Place,Team,Score header routes to the row dialect.
	rowsPath := filepath.Join(dir, "rows.csv")
	rowsContent := strings.Join([]string{
		"Hudson Mills Invitational",
		"Sat Sep 14 2024",
		"https://example.com/meet/12345",
		"Summary text",
		"Place,Team,Score",
		"1,Ann Arbor Skyline,45",
		"",
		"Place,Grade,Name,Athlete Link,Time,Team,Team Link,Profile Pic",
		"1,12,Alex Smith,,16:34.8,ann arbor skyline,,",
	}, "\n")

	if err := os.WriteFile(rowsPath, []byte(rowsContent), 0o644); err != nil {
		t.Fatal(err)
	}

	record, err := p.ParseFile(rowsPath, DialectAuto)
	if err != nil {
		t.Fatalf("ParseFile(rows): %v", err)
	}

	// Lowercased team only matches under the row dialect's folded filter.
	if len(record.Filtered) != 1 {
		t.Errorf("row dialect filter matched %d rows, want 1", len(record.Filtered))
	}

	// No exact header prefix: falls back to the line dialect.
	linesPath := filepath.Join(dir, "lines.csv")
	linesContent := strings.Join([]string{
		"Another Meet",
		"Sat Sep 21 2024",
		"https://example.com/meet/6789",
		"Summary",
		"",
		" Place,Team,Score",
		"1,Ann Arbor Skyline,30",
		"",
		"Place,Grade,Name,Athlete Link,Time,Team,Team Link,Profile Pic",
		"1,12,Jordan Lee,,17:01.2,Ann Arbor Skyline,,",
	}, "\n")

	if err := os.WriteFile(linesPath, []byte(linesContent), 0o644); err != nil {
		t.Fatal(err)
	}

	record, err = p.ParseFile(linesPath, DialectAuto)
	if err != nil {
		t.Fatalf("ParseFile(lines): %v", err)
	}

	if len(record.Filtered) != 1 || record.Filtered[0].Name != "Jordan Lee" {
		t.Errorf("line dialect parse = %+v", record.Filtered)
	}
}

func TestParseDialect(t *testing.T) {
	tests := []struct {
		input    string
		expected Dialect
	}{
		{input: "lines", expected: DialectLines},
		{input: "ROWS", expected: DialectRows},
		{input: "auto", expected: DialectAuto},
		{input: "", expected: DialectAuto},
		{input: "bogus", expected: DialectAuto},
	}

	for _, tt := range tests {
		if got := ParseDialect(tt.input); got != tt.expected {
			t.Errorf("ParseDialect(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
