// Package meets parses meet-result CSV files into MeetRecord values.
//
// Two header dialects are in circulation. The line dialect carries four
// metadata lines followed by blocks located by substring search
// ("Place,Team" / "Place,Grade,Name"). The row dialect carries the same
// metadata in the first cell of rows 0-3, a team-results block terminated
// by a blank row, and an individual block whose header row starts exactly
// with Place,Grade,Name. Field sets differ slightly; both normalize into
// the superset IndividualResult.
package meets

import (
	"sort"
	"strings"

	"xcsite/internal/csvdata"
	"xcsite/internal/models"
	"xcsite/internal/normalize"
)

// Dialect selects which meet CSV layout to parse.
type Dialect int

const (
	// DialectAuto probes for the row-dialect header first and falls back
	// to the line dialect.
	DialectAuto Dialect = iota
	// DialectLines is the substring-located, line-oriented layout.
	DialectLines
	// DialectRows is the exact-prefix, row-oriented layout.
	DialectRows
)

// ParseDialect maps a config string to a Dialect. Unknown values mean auto.
func ParseDialect(s string) Dialect {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lines":
		return DialectLines
	case "rows":
		return DialectRows
	default:
		return DialectAuto
	}
}

const (
	lineTeamHeader  = "Place,Team"
	lineIndivHeader = "Place,Grade,Name"
	rowTeamHeader   = "Place,Team,Score"
	minLineCount    = 6
	minRowCount     = 5
)

// Parser parses meet CSVs and filters results down to one team.
type Parser struct {
	team string
}

// NewParser creates a meet parser filtering for the given team name.
func NewParser(team string) *Parser {
	return &Parser{team: team}
}

// ParseFile reads and parses one meet CSV file.
func (p *Parser) ParseFile(path string, dialect Dialect) (*models.MeetRecord, error) {
	lines, err := csvdata.ReadLines(path)
	if err != nil {
		return nil, err
	}

	if dialect == DialectAuto {
		dialect = DialectLines

		for _, line := range lines {
			if strings.HasPrefix(line, rowTeamHeader) {
				dialect = DialectRows

				break
			}
		}
	}

	if dialect == DialectRows {
		rows, err := csvdata.ReadFile(path)
		if err != nil {
			return nil, err
		}

		return p.ParseRows(path, rows)
	}

	return p.ParseLines(path, lines)
}

// ParseLines parses the line-oriented meet dialect.
func (p *Parser) ParseLines(file string, lines []string) (*models.MeetRecord, error) {
	if len(lines) < minLineCount {
		return nil, csvdata.NewFormatError(file, csvdata.ErrInsufficientLines)
	}

	record := &models.MeetRecord{
		Name:        strings.TrimSpace(lines[0]),
		Date:        strings.TrimSpace(lines[1]),
		ResultsURL:  strings.TrimSpace(lines[2]),
		SummaryText: normalize.HTMLToText(lines[3], normalize.ModeCollapse),
	}

	teamIdx := indexContaining(lines, lineTeamHeader)
	indivIdx := indexContaining(lines, lineIndivHeader)

	if teamIdx == -1 || indivIdx == -1 {
		return nil, csvdata.NewFormatError(file, csvdata.ErrMissingHeader)
	}

	if teamIdx < indivIdx {
		record.TeamResults = parseTeamBlock(lines[teamIdx:indivIdx])
	}

	block := nonBlank(lines[indivIdx:])

	rows, err := csvdata.ParseBlock(block)
	if err != nil {
		return nil, csvdata.NewFormatError(file, err)
	}

	if len(rows) < 2 {
		return nil, csvdata.NewFormatError(file, csvdata.ErrNoDataRows)
	}

	cols := csvdata.NewColumns(rows[0])

	for _, row := range rows[1:] {
		row = csvdata.PadRow(row, cols.Width())
		record.Individual = append(record.Individual, models.IndividualResult{
			Place:       cols.Get(row, "Place"),
			Grade:       cols.Get(row, "Grade"),
			Name:        cols.Get(row, "Name"),
			AthleteLink: cols.Get(row, "Athlete Link"),
			Time:        cols.Get(row, "Time"),
			Team:        cols.Get(row, "Team"),
			TeamLink:    cols.Get(row, "Team Link"),
			ProfilePic:  cols.Get(row, "Profile Pic"),
		})
	}

	record.Filtered = filterAndSort(record.Individual, func(team string) bool {
		return normalize.TeamEqual(team, p.team)
	})

	return record, nil
}

// ParseRows parses the row-oriented meet dialect.
func (p *Parser) ParseRows(file string, rows [][]string) (*models.MeetRecord, error) {
	if len(rows) < minRowCount {
		return nil, csvdata.NewFormatError(file, csvdata.ErrInsufficientLines)
	}

	record := &models.MeetRecord{
		Name:        firstCell(rows[0]),
		Date:        firstCell(rows[1]),
		ResultsURL:  firstCell(rows[2]),
		SummaryText: normalize.HTMLToText(stripMatchedQuotes(firstCell(rows[3])), normalize.ModeKeepBreaks),
	}

	// Team results run from row 4 until the first blank row.
	i := 4
	for ; i < len(rows); i++ {
		row := rows[i]
		if csvdata.IsBlankRow(row) {
			i++

			break
		}

		if len(row) >= 3 && strings.TrimSpace(row[0]) != "Place" {
			record.TeamResults = append(record.TeamResults, models.TeamResultRow{
				Place: strings.TrimSpace(row[0]),
				Team:  strings.TrimSpace(row[1]),
				Score: strings.TrimSpace(row[2]),
			})
		}
	}

	headerIdx := -1

	for j := i; j < len(rows); j++ {
		if isRowIndivHeader(rows[j]) {
			headerIdx = j

			break
		}
	}

	if headerIdx == -1 {
		return nil, csvdata.NewFormatError(file, csvdata.ErrMissingHeader)
	}

	for _, row := range rows[headerIdx+1:] {
		if csvdata.IsBlankRow(row) {
			continue
		}

		row = csvdata.PadRow(row, 8)
		record.Individual = append(record.Individual, models.IndividualResult{
			Place:       strings.TrimSpace(row[0]),
			Grade:       strings.TrimSpace(row[1]),
			Name:        strings.TrimSpace(row[2]),
			AthleteLink: strings.TrimSpace(row[3]),
			Time:        strings.TrimSpace(row[4]),
			Team:        strings.TrimSpace(row[5]),
			TeamLink:    strings.TrimSpace(row[6]),
			ProfilePic:  strings.TrimSpace(row[7]),
		})
	}

	if len(record.Individual) == 0 {
		return nil, csvdata.NewFormatError(file, csvdata.ErrNoDataRows)
	}

	record.Filtered = filterAndSort(record.Individual, func(team string) bool {
		return normalize.TeamEqualFold(team, p.team)
	})

	return record, nil
}

// isRowIndivHeader matches the exact "Place,Grade,Name," header prefix of
// the row dialect's eight-column individual block.
func isRowIndivHeader(row []string) bool {
	if len(row) < 8 {
		return false
	}

	return strings.TrimSpace(row[0]) == "Place" &&
		strings.TrimSpace(row[1]) == "Grade" &&
		strings.TrimSpace(row[2]) == "Name"
}

func filterAndSort(results []models.IndividualResult, match func(team string) bool) []models.IndividualResult {
	filtered := make([]models.IndividualResult, 0, len(results))

	for _, r := range results {
		if match(r.Team) {
			filtered = append(filtered, r)
		}
	}

	sort.SliceStable(filtered, func(a, b int) bool {
		return normalize.PlaceSortKey(filtered[a].Place) < normalize.PlaceSortKey(filtered[b].Place)
	})

	return filtered
}

// parseTeamBlock parses the team-results lines of the line dialect up to
// the first blank line, skipping the header row.
func parseTeamBlock(lines []string) []models.TeamResultRow {
	var block []string

	for i, line := range lines {
		if strings.TrimSpace(line) == "" && i > 0 {
			break
		}

		block = append(block, line)
	}

	rows, err := csvdata.ParseBlock(block)
	if err != nil || len(rows) < 2 {
		return nil
	}

	var results []models.TeamResultRow

	for _, row := range rows[1:] {
		row = csvdata.PadRow(row, 3)
		results = append(results, models.TeamResultRow{
			Place: strings.TrimSpace(row[0]),
			Team:  strings.TrimSpace(row[1]),
			Score: strings.TrimSpace(row[2]),
		})
	}

	return results
}

func indexContaining(lines []string, substr string) int {
	for i, line := range lines {
		if strings.Contains(line, substr) {
			return i
		}
	}

	return -1
}

func nonBlank(lines []string) []string {
	var out []string

	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}

	return out
}

func firstCell(row []string) string {
	if len(row) == 0 {
		return ""
	}

	return strings.TrimSpace(row[0])
}

// stripMatchedQuotes drops one pair of matching single or double quotes
// wrapping the whole summary cell.
func stripMatchedQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}

	return s
}
