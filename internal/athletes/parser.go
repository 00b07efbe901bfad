// Package athletes parses athlete CSV exports into AthleteRecord values
// and derives the bio text and per-grade race tables consumed by the
// renderer.
//
// Athlete files carry the athlete name and id in the first cell of rows 0
// and 1, then a header row whose position varies with leading blank rows.
// The header is found by content: the first row whose joined, lowercased
// cells contain both "meet url" and "overall place". Rows after it are
// either season-summary rows (Overall Place is a 4-digit year and Grade is
// set) or race rows (Meet is set); anything else is dropped.
package athletes

import (
	"sort"
	"strconv"
	"strings"

	"xcsite/internal/csvdata"
	"xcsite/internal/models"
)

// Parser parses athlete CSV files.
type Parser struct{}

// NewParser creates an athlete parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads and parses one athlete CSV file.
func (p *Parser) ParseFile(path string) (*models.AthleteRecord, error) {
	rows, err := csvdata.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return p.ParseRows(path, rows)
}

// ParseRows parses already comma-split athlete rows.
func (p *Parser) ParseRows(file string, rows [][]string) (*models.AthleteRecord, error) {
	record := &models.AthleteRecord{}

	if len(rows) > 0 {
		record.Name = firstCell(rows[0])
	}

	if len(rows) > 1 {
		record.AthleteID = firstCell(rows[1])
	}

	headerIdx := findHeaderIndex(rows)
	if headerIdx == -1 {
		return nil, csvdata.NewFormatError(file, csvdata.ErrMissingHeader)
	}

	cols := csvdata.NewColumns(rows[headerIdx])

	for _, row := range rows[headerIdx+1:] {
		if csvdata.IsBlankRow(row) {
			continue
		}

		row = csvdata.PadRow(row, cols.Width())

		overallPlace := cols.Get(row, "Overall Place")
		grade := cols.Get(row, "Grade")
		raceTime := cols.Get(row, "Time")
		meet := cols.Get(row, "Meet")
		meetURL := cols.Get(row, "Meet URL")

		// A 4-digit Overall Place with a Grade is a season summary, not
		// a placement.
		if isYear(overallPlace) && grade != "" {
			record.SeasonRecords = append(record.SeasonRecords, models.SeasonRecord{
				Year:           overallPlace,
				Grade:          grade,
				SeasonBestTime: raceTime,
			})

			continue
		}

		if meet != "" {
			if meetURL == "" {
				meetURL = "#"
			}

			record.Races = append(record.Races, models.RaceRow{
				Grade:    grade,
				MeetName: meet,
				MeetURL:  meetURL,
				Time:     raceTime,
				Place:    overallPlace,
			})
		}
		// Neither shape: silently dropped.
	}

	record.MostRecentGrade = mostRecentGrade(record.SeasonRecords)

	if record.MostRecentGrade != "" {
		for i := range record.Races {
			if record.Races[i].Grade == "" {
				record.Races[i].Grade = record.MostRecentGrade
			}
		}
	}

	return record, nil
}

// findHeaderIndex locates the data header by content rather than position;
// exports often carry a variable number of leading blank rows.
func findHeaderIndex(rows [][]string) int {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}

		cells := make([]string, 0, len(row))
		for _, c := range row {
			cells = append(cells, strings.TrimSpace(c))
		}

		joined := strings.ToLower(strings.Join(cells, ","))
		if strings.Contains(joined, "meet url") && strings.Contains(joined, "overall place") {
			return i
		}
	}

	return -1
}

// mostRecentGrade returns the grade of the season record with the largest
// year, or "" when there are none.
func mostRecentGrade(records []models.SeasonRecord) string {
	if len(records) == 0 {
		return ""
	}

	sorted := make([]models.SeasonRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(a, b int) bool {
		return yearValue(sorted[a].Year) < yearValue(sorted[b].Year)
	})

	return sorted[len(sorted)-1].Grade
}

func yearValue(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return -1
	}

	return n
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func firstCell(row []string) string {
	if len(row) == 0 {
		return ""
	}

	return strings.TrimSpace(row[0])
}
