// Package models defines the record types produced by the CSV parsers.
package models

// MeetRecord represents one fully parsed meet CSV file.
type MeetRecord struct {
	Name        string             `json:"name"`
	Date        string             `json:"date"`
	ResultsURL  string             `json:"resultsUrl"`
	SummaryText string             `json:"summaryText"`
	TeamResults []TeamResultRow    `json:"teamResults"`
	Individual  []IndividualResult `json:"individualResults"`
	Filtered    []IndividualResult `json:"filteredResults"`
}

// TeamResultRow is one row of the team-results block.
type TeamResultRow struct {
	Place string `json:"place"`
	Team  string `json:"team"`
	Score string `json:"score"`
}

// IndividualResult is one row of the individual-results block,
// normalized to the superset of both meet CSV dialects.
type IndividualResult struct {
	Place       string `json:"place"`
	Grade       string `json:"grade"`
	Name        string `json:"name"`
	AthleteLink string `json:"athleteLink"`
	Time        string `json:"time"`
	Team        string `json:"team"`
	TeamLink    string `json:"teamLink"`
	ProfilePic  string `json:"profilePic"`
}
