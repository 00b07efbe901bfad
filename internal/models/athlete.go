package models

// AthleteRecord represents one parsed athlete CSV file.
type AthleteRecord struct {
	Name            string         `json:"name"`
	AthleteID       string         `json:"athleteId"`
	SeasonRecords   []SeasonRecord `json:"seasonRecords"`
	Races           []RaceRow      `json:"races"`
	MostRecentGrade string         `json:"mostRecentGrade"`
}

// SeasonRecord is a season-summary row: a year, the grade that season,
// and the season-best time.
type SeasonRecord struct {
	Year           string `json:"year"`
	Grade          string `json:"grade"`
	SeasonBestTime string `json:"seasonBestTime"`
}

// RaceRow is one individual race result for an athlete. Grade may be
// back-filled from the most recent season record when the CSV leaves it
// blank.
type RaceRow struct {
	Grade    string `json:"grade"`
	MeetName string `json:"meet"`
	MeetURL  string `json:"url"`
	Time     string `json:"time"`
	Place    string `json:"place"`
}
