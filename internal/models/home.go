package models

// RecentRace is the home-page aggregation entry for one meet.
type RecentRace struct {
	Date    string             `json:"date"`
	Runners []IndividualResult `json:"runners"`
	Link    string             `json:"link"`
}

// HomePageIndex aggregates every parsed meet file for the home page.
// RacesByMeetName keeps one entry per distinct meet name, last parse wins.
// Roster maps runner name to profile-page link and is populated first-seen
// across meets in ascending date order.
type HomePageIndex struct {
	RacesByMeetName map[string]RecentRace `json:"racesByMeetName"`
	Roster          map[string]string     `json:"roster"`
}
