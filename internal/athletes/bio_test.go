package athletes

import (
	"strings"
	"testing"

	"xcsite/internal/models"
)

func TestBuildBio(t *testing.T) {
	record := &models.AthleteRecord{
		Name:            "Alex Smith",
		MostRecentGrade: "12",
		Races: []models.RaceRow{
			{Grade: "12", MeetName: "Hudson Mills Invitational", Place: "4", Time: "17:10.9"},
			{Grade: "11", MeetName: "Early Bird Open", Place: "2.", Time: "18:44.0"},
			{Grade: "11", MeetName: "Fall Classic", Place: "DNF", Time: "bogus"},
		},
	}

	bio := BuildBio(record, "Ann Arbor Skyline Cross Country")

	expected := "Alex Smith is a Ann Arbor Skyline Cross Country runner currently listed as grade 12. " +
		"The best placement in these results is 2nd at Early Bird Open. " +
		"The best recorded time in these results is 17:10.9. " +
		"This page is automatically generated from the team's race CSV data."

	if bio != expected {
		t.Errorf("BuildBio =\n%q\nwant\n%q", bio, expected)
	}
}

func TestBuildBioNoParseableResults(t *testing.T) {
	record := &models.AthleteRecord{
		Name: "Jordan Lee",
		Races: []models.RaceRow{
			{MeetName: "Fall Classic", Place: "DNS", Time: ""},
		},
	}

	bio := BuildBio(record, "Ann Arbor Skyline Cross Country")

	if !strings.Contains(bio, "listed as grade ?.") {
		t.Errorf("missing grade placeholder: %q", bio)
	}

	if strings.Contains(bio, "best placement") || strings.Contains(bio, "best recorded time") {
		t.Errorf("no placement or time sentences expected: %q", bio)
	}
}

func TestBuildBioBestPlaceFirstOccurrenceWins(t *testing.T) {
	record := &models.AthleteRecord{
		Name:            "Riley Chen",
		MostRecentGrade: "11",
		Races: []models.RaceRow{
			{MeetName: "First Meet", Place: "3", Time: "19:00.0"},
			{MeetName: "Second Meet", Place: "3", Time: "19:30.0"},
		},
	}

	bio := BuildBio(record, "Ann Arbor Skyline Cross Country")

	if !strings.Contains(bio, "3rd at First Meet") {
		t.Errorf("tie should keep the first occurrence: %q", bio)
	}
}

func TestGradeGroups(t *testing.T) {
	races := []models.RaceRow{
		{Grade: "11", MeetName: "A", Place: "5"},
		{Grade: "12", MeetName: "B", Place: "9"},
		{Grade: "12", MeetName: "C", Place: "2"},
		{Grade: "", MeetName: "D", Place: "1"},
		{Grade: "JV", MeetName: "E", Place: "7"},
	}

	groups := GradeGroups(races)

	if len(groups) != 4 {
		t.Fatalf("got %d groups, want 4", len(groups))
	}

	// Numeric grades descending, then the non-numeric labels in
	// first-seen order.
	labels := make([]string, 0, len(groups))
	for _, g := range groups {
		labels = append(labels, g.Label)
	}

	expected := "12,11,Other,JV"
	if got := strings.Join(labels, ","); got != expected {
		t.Errorf("group order = %s, want %s", got, expected)
	}

	if groups[0].Caption != "12th Grade" {
		t.Errorf("numeric caption = %q, want %q", groups[0].Caption, "12th Grade")
	}

	if groups[2].Caption != "Other" {
		t.Errorf("non-numeric caption = %q, want %q", groups[2].Caption, "Other")
	}

	// Within a grade, races sort by place.
	if groups[0].Races[0].MeetName != "C" || groups[0].Races[1].MeetName != "B" {
		t.Errorf("races within grade 12 = %+v", groups[0].Races)
	}
}
