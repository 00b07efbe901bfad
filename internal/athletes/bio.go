package athletes

import (
	"fmt"
	"sort"
	"strings"

	"xcsite/internal/models"
	"xcsite/internal/normalize"
)

// BuildBio composes the short auto-generated bio paragraph for an athlete
// page: identity and grade, best placement (when any race has a numeric
// place), best time (when any time parses), and a closing sentence.
func BuildBio(record *models.AthleteRecord, teamLabel string) string {
	grade := record.MostRecentGrade
	if grade == "" {
		grade = "?"
	}

	var (
		bestPlace     = -1
		bestPlaceStr  string
		bestPlaceMeet string
		bestSecs      float64
		bestTimeStr   string
		haveTime      bool
	)

	for _, race := range record.Races {
		if key := normalize.PlaceSortKey(race.Place); key != normalize.PlaceSentinel {
			if bestPlace == -1 || key < bestPlace {
				bestPlace = key
				bestPlaceStr = normalize.Ordinal(race.Place)
				bestPlaceMeet = race.MeetName
			}
		}

		if secs, ok := normalize.TimeToSeconds(race.Time); ok {
			if !haveTime || secs < bestSecs {
				bestSecs = secs
				bestTimeStr = race.Time
				haveTime = true
			}
		}
	}

	parts := []string{
		fmt.Sprintf("%s is a %s runner currently listed as grade %s.", record.Name, teamLabel, grade),
	}

	if bestPlace != -1 && bestPlaceMeet != "" {
		parts = append(parts, fmt.Sprintf("The best placement in these results is %s at %s.", bestPlaceStr, bestPlaceMeet))
	}

	if haveTime {
		parts = append(parts, fmt.Sprintf("The best recorded time in these results is %s.", bestTimeStr))
	}

	parts = append(parts, "This page is automatically generated from the team's race CSV data.")

	return strings.Join(parts, " ")
}

// GradeGroup is one per-grade race table: numeric grades get an ordinal-ish
// caption, everything else (including back-fill-less blanks bucketed as
// "Other") keeps its label.
type GradeGroup struct {
	Label   string
	Caption string
	Races   []models.RaceRow
}

// GradeGroups buckets races by grade for the athlete page tables. Groups
// are ordered by numeric grade descending; non-numeric labels take the
// grade sentinel and land at the end. Within a group, races sort stably by
// numeric place with the usual non-numeric-last rule.
func GradeGroups(races []models.RaceRow) []GradeGroup {
	byGrade := make(map[string][]models.RaceRow)

	var labels []string

	for _, race := range races {
		label := strings.TrimSpace(race.Grade)
		if label == "" {
			label = "Other"
		}

		if _, seen := byGrade[label]; !seen {
			labels = append(labels, label)
		}

		byGrade[label] = append(byGrade[label], race)
	}

	sort.SliceStable(labels, func(a, b int) bool {
		return normalize.GradeSortKey(labels[a]) > normalize.GradeSortKey(labels[b])
	})

	groups := make([]GradeGroup, 0, len(labels))

	for _, label := range labels {
		rows := byGrade[label]

		sort.SliceStable(rows, func(a, b int) bool {
			return normalize.PlaceSortKey(rows[a].Place) < normalize.PlaceSortKey(rows[b].Place)
		})

		caption := label
		if normalize.GradeSortKey(label) != normalize.GradeSentinel {
			caption = label + "th Grade"
		}

		groups = append(groups, GradeGroup{Label: label, Caption: caption, Races: rows})
	}

	return groups
}
