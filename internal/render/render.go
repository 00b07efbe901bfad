// Package render materializes parsed records into static HTML pages.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"xcsite/internal/athletes"
	"xcsite/internal/models"
	"xcsite/internal/normalize"
)

// Site carries the site-wide constants the templates need.
type Site struct {
	BaseURL    string
	LogoURL    string
	TeamName   string
	TeamLabel  string
	ShortLabel string
}

// CSSReset returns the hosted reset stylesheet URL.
func (s Site) CSSReset() string {
	return strings.TrimSuffix(s.BaseURL, "/") + "/css/reset.css"
}

// CSSStyle returns the hosted main stylesheet URL.
func (s Site) CSSStyle() string {
	return strings.TrimSuffix(s.BaseURL, "/") + "/css/style.css"
}

// ProfileImageURL returns the hosted profile photo for an athlete id, or
// the default image when the id is empty.
func (s Site) ProfileImageURL(athleteID string) string {
	base := strings.TrimSuffix(s.BaseURL, "/")
	if strings.TrimSpace(athleteID) == "" {
		return base + "/images/profiles/default_image.jpg"
	}

	return base + "/images/profiles/" + strings.TrimSpace(athleteID) + ".jpg"
}

// AthleteProfileURL returns the external athletic.net profile URL for an
// athlete id, or "#" when the id is empty.
func AthleteProfileURL(athleteID string) string {
	id := strings.TrimSpace(athleteID)
	if id == "" {
		return "#"
	}

	return fmt.Sprintf("https://www.athletic.net/athlete/%s/cross-country/", id)
}

// Renderer renders meet, athlete, and home pages.
type Renderer struct {
	site    Site
	meet    *template.Template
	athlete *template.Template
	home    *template.Template
}

// New creates a renderer for the given site constants.
func New(site Site) *Renderer {
	funcs := template.FuncMap{
		"ordinal": normalize.Ordinal,
	}

	return &Renderer{
		site:    site,
		meet:    template.Must(template.New("meet").Funcs(funcs).Parse(meetTemplate)),
		athlete: template.Must(template.New("athlete").Funcs(funcs).Parse(athleteTemplate)),
		home:    template.Must(template.New("home").Parse(homeTemplate)),
	}
}

type meetView struct {
	Site         Site
	Record       *models.MeetRecord
	EmptyMessage string
}

// MeetPage renders one meet results page.
func (r *Renderer) MeetPage(record *models.MeetRecord) (string, error) {
	view := meetView{
		Site:   r.site,
		Record: record,
		EmptyMessage: fmt.Sprintf("No %s runners found in this file (Team != %q).",
			r.site.ShortLabel, r.site.TeamName),
	}

	var b strings.Builder
	if err := r.meet.Execute(&b, view); err != nil {
		return "", fmt.Errorf("render meet page: %w", err)
	}

	return b.String(), nil
}

type athleteView struct {
	Site       Site
	Record     *models.AthleteRecord
	Grade      string
	ProfileURL string
	ImageURL   string
	Bio        string
	Groups     []athletes.GradeGroup
}

// AthletePage renders one athlete bio page.
func (r *Renderer) AthletePage(record *models.AthleteRecord) (string, error) {
	grade := record.MostRecentGrade
	if grade == "" {
		grade = "?"
	}

	view := athleteView{
		Site:       r.site,
		Record:     record,
		Grade:      grade,
		ProfileURL: AthleteProfileURL(record.AthleteID),
		ImageURL:   r.site.ProfileImageURL(record.AthleteID),
		Bio:        athletes.BuildBio(record, r.site.ShortLabel),
		Groups:     athletes.GradeGroups(record.Races),
	}

	var b strings.Builder
	if err := r.athlete.Execute(&b, view); err != nil {
		return "", fmt.Errorf("render athlete page: %w", err)
	}

	return b.String(), nil
}

// HomeRunner is one top-runner entry on the home page; an empty Link
// renders without an anchor.
type HomeRunner struct {
	Name string
	Time string
	Link string
}

// HomeRace is one ordered "Recent Races" article.
type HomeRace struct {
	Name    string
	Date    string
	Runners []HomeRunner
	Link    string
}

// RosterEntry is one roster list item.
type RosterEntry struct {
	Name string
	Link string
}

// HomeView is the fully ordered home-page view model; the aggregator
// resolves map ordering before rendering.
type HomeView struct {
	Site   Site
	Races  []HomeRace
	Roster []RosterEntry
}

// HomePage renders the home page.
func (r *Renderer) HomePage(view HomeView) (string, error) {
	view.Site = r.site

	var b strings.Builder
	if err := r.home.Execute(&b, view); err != nil {
		return "", fmt.Errorf("render home page: %w", err)
	}

	return b.String(), nil
}
