// Package site orchestrates the batch run: enumerate CSV files, parse them
// into records, render pages, and write output files. Per-file format
// errors are reported and skipped; collaborator errors (unreadable
// directories, unwritable output) abort the run.
package site

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"xcsite/internal/athletes"
	"xcsite/internal/config"
	"xcsite/internal/csvdata"
	"xcsite/internal/logger"
	"xcsite/internal/meets"
	"xcsite/internal/models"
	"xcsite/internal/render"
	"xcsite/internal/report"
)

// meetCacheSize bounds the shared parse cache; a season has tens of meets,
// not thousands.
const meetCacheSize = 128

// Summary counts one pipeline pass.
type Summary struct {
	Scanned   int
	Generated int
	Skipped   int
}

// Builder runs the site-generation pipelines over configured directories.
type Builder struct {
	cfg           *config.Config
	log           *logger.Logger
	metrics       *Metrics
	meetParser    *meets.Parser
	athleteParser *athletes.Parser
	renderer      *render.Renderer
	dialect       meets.Dialect
	cache         *lru.Cache[string, *models.MeetRecord]
	out           io.Writer
	preview       bool
}

// NewBuilder wires a builder from configuration.
func NewBuilder(cfg *config.Config, log *logger.Logger) (*Builder, error) {
	cache, err := lru.New[string, *models.MeetRecord](meetCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create meet cache: %w", err)
	}

	site := render.Site{
		BaseURL:    cfg.Site.BaseURL,
		LogoURL:    cfg.Site.LogoURL,
		TeamName:   cfg.Site.TeamName,
		TeamLabel:  cfg.Site.TeamLabel,
		ShortLabel: cfg.Site.ShortLabel,
	}

	return &Builder{
		cfg:           cfg,
		log:           log,
		metrics:       NewMetrics(),
		meetParser:    meets.NewParser(cfg.Site.TeamName),
		athleteParser: athletes.NewParser(),
		renderer:      render.New(site),
		dialect:       meets.ParseDialect(cfg.Meets.Dialect),
		cache:         cache,
		out:           os.Stdout,
	}, nil
}

// SetOutput redirects diagnostic output; tests capture it.
func (b *Builder) SetOutput(w io.Writer) {
	b.out = w
}

// SetPreview enables aligned result tables in the diagnostics.
func (b *Builder) SetPreview(on bool) {
	b.preview = on
}

// Metrics exposes the run metrics.
func (b *Builder) Metrics() *Metrics {
	return b.metrics
}

// parseMeet parses one meet CSV through the shared cache so the meet-page
// pass and the home-page pass read each file once.
func (b *Builder) parseMeet(path string) (*models.MeetRecord, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}

	if record, ok := b.cache.Get(key); ok {
		return record, nil
	}

	record, err := b.meetParser.ParseFile(path, b.dialect)
	if err != nil {
		return nil, err
	}

	b.cache.Add(key, record)
	b.metrics.IncParsed("meet")
	b.metrics.AddFiltered(len(record.Filtered))

	return record, nil
}

// BuildMeetPages converts every meet CSV into a results page.
func (b *Builder) BuildMeetPages() (Summary, error) {
	var summary Summary

	files, err := listCSVs(b.cfg.Meets.Dir)
	if err != nil {
		return summary, fmt.Errorf("read meets directory: %w", err)
	}

	for _, path := range files {
		summary.Scanned++

		record, err := b.parseMeet(path)
		if err != nil {
			if !csvdata.IsFormatError(err) {
				return summary, err
			}

			b.skip(path, err)

			summary.Skipped++

			continue
		}

		page, err := b.renderer.MeetPage(record)
		if err != nil {
			return summary, err
		}

		outPath := b.meetOutputPath(path)
		if err := writeFile(outPath, page); err != nil {
			return summary, err
		}

		b.metrics.IncWritten("meet")
		fmt.Fprintf(b.out, "Generated %s (%d %s runners)\n", outPath, len(record.Filtered), b.cfg.Site.ShortLabel)
		b.previewResults(record)

		summary.Generated++
	}

	return summary, nil
}

// BuildAthletePages converts every athlete CSV into a bio page. Missing
// team directories are tolerated.
func (b *Builder) BuildAthletePages() (Summary, error) {
	var summary Summary

	for _, dir := range b.cfg.Athletes.Dirs {
		files, err := listCSVs(dir)
		if err != nil {
			if os.IsNotExist(err) {
				b.log.Warn("athlete directory missing, skipping", "dir", dir)

				continue
			}

			return summary, fmt.Errorf("read athletes directory: %w", err)
		}

		for _, path := range files {
			summary.Scanned++

			record, err := b.athleteParser.ParseFile(path)
			if err != nil {
				if !csvdata.IsFormatError(err) {
					return summary, err
				}

				b.skip(path, err)

				summary.Skipped++

				continue
			}

			b.metrics.IncParsed("athlete")

			page, err := b.renderer.AthletePage(record)
			if err != nil {
				return summary, err
			}

			outPath := strings.TrimSuffix(path, filepath.Ext(path)) + b.cfg.Athletes.OutputExt
			if err := writeFile(outPath, page); err != nil {
				return summary, err
			}

			b.metrics.IncWritten("athlete")
			fmt.Fprintf(b.out, "Generated %s\n", outPath)

			summary.Generated++
		}
	}

	return summary, nil
}

// BuildHomePage aggregates all meet files into the home page.
func (b *Builder) BuildHomePage() (Summary, error) {
	var summary Summary

	files, err := listCSVs(b.cfg.Meets.Dir)
	if err != nil {
		return summary, fmt.Errorf("read meets directory: %w", err)
	}

	index := &models.HomePageIndex{
		RacesByMeetName: make(map[string]models.RecentRace),
		Roster:          make(map[string]string),
	}

	// Distinct meet names in first-appearance order; duplicate names
	// overwrite the entry but keep their original position.
	var names []string

	for _, path := range files {
		summary.Scanned++

		record, err := b.parseMeet(path)
		if err != nil {
			if !csvdata.IsFormatError(err) {
				return summary, err
			}

			b.skip(path, err)

			summary.Skipped++

			continue
		}

		if _, seen := index.RacesByMeetName[record.Name]; !seen {
			names = append(names, record.Name)
		}

		index.RacesByMeetName[record.Name] = models.RecentRace{
			Date:    record.Date,
			Runners: record.Filtered,
			Link:    b.meetPageLink(path),
		}
	}

	b.sortByDate(names, index)

	view := render.HomeView{}

	for _, name := range names {
		race := index.RacesByMeetName[name]

		article := render.HomeRace{Name: name, Date: race.Date, Link: race.Link}

		top := race.Runners
		if len(top) > b.cfg.Home.TopRunners {
			top = top[:b.cfg.Home.TopRunners]
		}

		for _, runner := range top {
			article.Runners = append(article.Runners, render.HomeRunner{
				Name: runner.Name,
				Time: runner.Time,
				Link: b.athletePageLink(runner),
			})
		}

		view.Races = append(view.Races, article)

		// Roster entries are added once, first seen in date order.
		for _, runner := range race.Runners {
			if runner.Name == "" {
				continue
			}

			if _, ok := index.Roster[runner.Name]; !ok {
				index.Roster[runner.Name] = rosterSlug(runner.Name) + ".html"
			}
		}
	}

	rosterNames := make([]string, 0, len(index.Roster))
	for name := range index.Roster {
		rosterNames = append(rosterNames, name)
	}

	sort.Strings(rosterNames)

	for _, name := range rosterNames {
		view.Roster = append(view.Roster, render.RosterEntry{Name: name, Link: index.Roster[name]})
	}

	page, err := b.renderer.HomePage(view)
	if err != nil {
		return summary, err
	}

	if err := writeFile(b.cfg.Home.Output, page); err != nil {
		return summary, err
	}

	b.metrics.IncWritten("home")
	fmt.Fprintf(b.out, "Generated %s with %d races\n", b.cfg.Home.Output, len(view.Races))

	summary.Generated++

	return summary, nil
}

// BuildAll runs every pipeline and, when configured, dumps run metrics.
func (b *Builder) BuildAll() error {
	if _, err := b.BuildMeetPages(); err != nil {
		return err
	}

	if _, err := b.BuildAthletePages(); err != nil {
		return err
	}

	if _, err := b.BuildHomePage(); err != nil {
		return err
	}

	return b.FlushMetrics()
}

// FlushMetrics writes the metrics textfile when a path is configured.
func (b *Builder) FlushMetrics() error {
	if b.cfg.Metrics.TextfilePath == "" {
		return nil
	}

	return b.metrics.WriteTextfile(b.cfg.Metrics.TextfilePath)
}

// sortByDate orders meet names by parsed date ascending. Unparseable dates
// sort after all parseable ones, keeping their relative file order.
func (b *Builder) sortByDate(names []string, index *models.HomePageIndex) {
	layout := b.cfg.Home.DateLayout

	type key struct {
		t  time.Time
		ok bool
	}

	keys := make(map[string]key, len(names))

	for _, name := range names {
		t, err := time.Parse(layout, strings.TrimSpace(index.RacesByMeetName[name].Date))
		keys[name] = key{t: t, ok: err == nil}
	}

	sort.SliceStable(names, func(i, j int) bool {
		a, z := keys[names[i]], keys[names[j]]

		switch {
		case a.ok && z.ok:
			return a.t.Before(z.t)
		case a.ok:
			return true
		default:
			return false
		}
	})
}

func (b *Builder) skip(path string, err error) {
	fmt.Fprintf(b.out, "Skipping %s: %v\n", filepath.Base(path), unwrapFormat(err))
	b.metrics.IncSkipped(err)
	b.log.Debug("file skipped", "path", path, "err", err)
}

func (b *Builder) previewResults(record *models.MeetRecord) {
	if !b.preview || len(record.Filtered) == 0 {
		return
	}

	rows := make([][]string, 0, len(record.Filtered))
	for _, r := range record.Filtered {
		rows = append(rows, []string{r.Name, r.Time, r.Place, r.Grade})
	}

	fmt.Fprint(b.out, report.Table([]string{"Name", "Time", "Place", "Grade"}, rows))
}

func (b *Builder) meetOutputPath(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name := stem + b.cfg.Meets.OutputSuffix

	if b.cfg.Meets.OutputDir != "" {
		return filepath.Join(b.cfg.Meets.OutputDir, name)
	}

	return filepath.Join(filepath.Dir(path), name)
}

// meetPageLink is the href from the home page to a meet results page.
func (b *Builder) meetPageLink(path string) string {
	return filepath.ToSlash(b.meetOutputPath(path))
}

// athletePageLink builds the link from a home-page runner entry to the
// athlete bio page; the athlete id rides in the Profile Pic column with an
// image extension. The href is site-relative, so only the base name of the
// configured athlete directory enters it. Entries without a name, an id,
// or a configured athlete directory render unlinked.
func (b *Builder) athletePageLink(runner models.IndividualResult) string {
	id := strings.TrimSuffix(strings.TrimSuffix(runner.ProfilePic, ".jpg"), ".jpeg")
	if runner.Name == "" || id == "" || len(b.cfg.Athletes.Dirs) == 0 {
		return ""
	}

	return fmt.Sprintf("../%s/%s%s.html", filepath.Base(b.cfg.Athletes.Dirs[0]), runner.Name, id)
}

func rosterSlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// listCSVs returns the .csv files of a directory in name order.
func listCSVs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if strings.HasSuffix(strings.ToLower(entry.Name()), ".csv") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	return files, nil
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// unwrapFormat strips the file prefix from a FormatError so diagnostics
// don't repeat the filename.
func unwrapFormat(err error) error {
	var fe *csvdata.FormatError
	if errors.As(err, &fe) {
		return fe.Err
	}

	return err
}
