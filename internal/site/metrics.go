package site

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"xcsite/internal/csvdata"
)

// Metrics bundles Prometheus collectors for one generator run.
type Metrics struct {
	Registry     *prometheus.Registry
	FilesParsed  *prometheus.CounterVec
	FilesSkipped *prometheus.CounterVec
	PagesWritten *prometheus.CounterVec
	RowsFiltered prometheus.Counter
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	parsed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xcsite_files_parsed_total",
			Help: "Total CSV files parsed successfully, by kind.",
		},
		[]string{"kind"},
	)
	skipped := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xcsite_files_skipped_total",
			Help: "Total CSV files skipped due to format errors, by reason.",
		},
		[]string{"reason"},
	)
	written := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xcsite_pages_written_total",
			Help: "Total HTML pages written, by kind.",
		},
		[]string{"kind"},
	)
	filtered := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "xcsite_rows_filtered_total",
			Help: "Total individual result rows matching the configured team.",
		},
	)

	registry.MustRegister(parsed, skipped, written, filtered)

	return &Metrics{
		Registry:     registry,
		FilesParsed:  parsed,
		FilesSkipped: skipped,
		PagesWritten: written,
		RowsFiltered: filtered,
	}
}

// IncParsed increments the parsed-files counter for a kind.
func (m *Metrics) IncParsed(kind string) {
	if m == nil {
		return
	}
	m.FilesParsed.WithLabelValues(kind).Inc()
}

// IncSkipped increments the skipped-files counter with a reason derived
// from the parse error.
func (m *Metrics) IncSkipped(err error) {
	if m == nil {
		return
	}
	m.FilesSkipped.WithLabelValues(skipReason(err)).Inc()
}

// IncWritten increments the pages-written counter for a kind.
func (m *Metrics) IncWritten(kind string) {
	if m == nil {
		return
	}
	m.PagesWritten.WithLabelValues(kind).Inc()
}

// AddFiltered adds matched result rows to the filtered counter.
func (m *Metrics) AddFiltered(n int) {
	if m == nil {
		return
	}
	m.RowsFiltered.Add(float64(n))
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, csvdata.ErrInsufficientLines):
		return "insufficient_lines"
	case errors.Is(err, csvdata.ErrMissingHeader):
		return "missing_header"
	case errors.Is(err, csvdata.ErrNoDataRows):
		return "no_data_rows"
	default:
		return "other"
	}
}

// WriteTextfile dumps the registry in the node-exporter textfile-collector
// format so batch runs can still feed a Prometheus scrape.
func (m *Metrics) WriteTextfile(path string) error {
	families, err := m.Registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create metrics directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create metrics file: %w", err)
	}
	defer f.Close()

	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(f, family); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}

	return nil
}
