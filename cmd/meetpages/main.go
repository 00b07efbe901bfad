// Package main provides the meet-pages command-line tool: one results page
// per meet CSV.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"xcsite/internal/config"
	"xcsite/internal/logger"
	"xcsite/internal/site"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	meetsDir := flag.String("meets", "", "Meets directory (overrides config)")
	preview := flag.Bool("preview", false, "Print filtered results as aligned tables")

	flag.Parse()

	cfg := loadConfig(*configFile)
	if *meetsDir != "" {
		cfg.Meets.Dir = *meetsDir
	}

	lg := logger.NewLogger(cfg.Logging.Level)

	builder, err := site.NewBuilder(cfg, lg)
	if err != nil {
		lg.Error("failed to initialize builder", "err", err)
		os.Exit(1)
	}

	builder.SetPreview(*preview)

	summary, err := builder.BuildMeetPages()
	if err != nil {
		lg.Error("meet pages build failed", "err", err)
		os.Exit(1)
	}

	if err := builder.FlushMetrics(); err != nil {
		lg.Error("failed to write metrics", "err", err)
		os.Exit(1)
	}

	fmt.Println("\n----------------------------------------------------------------")
	fmt.Printf("📈 Summary:\n")
	fmt.Printf("  Scanned:   %d files\n", summary.Scanned)
	fmt.Printf("  Generated: %d pages\n", summary.Generated)
	fmt.Printf("  Skipped:   %d files\n", summary.Skipped)
}

func loadConfig(path string) *config.Config {
	if path == "" {
		if _, err := os.Stat("configs/site.yaml"); err == nil {
			path = "configs/site.yaml"
		}
	}

	if path == "" {
		return config.DefaultConfig()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v\n", err)
	}

	return cfg
}
