// Package main provides the athlete-pages command-line tool: one bio page
// per athlete CSV.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"xcsite/internal/config"
	"xcsite/internal/logger"
	"xcsite/internal/site"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	dirs := flag.String("dirs", "", "Comma-separated athlete directories (overrides config)")

	flag.Parse()

	cfg := loadConfig(*configFile)
	if *dirs != "" {
		cfg.Athletes.Dirs = strings.Split(*dirs, ",")
	}

	lg := logger.NewLogger(cfg.Logging.Level)

	builder, err := site.NewBuilder(cfg, lg)
	if err != nil {
		lg.Error("failed to initialize builder", "err", err)
		os.Exit(1)
	}

	summary, err := builder.BuildAthletePages()
	if err != nil {
		lg.Error("athlete pages build failed", "err", err)
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
