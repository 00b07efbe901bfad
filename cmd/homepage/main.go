// Package main provides the home-page command-line tool: aggregates every
// meet CSV into the site index.
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
	output := flag.String("output", "", "Output file (overrides config)")

	flag.Parse()

	cfg := loadConfig(*configFile)
	if *output != "" {
		cfg.Home.Output = *output
	}

	lg := logger.NewLogger(cfg.Logging.Level)

	builder, err := site.NewBuilder(cfg, lg)
	if err != nil {
		lg.Error("failed to initialize builder", "err", err)
		os.Exit(1)
	}

	summary, err := builder.BuildHomePage()
	if err != nil {
		lg.Error("home page build failed", "err", err)
		os.Exit(1)
	}

	if err := builder.FlushMetrics(); err != nil {
		lg.Error("failed to write metrics", "err", err)
		os.Exit(1)
	}

	fmt.Printf("\n📈 Scanned %d meet files (%d skipped)\n", summary.Scanned, summary.Skipped)
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
