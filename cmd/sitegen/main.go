// Package main provides the one-shot site generator: meet pages, athlete
// pages, and the home page in a single run.
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
	preview := flag.Bool("preview", false, "Print filtered results as aligned tables")
	help := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	cfg := loadConfig(*configFile)
	lg := logger.NewLogger(cfg.Logging.Level)

	builder, err := site.NewBuilder(cfg, lg)
	if err != nil {
		lg.Error("failed to initialize builder", "err", err)
		os.Exit(1)
	}

	builder.SetPreview(*preview)

	fmt.Printf("🏃 Building site for %s\n\n", cfg.Site.TeamLabel)

	if err := builder.BuildAll(); err != nil {
		lg.Error("site build failed", "err", err)
		os.Exit(1)
	}

	fmt.Println("\n✅ Site build complete")
}

// loadConfig reads the given config file, falling back to the default
// location and then to built-in defaults.
func loadConfig(path string) *config.Config {
	if path == "" {
		if _, err := os.Stat("configs/site.yaml"); err == nil {
			path = "configs/site.yaml"
		}
	}

	if path == "" {
		return config.DefaultConfig()
	}

	fmt.Printf("⚙️  Loading configuration from: %s\n", path)

	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v\n", err)
	}

	return cfg
}

func printUsage() {
	fmt.Println("Usage: ./bin/sitegen [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/sitegen")
	fmt.Println("  ./bin/sitegen -config configs/site.yaml -preview")
}
