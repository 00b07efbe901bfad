// Package config provides configuration management for the site generator.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingTeamName   = errors.New("site.team_name is required")
	ErrMissingBaseURL    = errors.New("site.base_url is required")
	ErrMissingMeetsDir   = errors.New("meets.dir is required")
	ErrNoAthleteDirs     = errors.New("athletes.dirs must list at least one directory")
	ErrInvalidDialect    = errors.New("meets.dialect must be one of: auto, lines, rows")
	ErrInvalidTopRunners = errors.New("home.top_runners must be at least 1")
	ErrMissingDateLayout = errors.New("home.date_layout is required")
	ErrInvalidLogLevel   = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete site-generator configuration.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Meets    MeetsConfig    `yaml:"meets"`
	Athletes AthletesConfig `yaml:"athletes"`
	Home     HomeConfig     `yaml:"home"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// SiteConfig holds site-wide constants.
type SiteConfig struct {
	BaseURL    string `yaml:"base_url"`
	LogoURL    string `yaml:"logo_url"`
	TeamName   string `yaml:"team_name"`
	TeamLabel  string `yaml:"team_label"`
	ShortLabel string `yaml:"short_label"`
}

// MeetsConfig controls the per-meet results pipeline.
type MeetsConfig struct {
	Dir          string `yaml:"dir"`
	Dialect      string `yaml:"dialect"`
	OutputDir    string `yaml:"output_dir"`
	OutputSuffix string `yaml:"output_suffix"`
}

// AthletesConfig controls the athlete bio pipeline.
type AthletesConfig struct {
	Dirs      []string `yaml:"dirs"`
	OutputExt string   `yaml:"output_ext"`
}

// HomeConfig controls the home-page aggregation.
type HomeConfig struct {
	Output     string `yaml:"output"`
	TopRunners int    `yaml:"top_runners"`
	DateLayout string `yaml:"date_layout"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// MetricsConfig controls the optional end-of-run metrics dump.
type MetricsConfig struct {
	TextfilePath string `yaml:"textfile_path"`
}

// DefaultConfig returns the configuration matching the original site
// constants; a config file overrides selectively.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			BaseURL:    "https://umsicomplexwebdesign.github.io/xc_data",
			LogoURL:    "https://resources.finalsite.net/images/f_auto,q_auto/v1695416665/a2schoolsorg/udbk8bxpqrgvjkwteeut/SkylineHighSchoolPrimaryThumbnailImage.jpg",
			TeamName:   "Ann Arbor Skyline",
			TeamLabel:  "Ann Arbor Skyline Cross Country",
			ShortLabel: "Skyline",
		},
		Meets: MeetsConfig{
			Dir:          "meets",
			Dialect:      "auto",
			OutputSuffix: "_race_page.html",
		},
		Athletes: AthletesConfig{
			Dirs:      []string{"mens_team", "womens_team"},
			OutputExt: ".html",
		},
		Home: HomeConfig{
			Output:     "index.html",
			TopRunners: 4,
			DateLayout: "Mon Jan 2 2006",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file over the defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Site.TeamName == "" {
		return ErrMissingTeamName
	}

	if c.Site.BaseURL == "" {
		return ErrMissingBaseURL
	}

	if c.Meets.Dir == "" {
		return ErrMissingMeetsDir
	}

	switch c.Meets.Dialect {
	case "", "auto", "lines", "rows":
	default:
		return ErrInvalidDialect
	}

	if len(c.Athletes.Dirs) == 0 {
		return ErrNoAthleteDirs
	}

	if c.Home.TopRunners < 1 {
		return ErrInvalidTopRunners
	}

	if c.Home.DateLayout == "" {
		return ErrMissingDateLayout
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Team: %s, MeetsDir: %s, AthleteDirs: %d}",
		c.Site.TeamName,
		c.Meets.Dir,
		len(c.Athletes.Dirs),
	)
}
