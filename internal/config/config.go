// Package config holds the settings of the campaign timeline renderer.
//
// Settings come from three layers, later ones winning: DefaultConfig, an
// optional YAML file, and TIMELINE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// StatusColors maps campaign status to the fill and stroke of its bar.
type StatusColors struct {
	Fill   string `yaml:"fill"`
	Stroke string `yaml:"stroke"`
	Text   string `yaml:"text"`
}

// Config controls how a timeline layout is drawn. It maps directly onto the
// YAML configuration file.
//
// Key settings:
//   - timeline.buffer_days leaves empty days between campaigns sharing a row
//   - timeline.month_width is the width of one month in Month zoom; the axis
//     spans all twelve months so it can be scrolled
//   - timeline.locale selects the language of month names ("en", "de")
type Config struct {
	Font struct {
		Family string `yaml:"family"`
		Size   int    `yaml:"size"`
	} `yaml:"font"`
	Colors struct {
		Background string                  `yaml:"background"`
		Grid       string                  `yaml:"grid"`
		Text       string                  `yaml:"text"`
		Muted      string                  `yaml:"muted"`
		Status     map[string]StatusColors `yaml:"status"`
	} `yaml:"colors"`
	Layout struct {
		MarginTop    int `yaml:"margin_top"`
		MarginBottom int `yaml:"margin_bottom"`
		MarginLeft   int `yaml:"margin_left"`
		MarginRight  int `yaml:"margin_right"`
		HeaderHeight int `yaml:"header_height"`
	} `yaml:"layout"`
	Timeline struct {
		RowHeight  int    `yaml:"row_height" env:"ROW_HEIGHT"`
		BarHeight  int    `yaml:"bar_height"`
		MonthWidth int    `yaml:"month_width" env:"MONTH_WIDTH"`
		YearWidth  int    `yaml:"year_width" env:"YEAR_WIDTH"`
		BufferDays int    `yaml:"buffer_days" env:"BUFFER_DAYS"`
		Locale     string `yaml:"locale" env:"LOCALE"`
		ShowWeeks  bool   `yaml:"show_weeks" env:"SHOW_WEEKS"`
	} `yaml:"timeline" envPrefix:"TIMELINE_"`
}

// DefaultConfig returns the settings used when no file is given: a 2400px
// year axis, 1200px per month in Month zoom and 70px rows.
func DefaultConfig() Config {
	var cfg Config
	cfg.Font.Family = "Arial, sans-serif"
	cfg.Font.Size = 12

	cfg.Colors.Background = "#ffffff"
	cfg.Colors.Grid = "#e5e7eb"
	cfg.Colors.Text = "#333333"
	cfg.Colors.Muted = "#6b7280"
	cfg.Colors.Status = map[string]StatusColors{
		"completed":   {Fill: "#f3f4f6", Stroke: "#d1d5db", Text: "#6b7280"},
		"active":      {Fill: "#dcfce7", Stroke: "#bbf7d0", Text: "#15803d"},
		"preparation": {Fill: "#fef9c3", Stroke: "#fef08a", Text: "#a16207"},
		"planned":     {Fill: "#dbeafe", Stroke: "#bfdbfe", Text: "#1d4ed8"},
	}

	cfg.Layout.MarginTop = 20
	cfg.Layout.MarginBottom = 20
	cfg.Layout.MarginLeft = 16
	cfg.Layout.MarginRight = 16
	cfg.Layout.HeaderHeight = 80

	cfg.Timeline.RowHeight = 70
	cfg.Timeline.BarHeight = 62
	cfg.Timeline.MonthWidth = 1200
	cfg.Timeline.YearWidth = 2400
	cfg.Timeline.BufferDays = 0
	cfg.Timeline.Locale = "en"
	cfg.Timeline.ShowWeeks = true
	return cfg
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides timeline settings from TIMELINE_* variables.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects sizes that would produce an empty drawing and locales
// that are not BCP 47 tags.
func (c Config) Validate() error {
	var errs []error
	if c.Timeline.RowHeight <= 0 {
		errs = append(errs, fmt.Errorf("timeline.row_height must be positive, got %d", c.Timeline.RowHeight))
	}
	if c.Timeline.BarHeight <= 0 || c.Timeline.BarHeight > c.Timeline.RowHeight {
		errs = append(errs, fmt.Errorf("timeline.bar_height must be in (0, row_height], got %d", c.Timeline.BarHeight))
	}
	if c.Timeline.MonthWidth <= 0 {
		errs = append(errs, fmt.Errorf("timeline.month_width must be positive, got %d", c.Timeline.MonthWidth))
	}
	if c.Timeline.YearWidth <= 0 {
		errs = append(errs, fmt.Errorf("timeline.year_width must be positive, got %d", c.Timeline.YearWidth))
	}
	if c.Timeline.BufferDays < 0 {
		errs = append(errs, fmt.Errorf("timeline.buffer_days must not be negative, got %d", c.Timeline.BufferDays))
	}
	if _, err := language.Parse(c.Timeline.Locale); err != nil {
		errs = append(errs, fmt.Errorf("timeline.locale %q: %w", c.Timeline.Locale, err))
	}
	return errors.Join(errs...)
}

// StatusStyle returns the colours for status, falling back to "planned".
func (c Config) StatusStyle(status string) StatusColors {
	if s, ok := c.Colors.Status[status]; ok {
		return s
	}
	if s, ok := c.Colors.Status["planned"]; ok {
		return s
	}
	return StatusColors{Fill: "#dbeafe", Stroke: "#bfdbfe", Text: c.Colors.Text}
}
