// Package config handles the optional render-settings file and its defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ChartSize is a chart's pixel geometry.
type ChartSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config holds rendering settings. Everything has a sensible default, so
// the settings file is optional; per-run inputs (data file, sample
// sizes) stay on the command line.
type Config struct {
	// OutputDir receives every generated image. Defaults to the working
	// directory, matching the original tool's behavior.
	OutputDir string `yaml:"output_dir"`

	// Seed drives plot sampling. Fixed by default so repeated runs over
	// the same input select the same subset.
	Seed int64 `yaml:"seed"`

	YearChart    ChartSize `yaml:"year_chart"`
	CauseChart   ChartSize `yaml:"cause_chart"`
	ScatterChart ChartSize `yaml:"scatter_chart"`
	TrendChart   ChartSize `yaml:"trend_chart"`
}

// Default returns the built-in settings: current directory output, seed
// 42, and the original figure geometry (wide 1000x400 year/trend charts,
// 600x400 cause chart, square 600x600 scatters).
func Default() *Config {
	return &Config{
		OutputDir:    ".",
		Seed:         42,
		YearChart:    ChartSize{Width: 1000, Height: 400},
		CauseChart:   ChartSize{Width: 600, Height: 400},
		ScatterChart: ChartSize{Width: 600, Height: 600},
		TrendChart:   ChartSize{Width: 1000, Height: 400},
	}
}

// Load reads and parses the YAML settings file at path. The file is
// unmarshalled over the defaults, so absent keys keep their default
// values while explicit ones are preserved, a zero seed included.
// An empty path returns the defaults directly.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults backfills values that cannot meaningfully be zero: an
// empty output directory and zero chart dimensions.
func (c *Config) applyDefaults() {
	def := Default()
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	for _, p := range []struct {
		size *ChartSize
		def  ChartSize
	}{
		{&c.YearChart, def.YearChart},
		{&c.CauseChart, def.CauseChart},
		{&c.ScatterChart, def.ScatterChart},
		{&c.TrendChart, def.TrendChart},
	} {
		if p.size.Width == 0 {
			p.size.Width = p.def.Width
		}
		if p.size.Height == 0 {
			p.size.Height = p.def.Height
		}
	}
}

func (c *Config) validate() error {
	for _, s := range []ChartSize{c.YearChart, c.CauseChart, c.ScatterChart, c.TrendChart} {
		if s.Width < 0 || s.Height < 0 {
			return errors.New("chart dimensions must not be negative")
		}
	}
	return nil
}
