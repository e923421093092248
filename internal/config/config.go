package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/AbrarS242/csv-analyser/internal/engine"
	"github.com/AbrarS242/csv-analyser/internal/storage"
)

// Config is the on-disk configuration. Every field is optional; missing
// fields keep their default value.
type Config struct {
	Limits  Limits  `yaml:"limits"`
	Display Display `yaml:"display"`
	Plot    Plot    `yaml:"plot"`

	// LogLevel is any level understood by logrus ("debug", "warn", ...).
	LogLevel string `yaml:"log_level"`
}

type Limits struct {
	MaxRows        int `yaml:"max_rows"`
	MaxCols        int `yaml:"max_cols"`
	MaxLabelLength int `yaml:"max_label_length"`
}

type Display struct {
	CellWidth int `yaml:"cell_width"`
}

type Plot struct {
	Bands        int `yaml:"bands"`
	MaxBarLength int `yaml:"max_bar_length"`
}

// Default returns the built-in configuration.
func Default() *Config {
	limits := storage.DefaultLimits()
	opts := engine.DefaultOptions()

	return &Config{
		Limits: Limits{
			MaxRows:        limits.MaxRows,
			MaxCols:        limits.MaxCols,
			MaxLabelLength: limits.MaxLabelLength,
		},
		Display: Display{CellWidth: opts.CellWidth},
		Plot: Plot{
			Bands:        opts.Bands,
			MaxBarLength: opts.MaxBarLength,
		},
		LogLevel: "warn",
	}
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks that every bound is usable.
func (c *Config) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"limits.max_rows", c.Limits.MaxRows},
		{"limits.max_cols", c.Limits.MaxCols},
		{"limits.max_label_length", c.Limits.MaxLabelLength},
		{"display.cell_width", c.Display.CellWidth},
		{"plot.bands", c.Plot.Bands},
		{"plot.max_bar_length", c.Plot.MaxBarLength},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return errors.Errorf("%s must be positive, got %d", p.name, p.value)
		}
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}

// StorageLimits returns the loader bounds.
func (c *Config) StorageLimits() storage.Limits {
	return storage.Limits{
		MaxRows:        c.Limits.MaxRows,
		MaxCols:        c.Limits.MaxCols,
		MaxLabelLength: c.Limits.MaxLabelLength,
	}
}

// EngineOptions returns the output layout.
func (c *Config) EngineOptions() engine.Options {
	return engine.Options{
		CellWidth:    c.Display.CellWidth,
		Bands:        c.Plot.Bands,
		MaxBarLength: c.Plot.MaxBarLength,
	}
}
