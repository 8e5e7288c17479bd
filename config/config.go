// Package config holds the file and environment configuration for the GRC
// core: where framework data lives, extra framework registrations, and the
// evidence excerpt bound.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ethanolivertroy/grc-core/framework"
	"github.com/ethanolivertroy/grc-core/mapping"

	"github.com/sirupsen/logrus"
)

// Framework registers one framework data file beyond the built-in registry.
type Framework struct {
	Name  string `yaml:"name" json:"name"`
	File  string `yaml:"file" json:"file"`
	Shape string `yaml:"shape,omitempty" json:"shape,omitempty"` // flat, leveled, functional, baseline
}

// Config is the complete GRC core configuration.
type Config struct {
	DataDir      string      `yaml:"data_dir" json:"data_dir"`
	MappingsFile string      `yaml:"mappings_file,omitempty" json:"mappings_file,omitempty"`
	ExcerptLimit int         `yaml:"excerpt_limit,omitempty" json:"excerpt_limit,omitempty"`
	Frameworks   []Framework `yaml:"frameworks,omitempty" json:"frameworks,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:      "data",
		MappingsFile: "framework-mappings.json",
		ExcerptLimit: 2000,
	}
}

// FromEnv returns the default configuration with environment overrides
// applied: GRC_DATA_DIR, GRC_MAPPINGS_FILE, and GRC_EXCERPT_LIMIT.
func FromEnv() Config {
	cfg := Default()
	cfg.applyEnv()
	return cfg
}

// Load reads a YAML configuration file over the defaults, then applies
// environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if dir := os.Getenv("GRC_DATA_DIR"); dir != "" {
		c.DataDir = dir
	}
	if file := os.Getenv("GRC_MAPPINGS_FILE"); file != "" {
		c.MappingsFile = file
	}
	if raw := os.Getenv("GRC_EXCERPT_LIMIT"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			c.ExcerptLimit = limit
		}
	}
}

// Validate checks that every extra framework entry is well-formed.
func (c Config) Validate() error {
	for i, fw := range c.Frameworks {
		if fw.Name == "" {
			return fmt.Errorf("framework %d: name is required", i)
		}
		if fw.File == "" {
			return fmt.Errorf("framework %q: file is required", fw.Name)
		}
		if _, err := parseShape(fw.Shape); err != nil {
			return fmt.Errorf("framework %q: %w", fw.Name, err)
		}
	}
	return nil
}

func parseShape(s string) (framework.Shape, error) {
	switch s {
	case "", "flat":
		return framework.ShapeFlat, nil
	case "leveled":
		return framework.ShapeLeveled, nil
	case "functional":
		return framework.ShapeFunctional, nil
	case "baseline":
		return framework.ShapeBaseline, nil
	}
	return 0, fmt.Errorf("unknown shape %q (expected flat, leveled, functional, or baseline)", s)
}

// MappingsPath resolves the mappings file relative to the data directory
// unless it is absolute.
func (c Config) MappingsPath() string {
	if filepath.IsAbs(c.MappingsFile) {
		return c.MappingsFile
	}
	return filepath.Join(c.DataDir, c.MappingsFile)
}

// NewStore builds a framework store from the configuration, registering any
// extra frameworks. The configuration must be valid.
func (c Config) NewStore(log *logrus.Logger) (*framework.Store, error) {
	store := framework.NewStoreWithLogger(c.DataDir, log)
	for _, fw := range c.Frameworks {
		shape, err := parseShape(fw.Shape)
		if err != nil {
			return nil, fmt.Errorf("framework %q: %w", fw.Name, err)
		}
		store.Register(fw.Name, fw.File, shape)
	}
	return store, nil
}

// NewIndex builds a mapping index over the configured mappings file.
func (c Config) NewIndex() *mapping.Index {
	return mapping.NewIndex(c.MappingsPath())
}
