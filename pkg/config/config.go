// Package config holds the explicit configuration passed into the
// scanner and CLI. The analyzer core takes all of it as parameters;
// nothing here is ambient state.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for qualytics.
type Config struct {
	// Analysis limits
	Analysis AnalysisConfig `koanf:"analysis" toml:"analysis"`

	// Quality thresholds
	Thresholds ThresholdConfig `koanf:"thresholds" toml:"thresholds"`

	// File exclusion patterns
	Exclude ExcludeConfig `koanf:"exclude" toml:"exclude"`

	// Cache settings
	Cache CacheConfig `koanf:"cache" toml:"cache"`

	// Output settings
	Output OutputConfig `koanf:"output" toml:"output"`
}

// AnalysisConfig controls how analysis runs.
type AnalysisConfig struct {
	Workers     int   `koanf:"workers" toml:"workers"`       // 0 = 2x NumCPU
	MaxFileSize int64 `koanf:"max_file_size" toml:"max_file_size"` // bytes, 0 = no limit
}

// ThresholdConfig defines metric thresholds for reporting and CI gating.
type ThresholdConfig struct {
	CyclomaticComplexity int     `koanf:"cyclomatic_complexity" toml:"cyclomatic_complexity"`
	MinMaintainability   float64 `koanf:"min_maintainability" toml:"min_maintainability"`
}

// ExcludeConfig defines file exclusion rules.
type ExcludeConfig struct {
	Patterns  []string `koanf:"patterns" toml:"patterns"`
	Dirs      []string `koanf:"dirs" toml:"dirs"`
	Gitignore bool     `koanf:"gitignore" toml:"gitignore"`
}

// CacheConfig controls result caching.
type CacheConfig struct {
	Enabled bool   `koanf:"enabled" toml:"enabled"`
	Dir     string `koanf:"dir" toml:"dir"`
	TTL     int    `koanf:"ttl" toml:"ttl"` // hours
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format  string `koanf:"format" toml:"format"` // text, json, markdown, toon
	Color   bool   `koanf:"color" toml:"color"`
	Verbose bool   `koanf:"verbose" toml:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Workers:     0,
			MaxFileSize: 0,
		},
		Thresholds: ThresholdConfig{
			CyclomaticComplexity: 10,
			MinMaintainability:   0,
		},
		Exclude: ExcludeConfig{
			Patterns: []string{
				"*.min.js",
				"*.bundle.js",
				"*.d.ts",
			},
			Dirs: []string{
				"node_modules",
				".git",
				"dist",
				"build",
				"coverage",
				"out",
				"vendor",
			},
			Gitignore: true,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     ".qualytics/cache",
			TTL:     24,
		},
		Output: OutputConfig{
			Format:  "text",
			Color:   true,
			Verbose: false,
		},
	}
}

// Load loads configuration from a TOML, YAML, or JSON file, layered over
// the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault tries standard config locations, falling back to the
// defaults when none exists or parses.
func LoadOrDefault() *Config {
	names := []string{
		"qualytics.toml",
		"qualytics.yaml",
		"qualytics.yml",
		"qualytics.json",
		".qualytics.toml",
		".qualytics.yaml",
		".qualytics.yml",
		".qualytics.json",
	}

	for _, dir := range []string{".", ".qualytics"} {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				if cfg, err := Load(path); err == nil {
					return cfg
				}
			}
		}
	}

	return DefaultConfig()
}
