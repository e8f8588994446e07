package app

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML configuration file schema. Flags take
// precedence; file values only fill fields the flags left at their
// defaults.
type FileConfig struct {
	Output    string   `yaml:"output"`
	UserAgent string   `yaml:"userAgent"`
	Forms     []string `yaml:"forms"`

	Cache struct {
		Dir string `yaml:"dir"`
	} `yaml:"cache"`

	Fetch struct {
		MaxAttempts int `yaml:"maxAttempts"`
	} `yaml:"fetch"`

	Verbose bool `yaml:"verbose"`
}

// LoadConfigFile reads a YAML config file.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse config: %w", err)
	}
	return fc, nil
}

// ApplyFileConfig overlays file values into cfg for fields still at their
// flag defaults, so explicit flags always win.
func ApplyFileConfig(cfg *Config, fc FileConfig, defaults Config) {
	if cfg == nil {
		return
	}
	if cfg.OutputDir == defaults.OutputDir && fc.Output != "" {
		cfg.OutputDir = fc.Output
	}
	if cfg.UserAgent == defaults.UserAgent && fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if len(fc.Forms) > 0 && equalStrings(cfg.Forms, defaults.Forms) {
		cfg.Forms = append([]string{}, fc.Forms...)
	}
	if cfg.CacheDir == defaults.CacheDir && fc.Cache.Dir != "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if cfg.MaxAttempts == defaults.MaxAttempts && fc.Fetch.MaxAttempts > 0 {
		cfg.MaxAttempts = fc.Fetch.MaxAttempts
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
