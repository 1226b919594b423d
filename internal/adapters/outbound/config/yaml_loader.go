// Package config loads the per-tool engine configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/toolgauge/toolgauge/internal/domain"
)

const fileName = ".toolgauge.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .toolgauge.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .toolgauge.yaml from dir. Returns DefaultConfig if the file
// does not exist; explicit values overlay the defaults.
func (l *YAMLLoader) Load(dir string) (domain.EvalConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.EvalConfig{}, err
	}

	var cfg domain.EvalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.EvalConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	cfg = mergeDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return domain.EvalConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}

// mergeDefaults fills unset sections from DefaultConfig. Explicit values
// always win; a partially specified file stays usable.
func mergeDefaults(cfg domain.EvalConfig) domain.EvalConfig {
	defaults := domain.DefaultConfig()

	if len(cfg.Categories) == 0 {
		cfg.Categories = defaults.Categories
	}
	if len(cfg.Judges) == 0 {
		cfg.Judges = defaults.Judges
	}
	if cfg.Judge.Provider == "" {
		cfg.Judge.Provider = defaults.Judge.Provider
	}
	if cfg.Judge.TimeoutSeconds == 0 {
		cfg.Judge.TimeoutSeconds = defaults.Judge.TimeoutSeconds
	}
	if cfg.Combine.Rescale == "" {
		cfg.Combine.Rescale = defaults.Combine.Rescale
	}
	if cfg.Combine.ProgrammaticWeight == 0 && cfg.Combine.SemanticWeight == 0 {
		cfg.Combine.ProgrammaticWeight = defaults.Combine.ProgrammaticWeight
		cfg.Combine.SemanticWeight = defaults.Combine.SemanticWeight
	}
	if cfg.Decision.Scale == "" {
		cfg.Decision.Scale = defaults.Decision.Scale
	}
	if cfg.PerformanceTargetSecs == 0 {
		cfg.PerformanceTargetSecs = defaults.PerformanceTargetSecs
	}

	return cfg
}
