package domain

import (
	"fmt"
	"math"
)

// RescaleMode selects how the 0-1 programmatic score is lifted onto the
// judge 1-5 scale before combination. Both conventions exist in deployed
// pipelines and are chosen explicitly, never assumed.
type RescaleMode string

const (
	// RescaleLinear maps p to p*5: a 0.0 programmatic score becomes 0.
	RescaleLinear RescaleMode = "linear"
	// RescaleAffine maps p to 1+p*4: a 0.0 programmatic score still lands
	// on the judge scale's floor of 1.
	RescaleAffine RescaleMode = "affine"
)

// DecisionScale selects which threshold table resolves the verdict.
//
// The two tables are NOT multiples of each other: 0.5 on the raw scale is
// WEAK_PASS, while the equivalent 2.5 on the normalized scale is FAIL.
// This inconsistency is inherited from the tool pipelines this engine
// standardizes; pick one per pipeline and do not mix them.
type DecisionScale string

const (
	// DecisionScaleNormalized uses thresholds 4.0 / 3.5 / 3.0 on 0-5.
	DecisionScaleNormalized DecisionScale = "normalized"
	// DecisionScaleRaw uses thresholds 0.8 / 0.6 / 0.5 on 0-1, applied to
	// the programmatic score rather than the rescaled combined score.
	DecisionScaleRaw DecisionScale = "raw"
)

// JudgeSpec declares one semantic dimension to be judged.
type JudgeSpec struct {
	Dimension string  `yaml:"dimension" json:"dimension"`
	Weight    float64 `yaml:"weight"    json:"weight"`
	// Focused judges are the subset kept when --quick is set.
	Focused bool `yaml:"focused" json:"focused,omitempty"`
}

// JudgeSettings configures how judges are invoked.
type JudgeSettings struct {
	Provider       string `yaml:"provider"        json:"provider,omitempty"` // anthropic, openai, heuristic
	Model          string `yaml:"model"           json:"model,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds,omitempty"`
}

// CombineConfig holds the linear weighting that merges the programmatic
// and semantic scores.
type CombineConfig struct {
	Rescale            RescaleMode `yaml:"rescale"             json:"rescale"`
	ProgrammaticWeight float64     `yaml:"programmatic_weight" json:"programmatic_weight"`
	SemanticWeight     float64     `yaml:"semantic_weight"     json:"semantic_weight"`
}

// DecisionConfig picks the threshold convention for this pipeline.
type DecisionConfig struct {
	Scale DecisionScale `yaml:"scale" json:"scale"`
}

// EvalConfig is the per-tool configuration instantiating the generic
// engine. Loaded once per run and read-only afterward.
type EvalConfig struct {
	Tool                  string         `yaml:"tool"                    json:"tool"`
	Categories            []string       `yaml:"categories"              json:"categories"`
	Judges                []JudgeSpec    `yaml:"judges"                  json:"judges,omitempty"`
	Judge                 JudgeSettings  `yaml:"judge"                   json:"judge,omitempty"`
	Combine               CombineConfig  `yaml:"combine"                 json:"combine"`
	Decision              DecisionConfig `yaml:"decision"                json:"decision"`
	PerformanceTargetSecs float64        `yaml:"performance_target_secs" json:"performance_target_secs,omitempty"`
}

// DefaultCategories is the category set of the built-in check catalog.
var DefaultCategories = []string{
	"output_quality", "accuracy", "coverage", "performance", "edge_cases",
}

// DefaultConfig returns the configuration used when no .toolgauge.yaml
// exists: built-in catalog, 0.6/0.4 combination, affine rescale so the
// combined score stays on the judge scale, normalized thresholds.
func DefaultConfig() EvalConfig {
	return EvalConfig{
		Categories: append([]string(nil), DefaultCategories...),
		Judges: []JudgeSpec{
			{Dimension: "accuracy", Weight: 0.4, Focused: true},
			{Dimension: "completeness", Weight: 0.35},
			{Dimension: "actionability", Weight: 0.25},
		},
		Judge: JudgeSettings{
			Provider:       "anthropic",
			TimeoutSeconds: 120,
		},
		Combine: CombineConfig{
			Rescale:            RescaleAffine,
			ProgrammaticWeight: 0.6,
			SemanticWeight:     0.4,
		},
		Decision:              DecisionConfig{Scale: DecisionScaleNormalized},
		PerformanceTargetSecs: 300,
	}
}

// Validate checks the config for invalid values and returns a descriptive
// error. Called before the engine runs; a bad config is fatal.
func (c EvalConfig) Validate() error {
	switch c.Combine.Rescale {
	case RescaleLinear, RescaleAffine, "":
	default:
		return fmt.Errorf("unknown combine.rescale %q (valid: linear, affine)", c.Combine.Rescale)
	}

	switch c.Decision.Scale {
	case DecisionScaleNormalized, DecisionScaleRaw, "":
	default:
		return fmt.Errorf("unknown decision.scale %q (valid: normalized, raw)", c.Decision.Scale)
	}

	if c.Combine.ProgrammaticWeight < 0 || c.Combine.SemanticWeight < 0 {
		return fmt.Errorf("combine weights must be non-negative (got %.2f / %.2f)",
			c.Combine.ProgrammaticWeight, c.Combine.SemanticWeight)
	}
	sum := c.Combine.ProgrammaticWeight + c.Combine.SemanticWeight
	if sum != 0 && math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("combine weights must sum to 1.0 (got %.2f)", sum)
	}

	seen := make(map[string]bool, len(c.Judges))
	for _, j := range c.Judges {
		if j.Dimension == "" {
			return fmt.Errorf("judge with empty dimension")
		}
		if j.Weight < 0 {
			return fmt.Errorf("judge %q has negative weight %.2f", j.Dimension, j.Weight)
		}
		if seen[j.Dimension] {
			return fmt.Errorf("duplicate judge dimension %q", j.Dimension)
		}
		seen[j.Dimension] = true
	}

	if c.Judge.TimeoutSeconds < 0 {
		return fmt.Errorf("judge.timeout_seconds must be >= 0 (got %d)", c.Judge.TimeoutSeconds)
	}
	if c.PerformanceTargetSecs < 0 {
		return fmt.Errorf("performance_target_secs must be >= 0 (got %.1f)", c.PerformanceTargetSecs)
	}

	return nil
}

// WeightTable returns the judge dimension -> weight mapping. When quick is
// set only focused judges are included; if none are marked focused the
// full set is kept so quick mode never silently disables judging.
func (c EvalConfig) WeightTable(quick bool) map[string]float64 {
	table := make(map[string]float64, len(c.Judges))
	if quick {
		for _, j := range c.Judges {
			if j.Focused {
				table[j.Dimension] = j.Weight
			}
		}
		if len(table) > 0 {
			return table
		}
	}
	for _, j := range c.Judges {
		table[j.Dimension] = j.Weight
	}
	return table
}
