package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolgauge/toolgauge/internal/domain"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, domain.DefaultConfig().Validate())
}

func TestValidate_RejectsUnknownRescale(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Combine.Rescale = "logarithmic"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "combine.rescale")
}

func TestValidate_RejectsUnknownDecisionScale(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Decision.Scale = "percent"
	assert.Error(t, cfg.Validate())
}

func TestValidate_CombineWeightsMustSumToOne(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Combine.ProgrammaticWeight = 0.7
	cfg.Combine.SemanticWeight = 0.4
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestValidate_RejectsDuplicateJudgeDimension(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Judges = append(cfg.Judges, domain.JudgeSpec{Dimension: "accuracy", Weight: 0.1})
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate judge dimension")
}

func TestValidate_RejectsNegativeJudgeWeight(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Judges[0].Weight = -0.2
	assert.Error(t, cfg.Validate())
}

func TestWeightTable_FullSet(t *testing.T) {
	cfg := domain.DefaultConfig()
	table := cfg.WeightTable(false)

	assert.Len(t, table, 3)
	assert.InDelta(t, 0.4, table["accuracy"], 0.001)
	assert.InDelta(t, 0.35, table["completeness"], 0.001)
	assert.InDelta(t, 0.25, table["actionability"], 0.001)
}

func TestWeightTable_QuickKeepsFocusedOnly(t *testing.T) {
	cfg := domain.DefaultConfig()
	table := cfg.WeightTable(true)

	assert.Len(t, table, 1)
	assert.InDelta(t, 0.4, table["accuracy"], 0.001)
}

func TestWeightTable_QuickWithoutFocusedFallsBackToFull(t *testing.T) {
	cfg := domain.DefaultConfig()
	for i := range cfg.Judges {
		cfg.Judges[i].Focused = false
	}
	table := cfg.WeightTable(true)
	assert.Len(t, table, 3)
}
