package judging_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolgauge/toolgauge/internal/domain/judging"
)

// stubProvider answers per dimension by matching the rendered prompt title.
type stubProvider struct {
	responses map[string]string
	err       error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Generate(_ context.Context, prompt string, _ judging.Settings) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	for dimension, response := range s.responses {
		if strings.Contains(prompt, fmt.Sprintf("# %s evaluation", dimension)) {
			return response, nil
		}
	}
	return "", nil
}

func scoreJSON(score int, confidence float64) string {
	return fmt.Sprintf(`{"score": %d, "confidence": %.2f, "reasoning": "ok"}`, score, confidence)
}

func newJudges(provider judging.Provider, weights map[string]float64) []judging.Judge {
	var judges []judging.Judge
	for _, dim := range []string{"a", "b", "c", "d"} {
		w, ok := weights[dim]
		if !ok {
			continue
		}
		judges = append(judges, judging.Judge{Dimension: dim, Weight: w, Provider: provider})
	}
	return judges
}

func TestOrchestrator_WeightedMean(t *testing.T) {
	provider := &stubProvider{responses: map[string]string{
		"a": scoreJSON(5, 0.9),
		"b": scoreJSON(4, 0.8),
		"c": scoreJSON(3, 0.7),
		"d": scoreJSON(5, 0.6),
	}}
	judges := newJudges(provider, map[string]float64{"a": 0.4, "b": 0.25, "c": 0.2, "d": 0.15})

	orch := judging.NewOrchestrator(judges, judging.Settings{Model: "test-model"}, time.Second)
	result, ok := orch.Evaluate(context.Background(), judging.EvidenceBundle{})

	require.True(t, ok)
	assert.InDelta(t, 4.35, result.Score, 0.001)
	assert.InDelta(t, 0.75, result.AvgConfidence, 0.001)
	assert.Equal(t, "test-model", result.Model)
	assert.NotEmpty(t, result.TraceID)
	require.Len(t, result.Dimensions, 4)

	// Stable dimension order regardless of goroutine scheduling.
	assert.Equal(t, "a", result.Dimensions[0].Dimension)
	assert.Equal(t, "d", result.Dimensions[3].Dimension)
	assert.InDelta(t, 2.0, result.Dimensions[0].WeightedScore, 0.001)
}

func TestOrchestrator_EmptyResponseDegradesToWorstScore(t *testing.T) {
	provider := &stubProvider{responses: map[string]string{}} // all respond empty
	judges := newJudges(provider, map[string]float64{"a": 1.0})

	orch := judging.NewOrchestrator(judges, judging.Settings{}, time.Second)
	result, ok := orch.Evaluate(context.Background(), judging.EvidenceBundle{})

	require.True(t, ok)
	assert.InDelta(t, 1.0, result.Score, 0.001)
	assert.Equal(t, 0.0, result.AvgConfidence)
}

func TestOrchestrator_ProviderErrorKeptInWeightedSum(t *testing.T) {
	good := &stubProvider{responses: map[string]string{"a": scoreJSON(5, 1.0)}}
	bad := &stubProvider{err: errors.New("rate limited")}

	judges := []judging.Judge{
		{Dimension: "a", Weight: 0.5, Provider: good},
		{Dimension: "b", Weight: 0.5, Provider: bad},
	}

	orch := judging.NewOrchestrator(judges, judging.Settings{}, time.Second)
	result, ok := orch.Evaluate(context.Background(), judging.EvidenceBundle{})

	require.True(t, ok)
	// (5*0.5 + 1*0.5) / 1.0
	assert.InDelta(t, 3.0, result.Score, 0.001)
	assert.Contains(t, result.Dimensions[1].Reasoning, "judge invocation failed")
}

func TestOrchestrator_ZeroTotalWeightIsUndefined(t *testing.T) {
	provider := &stubProvider{responses: map[string]string{"a": scoreJSON(5, 1.0)}}
	judges := newJudges(provider, map[string]float64{"a": 0.0})

	orch := judging.NewOrchestrator(judges, judging.Settings{}, time.Second)
	result, ok := orch.Evaluate(context.Background(), judging.EvidenceBundle{})

	assert.False(t, ok)
	assert.Nil(t, result)
}

func TestOrchestrator_NoJudgesIsUndefined(t *testing.T) {
	orch := judging.NewOrchestrator(nil, judging.Settings{}, time.Second)
	result, ok := orch.Evaluate(context.Background(), judging.EvidenceBundle{})
	assert.False(t, ok)
	assert.Nil(t, result)
}

func TestOrchestrator_GateCapsFavorableScore(t *testing.T) {
	provider := &stubProvider{responses: map[string]string{"a": scoreJSON(5, 0.9)}}
	judges := []judging.Judge{{
		Dimension: "a",
		Weight:    1.0,
		Provider:  provider,
		Assertions: []judging.Assertion{{
			Description: "expected findings present",
			Holds:       func(judging.EvidenceBundle) bool { return false },
		}},
	}}

	orch := judging.NewOrchestrator(judges, judging.Settings{}, time.Second)
	result, ok := orch.Evaluate(context.Background(), judging.EvidenceBundle{})

	require.True(t, ok)
	assert.InDelta(t, 2.0, result.Score, 0.001)
	assert.False(t, result.Dimensions[0].GroundTruthPassed)
	assert.InDelta(t, 0.9, result.Dimensions[0].Confidence, 0.001)
}
