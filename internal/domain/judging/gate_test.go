package judging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolgauge/toolgauge/internal/domain"
	"github.com/toolgauge/toolgauge/internal/domain/judging"
)

func intp(n int) *int { return &n }

func TestApplyCap_ClampsHighScoreOnFailure(t *testing.T) {
	result := domain.JudgeResult{Dimension: "accuracy", Score: 5, Confidence: 0.9}
	judging.ApplyCap(&result, false, []string{"missed minimum detections"})

	assert.Equal(t, 2, result.Score)
	assert.False(t, result.GroundTruthPassed)
	assert.Equal(t, []string{"missed minimum detections"}, result.GroundTruthFailures)
	// Confidence is never adjusted by the gate.
	assert.InDelta(t, 0.9, result.Confidence, 0.001)
}

func TestApplyCap_LowScoreUnchangedOnFailure(t *testing.T) {
	result := domain.JudgeResult{Dimension: "accuracy", Score: 1}
	judging.ApplyCap(&result, false, []string{"failed"})
	assert.Equal(t, 1, result.Score)
}

func TestApplyCap_NoOpWhenAssertionsPass(t *testing.T) {
	result := domain.JudgeResult{Dimension: "accuracy", Score: 5}
	judging.ApplyCap(&result, true, nil)

	assert.Equal(t, 5, result.Score)
	assert.True(t, result.GroundTruthPassed)
	assert.Empty(t, result.GroundTruthFailures)
}

func TestRunAssertions_CollectsAllFailures(t *testing.T) {
	assertions := []judging.Assertion{
		{Description: "first", Holds: func(judging.EvidenceBundle) bool { return false }},
		{Description: "second", Holds: func(judging.EvidenceBundle) bool { return true }},
		{Description: "third", Holds: func(judging.EvidenceBundle) bool { return false }},
	}

	passed, failures := judging.RunAssertions(assertions, nil)
	assert.False(t, passed)
	assert.Equal(t, []string{"first", "third"}, failures)
}

func TestRunAssertions_NoAssertionsPasses(t *testing.T) {
	passed, failures := judging.RunAssertions(nil, nil)
	assert.True(t, passed)
	assert.Empty(t, failures)
}

func TestStandardAssertions_TotalDetectionFloor(t *testing.T) {
	gt := &domain.GroundTruth{Expectations: map[string]domain.Expectation{
		"secrets": {MinExpected: intp(3)},
	}}
	findings := []domain.Finding{
		{Category: "secrets"}, {Category: "secrets"},
	}

	passed, failures := judging.RunAssertions(judging.StandardAssertions(findings, gt), nil)
	assert.False(t, passed)
	require.NotEmpty(t, failures)
	assert.Contains(t, failures[0], "total detections >= 3")
}

func TestStandardAssertions_NonEmptyCategoryMustHaveFindings(t *testing.T) {
	gt := &domain.GroundTruth{Expectations: map[string]domain.Expectation{
		"secrets":    {MinExpected: intp(1)},
		"dead_code":  {MinExpected: intp(0)},
		"complexity": {},
	}}
	findings := []domain.Finding{{Category: "other"}}

	passed, failures := judging.RunAssertions(judging.StandardAssertions(findings, gt), nil)
	assert.False(t, passed)
	// Only the non-empty category produces an assertion.
	assert.Len(t, failures, 1)
	assert.Contains(t, failures[0], `"secrets"`)
}

func TestStandardAssertions_SeveritySpreadWithinCategory(t *testing.T) {
	findings := []domain.Finding{
		{Category: "secrets", Severity: "low"},
		{Category: "secrets", Severity: "medium"},
		{Category: "secrets", Severity: "critical"},
	}

	passed, failures := judging.RunAssertions(judging.StandardAssertions(findings, nil), nil)
	assert.False(t, passed)
	assert.Contains(t, failures[0], "severity levels")
}

func TestStandardAssertions_AllPass(t *testing.T) {
	gt := &domain.GroundTruth{Expectations: map[string]domain.Expectation{
		"secrets": {MinExpected: intp(2)},
	}}
	findings := []domain.Finding{
		{Category: "secrets", Severity: "high"},
		{Category: "secrets", Severity: "critical"},
	}

	passed, failures := judging.RunAssertions(judging.StandardAssertions(findings, gt), nil)
	assert.True(t, passed)
	assert.Empty(t, failures)
}
