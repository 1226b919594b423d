package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolgauge/toolgauge/internal/domain"
)

func validMetadata() domain.EnvelopeMetadata {
	return domain.EnvelopeMetadata{
		ToolName:      "scanner",
		RunID:         "run-1",
		SchemaVersion: "1.0",
		Timestamp:     time.Now(),
	}
}

func TestEnvelopeValidate_Valid(t *testing.T) {
	env := &domain.Envelope{Metadata: validMetadata(), Data: map[string]any{}}
	require.NoError(t, env.Validate())
}

func TestEnvelopeValidate_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Envelope)
	}{
		{"nil data", func(e *domain.Envelope) { e.Data = nil }},
		{"no tool name", func(e *domain.Envelope) { e.Metadata.ToolName = "" }},
		{"no run id", func(e *domain.Envelope) { e.Metadata.RunID = "" }},
		{"no schema version", func(e *domain.Envelope) { e.Metadata.SchemaVersion = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := &domain.Envelope{Metadata: validMetadata(), Data: map[string]any{}}
			tt.mutate(env)
			assert.Error(t, env.Validate())
		})
	}
}

func TestFindings_TopLevelLayout(t *testing.T) {
	env := &domain.Envelope{Data: map[string]any{
		"findings": []any{
			map[string]any{"id": "f1", "category": "secrets", "severity": "high", "message": "token", "path": "a.go"},
		},
	}}

	findings := env.Findings()
	require.Len(t, findings, 1)
	assert.Equal(t, "f1", findings[0].ID)
	assert.Equal(t, "secrets", findings[0].Category)
	assert.Equal(t, "high", findings[0].Severity)
	assert.Equal(t, "a.go", findings[0].Path)
}

func TestFindings_NestedResultsLayout(t *testing.T) {
	env := &domain.Envelope{Data: map[string]any{
		"results": map[string]any{
			"findings": []any{map[string]any{"category": "secrets"}},
		},
	}}
	assert.Len(t, env.Findings(), 1)
}

func TestFindings_BareResultsListLayout(t *testing.T) {
	env := &domain.Envelope{Data: map[string]any{
		"results": []any{map[string]any{"category": "secrets"}},
	}}
	assert.Len(t, env.Findings(), 1)
}

func TestFindings_NonMapItemsIgnored(t *testing.T) {
	env := &domain.Envelope{Data: map[string]any{
		"findings": []any{"not an object", map[string]any{"category": "secrets"}},
	}}
	assert.Len(t, env.Findings(), 1)
}

func TestFindings_AbsentIsNil(t *testing.T) {
	env := &domain.Envelope{Data: map[string]any{}}
	assert.Nil(t, env.Findings())
}

func TestSummaryBlock_BothLayouts(t *testing.T) {
	top := &domain.Envelope{Data: map[string]any{
		"summary": map[string]any{"total_findings": float64(3)},
	}}
	nested := &domain.Envelope{Data: map[string]any{
		"results": map[string]any{"summary": map[string]any{"total_findings": float64(3)}},
	}}

	for _, env := range []*domain.Envelope{top, nested} {
		n, ok := domain.IntField(env.SummaryBlock(), "total_findings")
		require.True(t, ok)
		assert.Equal(t, 3, n)
	}
}

func TestIntField_ToleratesJSONNumberTypes(t *testing.T) {
	m := map[string]any{"a": float64(7), "b": 7, "c": "seven"}

	n, ok := domain.IntField(m, "a")
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	n, ok = domain.IntField(m, "b")
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = domain.IntField(m, "c")
	assert.False(t, ok)

	_, ok = domain.IntField(nil, "a")
	assert.False(t, ok)
}
