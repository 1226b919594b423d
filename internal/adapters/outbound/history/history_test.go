package history_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolgauge/toolgauge/internal/adapters/outbound/history"
	"github.com/toolgauge/toolgauge/internal/domain"
)

func sampleReport(runID string, score float64, decision domain.Decision) *domain.EvaluationReport {
	return &domain.EvaluationReport{
		Tool:      "scanner",
		RunID:     runID,
		Timestamp: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		Summary: domain.Summary{
			CombinedScore: score,
			Decision:      decision,
		},
	}
}

func TestFileStore_SaveAndLatest(t *testing.T) {
	dir := t.TempDir()
	store := history.New()

	require.NoError(t, store.Save(dir, sampleReport("run-1", 4.2, domain.DecisionStrongPass)))

	loaded, err := store.Latest(dir)
	require.NoError(t, err)
	assert.Equal(t, "run-1", loaded.RunID)
	assert.InDelta(t, 4.2, loaded.Summary.CombinedScore, 0.001)
	assert.Equal(t, domain.DecisionStrongPass, loaded.Summary.Decision)
}

func TestFileStore_LatestWithoutSave(t *testing.T) {
	_, err := history.New().Latest(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no saved report")
}

func TestFileStore_HistoryAppendsInOrder(t *testing.T) {
	dir := t.TempDir()
	store := history.New()

	require.NoError(t, store.Save(dir, sampleReport("run-1", 3.1, domain.DecisionWeakPass)))
	require.NoError(t, store.Save(dir, sampleReport("run-2", 3.8, domain.DecisionPass)))
	require.NoError(t, store.Save(dir, sampleReport("run-3", 4.4, domain.DecisionStrongPass)))

	entries, err := store.History(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "run-1", entries[0].RunID)
	assert.Equal(t, "run-3", entries[2].RunID)
	assert.Equal(t, domain.DecisionPass, entries[1].Decision)
}

func TestFileStore_HistoryEmptyWithoutSaves(t *testing.T) {
	entries, err := history.New().History(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileStore_LatestOverwritten(t *testing.T) {
	dir := t.TempDir()
	store := history.New()

	require.NoError(t, store.Save(dir, sampleReport("run-1", 3.0, domain.DecisionWeakPass)))
	require.NoError(t, store.Save(dir, sampleReport("run-2", 4.0, domain.DecisionStrongPass)))

	loaded, err := store.Latest(dir)
	require.NoError(t, err)
	assert.Equal(t, "run-2", loaded.RunID)
}
