package groundtruth_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolgauge/toolgauge/internal/adapters/outbound/groundtruth"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestDirLoader_MissingDirectoryIsEmptyNotError(t *testing.T) {
	truths, err := groundtruth.New().Load(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, truths)
}

func TestDirLoader_KeyedByDocumentID(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "scenario.json", `{"id": "run-1", "expected": {"secrets": {"min_expected": 2}}}`)

	truths, err := groundtruth.New().Load(dir)
	require.NoError(t, err)
	require.Contains(t, truths, "run-1")
	exp, ok := truths["run-1"].Expectation("secrets")
	require.True(t, ok)
	assert.Equal(t, 2, *exp.MinExpected)
}

func TestDirLoader_FallsBackToFileStem(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "repo-7.json", `{"expected": {"secrets": {"min_expected": 1}}}`)

	truths, err := groundtruth.New().Load(dir)
	require.NoError(t, err)
	require.Contains(t, truths, "repo-7")
	assert.Equal(t, "repo-7", truths["repo-7"].ID)
}

func TestDirLoader_IgnoresNonJSONAndHidden(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "notes.txt", "not ground truth")
	write(t, dir, ".hidden.json", `{}`)
	write(t, dir, "real.json", `{"id": "run-1"}`)

	truths, err := groundtruth.New().Load(dir)
	require.NoError(t, err)
	assert.Len(t, truths, 1)
}

func TestDirLoader_ParseErrorReported(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "broken.json", "{oops")

	_, err := groundtruth.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.json")
}
