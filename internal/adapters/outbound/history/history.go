// Package history persists evaluation reports as JSON files.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/toolgauge/toolgauge/internal/domain"
)

const (
	historyDir  = ".toolgauge/history"
	latestFile  = "latest.json"
	entriesFile = "runs.json"
)

// FileStore implements domain.ReportStore using JSON file storage under
// .toolgauge/history in the working directory.
type FileStore struct{}

func New() *FileStore {
	return &FileStore{}
}

// Save writes the full report as latest.json and appends a summary entry
// to the run history.
func (s *FileStore) Save(dir string, report *domain.EvaluationReport) error {
	base := filepath.Join(dir, historyDir)
	if err := os.MkdirAll(base, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(base, latestFile), data, 0644); err != nil {
		return err
	}

	entries, err := s.History(dir)
	if err != nil {
		return err
	}
	entries = append(entries, domain.ReportEntry{
		Timestamp:  report.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		RunID:      report.RunID,
		CommitHash: report.CommitHash,
		Score:      report.Summary.CombinedScore,
		Decision:   report.Summary.Decision,
	})

	entryData, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(base, entriesFile), entryData, 0644)
}

// Latest loads the most recently saved report.
func (s *FileStore) Latest(dir string) (*domain.EvaluationReport, error) {
	data, err := os.ReadFile(filepath.Join(dir, historyDir, latestFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no saved report in %s", dir)
		}
		return nil, err
	}

	var report domain.EvaluationReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parsing saved report: %w", err)
	}
	return &report, nil
}

// History loads the run history, oldest first.
func (s *FileStore) History(dir string) ([]domain.ReportEntry, error) {
	data, err := os.ReadFile(filepath.Join(dir, historyDir, entriesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.ReportEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
