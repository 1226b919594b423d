// Package groundtruth loads ground-truth documents from a directory.
package groundtruth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/toolgauge/toolgauge/internal/domain"
)

// DirLoader implements domain.GroundTruthLoader over a directory of JSON
// files, one per scenario, keyed by the document's id or the file stem.
type DirLoader struct{}

// New creates a DirLoader.
func New() *DirLoader { return &DirLoader{} }

// Load reads every *.json file in dir. A missing directory yields an empty
// map: absent ground truth is a skip signal, never an error. A file that
// fails to parse is an authoring mistake and is reported.
func (l *DirLoader) Load(dir string) (map[string]*domain.GroundTruth, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*domain.GroundTruth{}, nil
		}
		return nil, fmt.Errorf("reading ground-truth dir: %w", err)
	}

	truths := make(map[string]*domain.GroundTruth)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading ground truth %s: %w", name, err)
		}

		var gt domain.GroundTruth
		if err := json.Unmarshal(data, &gt); err != nil {
			return nil, fmt.Errorf("parsing ground truth %s: %w", name, err)
		}

		key := gt.ID
		if key == "" {
			key = strings.TrimSuffix(name, ".json")
			gt.ID = key
		}
		truths[key] = &gt
	}

	return truths, nil
}
