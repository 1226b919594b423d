// Package envelope loads tool-output envelopes from disk.
package envelope

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/toolgauge/toolgauge/internal/domain"
)

// FileLoader implements domain.EnvelopeLoader over a JSON file.
type FileLoader struct{}

// New creates a FileLoader.
func New() *FileLoader { return &FileLoader{} }

// Load reads and validates an envelope. A malformed envelope is the one
// fatal input error: the run must not degrade it into a low score.
func (l *FileLoader) Load(path string) (*domain.Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading analysis output: %w", err)
	}

	// Some tools double-encode the envelope as a JSON string.
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		data = []byte(asString)
	}

	var env domain.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := env.Validate(); err != nil {
		return nil, fmt.Errorf("invalid envelope %s: %w", path, err)
	}
	return &env, nil
}
