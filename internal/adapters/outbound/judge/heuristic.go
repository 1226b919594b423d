package judge

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/toolgauge/toolgauge/internal/domain/judging"
)

// HeuristicProvider is an offline provider that estimates a score from
// surface features of the evidence instead of consulting a model. Useful
// for dry runs and environments without API credentials.
type HeuristicProvider struct{}

func NewHeuristic() *HeuristicProvider { return &HeuristicProvider{} }

func (h *HeuristicProvider) Name() string { return "heuristic" }

func (h *HeuristicProvider) Generate(_ context.Context, prompt string, _ judging.Settings) (string, error) {
	score := 3
	switch {
	case strings.Contains(prompt, `"findings": []`) || strings.Contains(prompt, `"findings":[]`):
		score = 2
	case strings.Count(prompt, `"severity"`) >= 5:
		score = 4
	}

	resp := map[string]any{
		"score":      score,
		"confidence": 0.3,
		"reasoning":  "heuristic estimate from evidence volume; no model consulted",
	}
	out, err := json.Marshal(resp)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
