// Package judging orchestrates semantic judges over an evidence bundle and
// folds their scores into one gated, weighted result.
package judging

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/toolgauge/toolgauge/internal/domain"
)

// EvidenceBundle is the tool-specific data extract handed to a judge.
// The engine treats it as opaque; only assertions and prompt rendering
// look inside.
type EvidenceBundle map[string]any

// Settings configures a single judge invocation.
type Settings struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// Provider is a black-box judge-invocation service returning raw text the
// engine must defensively parse.
type Provider interface {
	Generate(ctx context.Context, prompt string, settings Settings) (string, error)
	Name() string
}

// Judge evaluates one dimension of output quality.
type Judge struct {
	Dimension      string
	Weight         float64
	Provider       Provider
	PromptTemplate string // optional; defaultPromptTemplate when empty
	Assertions     []Assertion
}

const evidencePlaceholder = "{{ evidence }}"

const responseContract = "Respond with ONLY a JSON object. Do not use markdown fences or extra text."

// BuildPrompt renders the judge prompt with the evidence injected as JSON.
func (j Judge) BuildPrompt(bundle EvidenceBundle) (string, error) {
	template := j.PromptTemplate
	if template == "" {
		template = defaultPromptTemplate(j.Dimension)
	}
	if !strings.Contains(template, evidencePlaceholder) {
		return "", fmt.Errorf("judge %s: prompt template has no %s placeholder", j.Dimension, evidencePlaceholder)
	}

	evidence, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return "", fmt.Errorf("judge %s: marshal evidence: %w", j.Dimension, err)
	}

	prompt := strings.Replace(template, evidencePlaceholder, string(evidence), 1)
	if !strings.Contains(prompt, responseContract) {
		prompt += "\n\n" + responseContract
	}
	return prompt, nil
}

func defaultPromptTemplate(dimension string) string {
	title := strings.ReplaceAll(dimension, "_", " ")
	return fmt.Sprintf(`# %s evaluation

Evaluate the following evidence and provide a score from 1-5.

## Evidence

{{ evidence }}

## Response Format

%s

{
  "score": <1-5>,
  "confidence": <0.0-1.0>,
  "reasoning": "<explanation>",
  "evidence_cited": ["<evidence points>"],
  "recommendations": ["<improvements>"],
  "sub_scores": {}
}
`, title, responseContract)
}

// judgePayload is the JSON object judges are asked to return.
type judgePayload struct {
	Score           int            `json:"score"`
	Confidence      float64        `json:"confidence"`
	Reasoning       string         `json:"reasoning"`
	EvidenceCited   []string       `json:"evidence_cited"`
	Recommendations []string       `json:"recommendations"`
	SubScores       map[string]int `json:"sub_scores"`
}

// ParseResponse turns raw judge output into a JudgeResult.
//
// An empty response maps to the worst allowed score with zero confidence:
// silence on a quality dimension is a strong negative signal, not missing
// data. Unparseable but non-empty output falls back to scanning for a
// "score: N" pattern with a neutral default of 3.
func ParseResponse(dimension, raw string) domain.JudgeResult {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.JudgeResult{
			Dimension:         dimension,
			Score:             1,
			Confidence:        0.0,
			Reasoning:         "no response received",
			GroundTruthPassed: true,
		}
	}

	if start := strings.Index(trimmed, "{"); start >= 0 {
		if end := strings.LastIndex(trimmed, "}"); end > start {
			var payload judgePayload
			if err := json.Unmarshal([]byte(trimmed[start:end+1]), &payload); err == nil {
				return domain.JudgeResult{
					Dimension:         dimension,
					Score:             clampScore(payload.Score),
					Confidence:        clampConfidence(payload.Confidence),
					Reasoning:         payload.Reasoning,
					EvidenceCited:     payload.EvidenceCited,
					Recommendations:   payload.Recommendations,
					SubScores:         payload.SubScores,
					GroundTruthPassed: true,
					RawResponse:       raw,
				}
			}
		}
	}

	score := 3
	lower := strings.ToLower(trimmed)
	for i := 5; i >= 1; i-- {
		if strings.Contains(lower, fmt.Sprintf("score: %d", i)) ||
			strings.Contains(lower, fmt.Sprintf("score:%d", i)) {
			score = i
			break
		}
	}

	reasoning := trimmed
	if len(reasoning) > 500 {
		reasoning = reasoning[:500]
	}
	return domain.JudgeResult{
		Dimension:         dimension,
		Score:             score,
		Confidence:        0.5,
		Reasoning:         reasoning,
		GroundTruthPassed: true,
		RawResponse:       raw,
	}
}

func clampScore(s int) int {
	if s < 1 {
		return 1
	}
	if s > 5 {
		return 5
	}
	return s
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
