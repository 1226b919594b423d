package judging

import (
	"fmt"

	"github.com/toolgauge/toolgauge/internal/domain"
)

// Assertion is a hard invariant evaluated against the same evidence bundle
// a judge saw, before its result is trusted.
type Assertion struct {
	Description string
	Holds       func(bundle EvidenceBundle) bool
}

// A capped judgment can never exceed this score, no matter how favorable
// the raw semantic score was.
const cappedMaxScore = 2

// RunAssertions evaluates every assertion and collects the failures.
func RunAssertions(assertions []Assertion, bundle EvidenceBundle) (allPassed bool, failures []string) {
	for _, a := range assertions {
		if !a.Holds(bundle) {
			failures = append(failures, a.Description)
		}
	}
	return len(failures) == 0, failures
}

// ApplyCap clamps a judge result when its ground-truth assertions failed.
// The clamp is applied post-hoc to the already-produced score and is never
// fed back to re-prompt. Confidence is left untouched; the failure list is
// retained for audit only.
func ApplyCap(result *domain.JudgeResult, allPassed bool, failures []string) {
	result.GroundTruthPassed = allPassed
	result.GroundTruthFailures = failures
	if !allPassed && result.Score > cappedMaxScore {
		result.Score = cappedMaxScore
	}
}

// StandardAssertions builds the gate invariants for a run from its findings
// and ground truth. These are the deterministic backstop against a judge
// scoring clearly wrong evidence highly.
func StandardAssertions(findings []domain.Finding, gt *domain.GroundTruth) []Assertion {
	var assertions []Assertion

	if gt != nil {
		minTotal := gt.TotalExpected()
		if minTotal > 0 {
			assertions = append(assertions, Assertion{
				Description: fmt.Sprintf("total detections >= %d expected minimum", minTotal),
				Holds: func(EvidenceBundle) bool {
					return len(findings) >= minTotal
				},
			})
		}

		for category, exp := range gt.Expectations {
			if exp.MinExpected == nil || *exp.MinExpected == 0 {
				continue
			}
			assertions = append(assertions, Assertion{
				Description: fmt.Sprintf("at least one finding classified in non-empty category %q", category),
				Holds: func(EvidenceBundle) bool {
					for _, f := range findings {
						if f.Category == category {
							return true
						}
					}
					return false
				},
			})
		}
	}

	assertions = append(assertions, Assertion{
		Description: "no category spans more than two severity levels",
		Holds: func(EvidenceBundle) bool {
			severities := make(map[string]map[string]bool)
			for _, f := range findings {
				if f.Severity == "" {
					continue
				}
				if severities[f.Category] == nil {
					severities[f.Category] = make(map[string]bool)
				}
				severities[f.Category][f.Severity] = true
				if len(severities[f.Category]) > 2 {
					return false
				}
			}
			return true
		},
	})

	return assertions
}
