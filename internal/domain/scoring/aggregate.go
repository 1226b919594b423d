// Package scoring turns check and judge results into bounded scores and
// a final verdict.
package scoring

import "github.com/toolgauge/toolgauge/internal/domain"

// OverallScore is the unweighted arithmetic mean of all check scores.
//
// A report with zero checks scores 0.0 by convention: "no work done" is
// distinct from "all work vacuously passed".
func OverallScore(checks []domain.CheckResult) float64 {
	if len(checks) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, c := range checks {
		sum += c.Score
	}
	return sum / float64(len(checks))
}

// CategoryScore is the mean score of the checks in one category.
//
// A category with zero checks scores 1.0 (vacuously true) so a run is not
// spuriously failed for a category that legitimately has nothing to check.
func CategoryScore(checks []domain.CheckResult, category string) float64 {
	sum := 0.0
	n := 0
	for _, c := range checks {
		if c.Category == category {
			sum += c.Score
			n++
		}
	}
	if n == 0 {
		return 1.0
	}
	return sum / float64(n)
}

// ScoreByCategory computes the per-category means for every named
// category, applying the vacuous-category rule uniformly.
func ScoreByCategory(checks []domain.CheckResult, categories []string) map[string]float64 {
	scores := make(map[string]float64, len(categories))
	for _, cat := range categories {
		scores[cat] = CategoryScore(checks, cat)
	}
	return scores
}

// Tally counts passed, failed, and skipped checks.
func Tally(checks []domain.CheckResult) (passed, failed, skipped int) {
	for _, c := range checks {
		switch {
		case c.Skipped:
			skipped++
			passed++ // skips are neutral passes
		case c.Passed:
			passed++
		default:
			failed++
		}
	}
	return passed, failed, skipped
}
