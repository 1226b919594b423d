package tui

import (
	"fmt"
	"strings"

	"github.com/toolgauge/toolgauge/internal/domain"
)

// RenderMarkdown produces the scorecard.md artifact for an evaluation
// report. Plain markdown, no styling, stable ordering.
func RenderMarkdown(report *domain.EvaluationReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Scorecard: %s\n\n", report.Tool)
	fmt.Fprintf(&b, "- Run: `%s`\n", report.RunID)
	if report.CommitHash != "" {
		fmt.Fprintf(&b, "- Commit: `%s`\n", report.CommitHash)
	}
	fmt.Fprintf(&b, "- Timestamp: %s\n\n", report.Timestamp.Format("2006-01-02 15:04:05 MST"))

	s := report.Summary
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Combined score | %.2f / 5.00 |\n", s.CombinedScore)
	fmt.Fprintf(&b, "| Decision | %s |\n", s.Decision)
	fmt.Fprintf(&b, "| Programmatic score | %.2f |\n", s.Score)
	if report.Semantic != nil {
		fmt.Fprintf(&b, "| Semantic score | %.2f / 5.00 |\n", report.Semantic.Score)
		fmt.Fprintf(&b, "| Judge confidence | %.2f |\n", report.Semantic.AvgConfidence)
	}
	fmt.Fprintf(&b, "| Checks | %d passed, %d failed, %d skipped |\n\n", s.Passed, s.Failed, s.Skipped)

	b.WriteString("## Checks by Category\n\n")
	for _, cat := range sortedCategories(s.ScoreByCategory) {
		fmt.Fprintf(&b, "### %s (%.2f)\n\n", DisplayName(cat), s.ScoreByCategory[cat])
		b.WriteString("| Check | Status | Score | Detail |\n|---|---|---|---|\n")
		for _, check := range report.Checks {
			if check.Category != cat {
				continue
			}
			status := "FAIL"
			switch {
			case check.Skipped:
				status = "SKIP"
			case check.Passed:
				status = "PASS"
			}
			fmt.Fprintf(&b, "| %s | %s | %.2f | %s |\n",
				DisplayName(check.Name), status, check.Score, check.Message)
		}
		b.WriteString("\n")
	}

	if report.Semantic != nil {
		b.WriteString("## Judge Dimensions\n\n")
		b.WriteString("| Dimension | Score | Weight | Confidence | Gate |\n|---|---|---|---|---|\n")
		for _, d := range report.Semantic.Dimensions {
			gate := "passed"
			if !d.GroundTruthPassed {
				gate = "capped"
			}
			fmt.Fprintf(&b, "| %s | %d/5 | %.2f | %.2f | %s |\n",
				DisplayName(d.Dimension), d.Score, d.Weight, d.Confidence, gate)
		}
		b.WriteString("\n")
		for _, d := range report.Semantic.Dimensions {
			if len(d.GroundTruthFailures) == 0 {
				continue
			}
			fmt.Fprintf(&b, "Failed assertions for %s:\n\n", DisplayName(d.Dimension))
			for _, f := range d.GroundTruthFailures {
				fmt.Fprintf(&b, "- %s\n", f)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("## Decision Thresholds\n\n")
	b.WriteString("| Decision | Normalized (0-5) | Raw (0-1) |\n|---|---|---|\n")
	b.WriteString("| STRONG_PASS | >= 4.0 | >= 0.8 |\n")
	b.WriteString("| PASS | >= 3.5 | >= 0.6 |\n")
	b.WriteString("| WEAK_PASS | >= 3.0 | >= 0.5 |\n")
	b.WriteString("| FAIL | below | below |\n")

	return b.String()
}
