// Package checks provides the built-in, envelope-level check catalog.
// Tool integrations extend or replace it through the registry.
package checks

import (
	"fmt"
	"sort"
	"time"

	"github.com/toolgauge/toolgauge/internal/domain"
	"github.com/toolgauge/toolgauge/internal/domain/check"
)

// Category names used by the built-in catalog.
const (
	CategoryOutputQuality = "output_quality"
	CategoryAccuracy      = "accuracy"
	CategoryCoverage      = "coverage"
	CategoryPerformance   = "performance"
	CategoryEdgeCases     = "edge_cases"
)

var knownSeverities = map[string]bool{
	"info": true, "low": true, "medium": true, "high": true, "critical": true,
}

// DefaultRegistry builds the generic catalog for one configuration.
func DefaultRegistry(cfg domain.EvalConfig) *check.Registry {
	r := check.NewRegistry()

	r.Register(check.Check{
		ID: "OQ-1", Name: "MetadataCompleteness", Category: CategoryOutputQuality,
		Run: checkMetadataCompleteness,
	})
	r.Register(check.Check{
		ID: "OQ-2", Name: "FindingsWellFormed", Category: CategoryOutputQuality,
		Run: checkFindingsWellFormed,
	})
	r.Register(check.Check{
		ID: "AC-1", Name: "SummaryCountConsistency", Category: CategoryAccuracy,
		Run: checkSummaryCountConsistency,
	})
	r.Register(check.Check{
		ID: "AC-2", Name: "CategoryCountRanges", Category: CategoryAccuracy,
		NeedsGroundTruth: true,
		Run:              checkCategoryCountRanges,
	})
	r.Register(check.Check{
		ID: "CV-1", Name: "CategoryCoverage", Category: CategoryCoverage,
		NeedsGroundTruth: true,
		Run:              checkCategoryCoverage,
	})
	r.Register(check.Check{
		ID: "PF-1", Name: "DurationTarget", Category: CategoryPerformance,
		Run: checkDurationTarget(cfg.PerformanceTargetSecs),
	})
	r.Register(check.Check{
		ID: "EC-1", Name: "TimestampSanity", Category: CategoryEdgeCases,
		Run: checkTimestampSanity,
	})
	r.Register(check.Check{
		ID: "EC-2", Name: "SeverityVocabulary", Category: CategoryEdgeCases,
		Run: checkSeverityVocabulary,
	})

	return r
}

func checkMetadataCompleteness(env *domain.Envelope, _ *domain.GroundTruth) domain.CheckResult {
	var missing []string
	if env.Metadata.ToolVersion == "" {
		missing = append(missing, "tool_version")
	}
	if env.Metadata.RepoID == "" {
		missing = append(missing, "repo_id")
	}
	if env.Metadata.Timestamp.IsZero() {
		missing = append(missing, "timestamp")
	}
	if len(missing) > 0 {
		return domain.FailResult("OQ-1", "MetadataCompleteness", CategoryOutputQuality,
			fmt.Sprintf("metadata missing fields: %v", missing))
	}
	return domain.CheckResult{
		CheckID: "OQ-1", Name: "MetadataCompleteness", Category: CategoryOutputQuality,
		Passed: true, Score: 1.0,
		Message: "all metadata fields present",
	}
}

func checkFindingsWellFormed(env *domain.Envelope, _ *domain.GroundTruth) domain.CheckResult {
	findings := env.Findings()
	if len(findings) == 0 {
		return domain.CheckResult{
			CheckID: "OQ-2", Name: "FindingsWellFormed", Category: CategoryOutputQuality,
			Passed: true, Score: 1.0,
			Message: "no findings to validate",
		}
	}

	malformed := 0
	for _, f := range findings {
		if f.Category == "" || f.Message == "" {
			malformed++
		}
	}
	score := 1.0 - float64(malformed)/float64(len(findings))
	return domain.CheckResult{
		CheckID: "OQ-2", Name: "FindingsWellFormed", Category: CategoryOutputQuality,
		Passed: malformed == 0, Score: score,
		Message:  fmt.Sprintf("%d/%d findings have category and message", len(findings)-malformed, len(findings)),
		Evidence: map[string]any{"malformed": malformed, "total": len(findings)},
	}
}

func checkSummaryCountConsistency(env *domain.Envelope, _ *domain.GroundTruth) domain.CheckResult {
	summary := env.SummaryBlock()
	declared, ok := domain.IntField(summary, "total_findings")
	if !ok {
		return domain.FailResult("AC-1", "SummaryCountConsistency", CategoryAccuracy,
			"summary.total_findings missing from envelope data")
	}
	actual := len(env.Findings())
	if declared != actual {
		return domain.CheckResult{
			CheckID: "AC-1", Name: "SummaryCountConsistency", Category: CategoryAccuracy,
			Passed: false, Score: 0.0,
			Message:  fmt.Sprintf("finding count mismatch: summary=%d, records=%d", declared, actual),
			Evidence: map[string]any{"declared": declared, "actual": actual},
		}
	}
	return domain.CheckResult{
		CheckID: "AC-1", Name: "SummaryCountConsistency", Category: CategoryAccuracy,
		Passed: true, Score: 1.0,
		Message: fmt.Sprintf("finding count consistent: %d", actual),
	}
}

func checkCategoryCountRanges(env *domain.Envelope, gt *domain.GroundTruth) domain.CheckResult {
	if len(gt.Expectations) == 0 {
		return domain.SkipResult("AC-2", "CategoryCountRanges", CategoryAccuracy,
			"ground truth has no count expectations")
	}

	counts := make(map[string]int)
	for _, f := range env.Findings() {
		counts[f.Category]++
	}

	categories := make([]string, 0, len(gt.Expectations))
	for category := range gt.Expectations {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	inRange := 0
	var outliers []string
	for _, category := range categories {
		if gt.Expectations[category].InRange(counts[category]) {
			inRange++
		} else {
			outliers = append(outliers, fmt.Sprintf("%s=%d", category, counts[category]))
		}
	}

	total := len(gt.Expectations)
	score := float64(inRange) / float64(total)
	result := domain.CheckResult{
		CheckID: "AC-2", Name: "CategoryCountRanges", Category: CategoryAccuracy,
		Passed: inRange == total, Score: score,
		Message:  fmt.Sprintf("%d/%d categories within expected count ranges", inRange, total),
		Evidence: map[string]any{"counts": counts},
	}
	if len(outliers) > 0 {
		result.Message += fmt.Sprintf(" (out of range: %v)", outliers)
	}
	return result
}

func checkCategoryCoverage(env *domain.Envelope, gt *domain.GroundTruth) domain.CheckResult {
	nonEmpty := 0
	covered := 0
	counts := make(map[string]int)
	for _, f := range env.Findings() {
		counts[f.Category]++
	}
	for category, exp := range gt.Expectations {
		if exp.MinExpected == nil || *exp.MinExpected == 0 {
			continue
		}
		nonEmpty++
		if counts[category] > 0 {
			covered++
		}
	}

	if nonEmpty == 0 {
		return domain.SkipResult("CV-1", "CategoryCoverage", CategoryCoverage,
			"ground truth expects no findings in any category")
	}

	return domain.CheckResult{
		CheckID: "CV-1", Name: "CategoryCoverage", Category: CategoryCoverage,
		Passed: covered == nonEmpty,
		Score:  float64(covered) / float64(nonEmpty),
		Message: fmt.Sprintf("%d/%d non-empty categories have at least one finding",
			covered, nonEmpty),
	}
}

func checkDurationTarget(targetSecs float64) check.Func {
	return func(env *domain.Envelope, _ *domain.GroundTruth) domain.CheckResult {
		duration, ok := domain.FloatField(env.Data, "duration_seconds")
		if !ok {
			duration, ok = domain.FloatField(env.SummaryBlock(), "duration_seconds")
		}
		if !ok {
			return domain.FailResult("PF-1", "DurationTarget", CategoryPerformance,
				"duration_seconds missing from envelope data")
		}
		if targetSecs <= 0 {
			targetSecs = 300
		}
		if duration > targetSecs {
			return domain.CheckResult{
				CheckID: "PF-1", Name: "DurationTarget", Category: CategoryPerformance,
				Passed: false, Score: 0.0,
				Message:  fmt.Sprintf("run took %.1fs, target %.1fs", duration, targetSecs),
				Evidence: map[string]any{"duration_seconds": duration, "target_seconds": targetSecs},
			}
		}
		return domain.CheckResult{
			CheckID: "PF-1", Name: "DurationTarget", Category: CategoryPerformance,
			Passed: true, Score: 1.0,
			Message: fmt.Sprintf("run took %.1fs (target %.1fs)", duration, targetSecs),
		}
	}
}

func checkTimestampSanity(env *domain.Envelope, _ *domain.GroundTruth) domain.CheckResult {
	ts := env.Metadata.Timestamp
	if ts.IsZero() {
		return domain.FailResult("EC-1", "TimestampSanity", CategoryEdgeCases,
			"metadata.timestamp is zero")
	}
	if ts.After(time.Now().Add(time.Hour)) {
		return domain.FailResult("EC-1", "TimestampSanity", CategoryEdgeCases,
			fmt.Sprintf("metadata.timestamp %s is in the future", ts.Format(time.RFC3339)))
	}
	return domain.CheckResult{
		CheckID: "EC-1", Name: "TimestampSanity", Category: CategoryEdgeCases,
		Passed: true, Score: 1.0,
		Message: "timestamp plausible",
	}
}

func checkSeverityVocabulary(env *domain.Envelope, _ *domain.GroundTruth) domain.CheckResult {
	unknown := make(map[string]bool)
	total := 0
	for _, f := range env.Findings() {
		if f.Severity == "" {
			continue
		}
		total++
		if !knownSeverities[f.Severity] {
			unknown[f.Severity] = true
		}
	}
	if len(unknown) > 0 {
		labels := make([]string, 0, len(unknown))
		for s := range unknown {
			labels = append(labels, s)
		}
		sort.Strings(labels)
		return domain.CheckResult{
			CheckID: "EC-2", Name: "SeverityVocabulary", Category: CategoryEdgeCases,
			Passed: false, Score: 0.5,
			Message:  fmt.Sprintf("unknown severity labels: %v", labels),
			Evidence: map[string]any{"unknown": labels},
		}
	}
	return domain.CheckResult{
		CheckID: "EC-2", Name: "SeverityVocabulary", Category: CategoryEdgeCases,
		Passed: true, Score: 1.0,
		Message: fmt.Sprintf("%d severity labels all recognized", total),
	}
}
