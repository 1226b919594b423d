// Package application wires the evaluation pipeline end to end.
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/toolgauge/toolgauge/internal/domain"
	"github.com/toolgauge/toolgauge/internal/domain/check"
	"github.com/toolgauge/toolgauge/internal/domain/checks"
	"github.com/toolgauge/toolgauge/internal/domain/judging"
	"github.com/toolgauge/toolgauge/internal/domain/scoring"
)

// EvaluateOptions controls one evaluation run.
type EvaluateOptions struct {
	// AnalysisPath is the tool-output envelope file to evaluate.
	AnalysisPath string
	// GroundTruthDir holds per-scenario ground-truth JSON files. Empty or
	// missing means the run has no ground truth and dependent checks skip.
	GroundTruthDir string
	// ConfigDir is where .toolgauge.yaml is looked up (usually the cwd).
	ConfigDir string
	// Quick drops performance-category checks and restricts judges to the
	// focused subset.
	Quick bool
	// Judges enables the semantic layer. Without it the run is
	// programmatic-only.
	Judges bool
}

// EvaluateService orchestrates the pipeline:
// load config → load envelope → match ground truth → run checks →
// aggregate → judge → combine → decide.
type EvaluateService struct {
	envelopes   domain.EnvelopeLoader
	groundTruth domain.GroundTruthLoader
	config      domain.ConfigLoader
	provider    judging.Provider
	gitInfo     domain.GitInfo
}

func NewEvaluateService(
	envelopes domain.EnvelopeLoader,
	groundTruth domain.GroundTruthLoader,
	config domain.ConfigLoader,
	provider judging.Provider,
	gitInfo domain.GitInfo,
) *EvaluateService {
	return &EvaluateService{
		envelopes:   envelopes,
		groundTruth: groundTruth,
		config:      config,
		provider:    provider,
		gitInfo:     gitInfo,
	}
}

func (s *EvaluateService) Evaluate(ctx context.Context, opts EvaluateOptions) (*domain.EvaluationReport, error) {
	// 0. Load config
	cfg, err := s.config.Load(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// 1. Load and validate the envelope; malformed input is fatal, never a
	// low score.
	env, err := s.envelopes.Load(opts.AnalysisPath)
	if err != nil {
		return nil, fmt.Errorf("loading analysis: %w", err)
	}

	// 2. Match ground truth for this scenario, if any
	gt, err := s.matchGroundTruth(opts.GroundTruthDir, env)
	if err != nil {
		return nil, err
	}

	// 3. Run the deterministic checks
	registry := checks.DefaultRegistry(cfg)
	if opts.Quick {
		registry = registry.WithoutCategory(checks.CategoryPerformance)
	}
	runner := check.NewRunner(registry)
	results := runner.Run(ctx, env, gt)

	// 4. Aggregate programmatic scores
	categories := cfg.Categories
	if opts.Quick {
		categories = withoutCategory(categories, checks.CategoryPerformance)
	}
	programmatic := scoring.OverallScore(results)
	byCategory := scoring.ScoreByCategory(results, categories)
	passed, failed, skipped := scoring.Tally(results)

	// 5. Semantic layer
	var semantic *domain.SemanticResult
	hasSemantic := false
	if opts.Judges && s.provider != nil {
		bundle := buildEvidenceBundle(env, gt, results, byCategory)
		orch := judging.NewOrchestrator(
			buildJudges(cfg, s.provider, env, gt, opts.Quick),
			judging.Settings{Model: cfg.Judge.Model},
			time.Duration(cfg.Judge.TimeoutSeconds)*time.Second,
		)
		semantic, hasSemantic = orch.Evaluate(ctx, bundle)
	}

	// 6. Combine and decide. The combined score lives on the 0-5 judge
	// scale and resolves against the normalized table; the raw table
	// applies its 0-1 thresholds to the programmatic score.
	semanticScore := 0.0
	if hasSemantic {
		semanticScore = semantic.Score
	}
	combined := scoring.Combine(programmatic, semanticScore, hasSemantic, cfg.Combine)
	decisionScore := combined
	if cfg.Decision.Scale == domain.DecisionScaleRaw {
		decisionScore = programmatic
	}
	decision := scoring.Resolve(decisionScore, cfg.Decision.Scale)

	report := &domain.EvaluationReport{
		Tool:        env.Metadata.ToolName,
		ToolVersion: env.Metadata.ToolVersion,
		RunID:       env.Metadata.RunID,
		RepoID:      env.Metadata.RepoID,
		Timestamp:   time.Now(),
		Summary: domain.Summary{
			Passed:          passed,
			Failed:          failed,
			Skipped:         skipped,
			Total:           len(results),
			Score:           programmatic,
			CombinedScore:   combined,
			Decision:        decision,
			ScoreByCategory: byCategory,
		},
		Checks:   results,
		Semantic: semantic,
	}

	// Stamp with the evaluated repo's commit when discoverable. Best
	// effort: an unstamped report is still valid.
	if s.gitInfo != nil && s.gitInfo.IsGitRepo(opts.ConfigDir) {
		if hash, err := s.gitInfo.CommitHash(opts.ConfigDir); err == nil {
			report.CommitHash = hash
		}
	}

	return report, nil
}

// matchGroundTruth finds the ground truth for the envelope's run. Keyed by
// run_id first, then repo_id; a run with no match simply has no ground
// truth.
func (s *EvaluateService) matchGroundTruth(dir string, env *domain.Envelope) (*domain.GroundTruth, error) {
	if dir == "" {
		return nil, nil
	}
	truths, err := s.groundTruth.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading ground truth: %w", err)
	}
	if gt, ok := truths[env.Metadata.RunID]; ok {
		return gt, nil
	}
	if gt, ok := truths[env.Metadata.RepoID]; ok {
		return gt, nil
	}
	return nil, nil
}

// buildEvidenceBundle assembles the extract judges see: the tool's own
// findings and summary plus the deterministic layer's verdicts, so a judge
// reasons over the same evidence the checks scored.
func buildEvidenceBundle(
	env *domain.Envelope,
	gt *domain.GroundTruth,
	results []domain.CheckResult,
	byCategory map[string]float64,
) judging.EvidenceBundle {
	findings := env.Findings()

	checkDigest := make([]map[string]any, 0, len(results))
	for _, r := range results {
		checkDigest = append(checkDigest, map[string]any{
			"name":    r.Name,
			"passed":  r.Passed,
			"score":   r.Score,
			"message": r.Message,
		})
	}

	bundle := judging.EvidenceBundle{
		"tool":               env.Metadata.ToolName,
		"findings":           findings,
		"summary":            env.SummaryBlock(),
		"check_results":      checkDigest,
		"scores_by_category": byCategory,
	}
	if gt != nil {
		bundle["expected"] = gt.Expectations
	}
	return bundle
}

// buildJudges instantiates the configured judge set, sharing one provider
// and one standard assertion gate.
func buildJudges(cfg domain.EvalConfig, provider judging.Provider, env *domain.Envelope, gt *domain.GroundTruth, quick bool) []judging.Judge {
	weights := cfg.WeightTable(quick)
	assertions := judging.StandardAssertions(env.Findings(), gt)

	judges := make([]judging.Judge, 0, len(weights))
	for _, spec := range cfg.Judges {
		weight, ok := weights[spec.Dimension]
		if !ok {
			continue
		}
		judges = append(judges, judging.Judge{
			Dimension:  spec.Dimension,
			Weight:     weight,
			Provider:   provider,
			Assertions: assertions,
		})
	}
	return judges
}

func withoutCategory(categories []string, category string) []string {
	filtered := make([]string, 0, len(categories))
	for _, c := range categories {
		if c != category {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
