package judging

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/toolgauge/toolgauge/internal/domain"
)

const defaultJudgeTimeout = 120 * time.Second

// Orchestrator invokes a set of judges over one evidence bundle, applies
// the ground-truth gate, and computes the weighted semantic score.
type Orchestrator struct {
	judges   []Judge
	settings Settings
	timeout  time.Duration
}

// NewOrchestrator creates an orchestrator. A zero timeout falls back to
// the 120s default.
func NewOrchestrator(judges []Judge, settings Settings, timeout time.Duration) *Orchestrator {
	if timeout <= 0 {
		timeout = defaultJudgeTimeout
	}
	return &Orchestrator{judges: judges, settings: settings, timeout: timeout}
}

// Evaluate runs every judge concurrently and folds the gated results into
// a weighted semantic score on the 1-5 scale.
//
// Judge failures never abort the others: a timed-out, erroring, or empty
// invocation degrades to score 1 with confidence 0 and stays in the
// weighted sum. The second return is false when total weight is zero, in
// which case the semantic score is undefined and the combiner must fall
// back to programmatic-only.
func (o *Orchestrator) Evaluate(ctx context.Context, bundle EvidenceBundle) (*domain.SemanticResult, bool) {
	if len(o.judges) == 0 {
		return nil, false
	}

	traceID := uuid.NewString()
	dimensions := make([]domain.JudgeResult, len(o.judges))

	g, gctx := errgroup.WithContext(ctx)
	for i, judge := range o.judges {
		g.Go(func() error {
			dimensions[i] = o.runJudge(gctx, judge, bundle)
			return nil
		})
	}
	_ = g.Wait() // judge failures are captured in their results

	totalWeight := 0.0
	weightedSum := 0.0
	confidenceSum := 0.0
	for i := range dimensions {
		dimensions[i].WeightedScore = float64(dimensions[i].Score) * dimensions[i].Weight
		weightedSum += dimensions[i].WeightedScore
		totalWeight += dimensions[i].Weight
		confidenceSum += dimensions[i].Confidence
	}
	if totalWeight == 0 {
		return nil, false
	}

	return &domain.SemanticResult{
		TraceID:       traceID,
		Model:         o.settings.Model,
		Dimensions:    dimensions,
		Score:         weightedSum / totalWeight,
		AvgConfidence: confidenceSum / float64(len(dimensions)),
	}, true
}

func (o *Orchestrator) runJudge(ctx context.Context, judge Judge, bundle EvidenceBundle) domain.JudgeResult {
	// The gate runs against the same bundle the judge sees, and its verdict
	// is applied to whatever the judge produces, including failure results.
	gatePassed, gateFailures := RunAssertions(judge.Assertions, bundle)

	result := o.invoke(ctx, judge, bundle)
	result.Weight = judge.Weight
	ApplyCap(&result, gatePassed, gateFailures)
	return result
}

func (o *Orchestrator) invoke(ctx context.Context, judge Judge, bundle EvidenceBundle) domain.JudgeResult {
	prompt, err := judge.BuildPrompt(bundle)
	if err != nil {
		return failedJudgeResult(judge.Dimension, err.Error())
	}

	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	raw, err := judge.Provider.Generate(callCtx, prompt, o.settings)
	if err != nil {
		return failedJudgeResult(judge.Dimension, "judge invocation failed: "+err.Error())
	}

	return ParseResponse(judge.Dimension, raw)
}

// failedJudgeResult maps an unusable invocation to the worst allowed
// score rather than dropping the dimension from the weighted sum.
func failedJudgeResult(dimension, reason string) domain.JudgeResult {
	return domain.JudgeResult{
		Dimension:         dimension,
		Score:             1,
		Confidence:        0.0,
		Reasoning:         reason,
		GroundTruthPassed: true,
	}
}
