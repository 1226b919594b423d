package check

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/toolgauge/toolgauge/internal/domain"
)

// Runner executes every registered check against one envelope.
//
// Checks are pure functions over immutable inputs, so they run
// concurrently; results land at their registration index, keeping report
// order stable regardless of scheduling.
type Runner struct {
	registry *Registry
	workers  int
}

// NewRunner creates a runner over a registry.
func NewRunner(registry *Registry) *Runner {
	return &Runner{registry: registry, workers: runtime.NumCPU()}
}

// Run executes all checks and returns one CheckResult per check, in
// registration order. Checks are total: a panic inside a check is caught
// and converted to a failing result rather than propagated, and a check
// that needs ground truth the run does not have skips with a neutral pass.
func (r *Runner) Run(ctx context.Context, env *domain.Envelope, gt *domain.GroundTruth) []domain.CheckResult {
	checks := r.registry.Checks()
	results := make([]domain.CheckResult, len(checks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, c := range checks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = domain.FailResult(c.ID, c.Name, c.Category,
					fmt.Sprintf("check aborted: %v", err))
				return nil
			}
			results[i] = runOne(c, env, gt)
			return nil
		})
	}
	_ = g.Wait() // failures are captured in the results themselves

	return results
}

func runOne(c Check, env *domain.Envelope, gt *domain.GroundTruth) (result domain.CheckResult) {
	defer func() {
		if rec := recover(); rec != nil {
			result = domain.FailResult(c.ID, c.Name, c.Category,
				fmt.Sprintf("check failed internally: %v", rec))
		}
	}()

	if c.NeedsGroundTruth && gt == nil {
		return domain.SkipResult(c.ID, c.Name, c.Category, "no ground truth for this run")
	}

	result = c.Run(env, gt)

	// Normalize identity and bounds so downstream aggregation can rely on
	// the invariants even if a check misbehaves.
	if result.CheckID == "" {
		result.CheckID = c.ID
	}
	if result.Name == "" {
		result.Name = c.Name
	}
	if result.Category == "" {
		result.Category = c.Category
	}
	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 1 {
		result.Score = 1
	}
	return result
}
