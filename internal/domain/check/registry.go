// Package check holds the deterministic check registry and runner.
package check

import (
	"fmt"

	"github.com/toolgauge/toolgauge/internal/domain"
)

// Func is a single deterministic check: pure over the envelope and the
// optional ground truth, returning one bounded CheckResult.
type Func func(env *domain.Envelope, gt *domain.GroundTruth) domain.CheckResult

// Check couples a check function with its stable identity.
type Check struct {
	ID       string
	Name     string
	Category string
	// NeedsGroundTruth checks are skipped with a neutral pass when the run
	// has no ground truth at all.
	NeedsGroundTruth bool
	Run              Func
}

// Registry is an explicit, ordered collection of checks for one tool.
// Registration order is execution/report order.
type Registry struct {
	checks []Check
	byID   map[string]bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]bool)}
}

// Register adds a check. Duplicate IDs are a programming error, not a
// runtime condition, so they panic at wiring time.
func (r *Registry) Register(c Check) *Registry {
	if c.ID == "" {
		panic("check: registering check with empty ID")
	}
	if c.Run == nil {
		panic(fmt.Sprintf("check: %s has no run function", c.ID))
	}
	if r.byID[c.ID] {
		panic(fmt.Sprintf("check: duplicate check ID %s", c.ID))
	}
	r.byID[c.ID] = true
	r.checks = append(r.checks, c)
	return r
}

// Checks returns the registered checks in registration order.
func (r *Registry) Checks() []Check {
	return r.checks
}

// Len returns the number of registered checks.
func (r *Registry) Len() int {
	return len(r.checks)
}

// WithoutCategory returns a registry view excluding one category.
// Used by quick mode to drop performance-class checks.
func (r *Registry) WithoutCategory(category string) *Registry {
	filtered := NewRegistry()
	for _, c := range r.checks {
		if c.Category != category {
			filtered.Register(c)
		}
	}
	return filtered
}
