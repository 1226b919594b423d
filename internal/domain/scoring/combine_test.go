package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toolgauge/toolgauge/internal/domain"
	"github.com/toolgauge/toolgauge/internal/domain/scoring"
)

func TestRescale_Linear(t *testing.T) {
	assert.InDelta(t, 0.0, scoring.Rescale(0.0, domain.RescaleLinear), 0.001)
	assert.InDelta(t, 3.75, scoring.Rescale(0.75, domain.RescaleLinear), 0.001)
	assert.InDelta(t, 5.0, scoring.Rescale(1.0, domain.RescaleLinear), 0.001)
}

func TestRescale_Affine(t *testing.T) {
	assert.InDelta(t, 1.0, scoring.Rescale(0.0, domain.RescaleAffine), 0.001)
	assert.InDelta(t, 4.0, scoring.Rescale(0.75, domain.RescaleAffine), 0.001)
	assert.InDelta(t, 5.0, scoring.Rescale(1.0, domain.RescaleAffine), 0.001)
}

func TestRescale_UnsetModeDefaultsToLinear(t *testing.T) {
	assert.InDelta(t, 2.5, scoring.Rescale(0.5, ""), 0.001)
}

func TestCombine_WeightedBlend(t *testing.T) {
	cfg := domain.CombineConfig{
		Rescale:            domain.RescaleLinear,
		ProgrammaticWeight: 0.6,
		SemanticWeight:     0.4,
	}
	// 0.6*(0.75*5) + 0.4*4.35 = 2.25 + 1.74
	combined := scoring.Combine(0.75, 4.35, true, cfg)
	assert.InDelta(t, 3.99, combined, 0.001)
}

func TestCombine_NoSemanticFallsBackToProgrammatic(t *testing.T) {
	cfg := domain.CombineConfig{
		Rescale:            domain.RescaleAffine,
		ProgrammaticWeight: 0.6,
		SemanticWeight:     0.4,
	}
	combined := scoring.Combine(0.5, 0, false, cfg)
	assert.InDelta(t, 3.0, combined, 0.001)
}

func TestCombine_PureProgrammaticUnaffectedBySemanticWeight(t *testing.T) {
	cfg := domain.CombineConfig{Rescale: domain.RescaleLinear, ProgrammaticWeight: 0.6, SemanticWeight: 0.4}
	withSemantic := scoring.Combine(1.0, 5.0, true, cfg)
	withoutSemantic := scoring.Combine(1.0, 0, false, cfg)

	assert.InDelta(t, 5.0, withSemantic, 0.001)
	assert.InDelta(t, 5.0, withoutSemantic, 0.001)
}
