package scoring

import "github.com/toolgauge/toolgauge/internal/domain"

// Rescale lifts a 0-1 programmatic score onto the judge 1-5 scale using
// the configured convention. An unset mode defaults to linear.
func Rescale(programmatic float64, mode domain.RescaleMode) float64 {
	if mode == domain.RescaleAffine {
		return 1.0 + programmatic*4.0
	}
	return programmatic * 5.0
}

// Combine merges the programmatic score (0-1) with the weighted semantic
// score (1-5) into one number on the 0-5 scale.
//
// When no judges ran (hasSemantic false, or total judge weight was zero)
// the combined score is just the rescaled programmatic score; callers do
// not need to special-case the degenerate path.
func Combine(programmatic, semantic float64, hasSemantic bool, cfg domain.CombineConfig) float64 {
	normalized := Rescale(programmatic, cfg.Rescale)
	if !hasSemantic {
		return normalized
	}
	return cfg.ProgrammaticWeight*normalized + cfg.SemanticWeight*semantic
}
