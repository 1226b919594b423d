package scoring

import "github.com/toolgauge/toolgauge/internal/domain"

// Thresholds on the 0-5 normalized scale.
const (
	normalizedStrongPass = 4.0
	normalizedPass       = 3.5
	normalizedWeakPass   = 3.0
)

// Thresholds on the 0-1 raw scale.
//
// Note these are NOT the normalized thresholds divided by five: 0.5 raw is
// WEAK_PASS while 2.5/5 normalized is FAIL. Both tables are kept as-is;
// a pipeline must pick one scale and stay on it.
const (
	rawStrongPass = 0.8
	rawPass       = 0.6
	rawWeakPass   = 0.5
)

// Resolve maps a score to a verdict using the configured threshold scale.
// An unset scale defaults to normalized.
func Resolve(score float64, scale domain.DecisionScale) domain.Decision {
	if scale == domain.DecisionScaleRaw {
		return resolveWith(score, rawStrongPass, rawPass, rawWeakPass)
	}
	return resolveWith(score, normalizedStrongPass, normalizedPass, normalizedWeakPass)
}

func resolveWith(score, strong, pass, weak float64) domain.Decision {
	switch {
	case score >= strong:
		return domain.DecisionStrongPass
	case score >= pass:
		return domain.DecisionPass
	case score >= weak:
		return domain.DecisionWeakPass
	default:
		return domain.DecisionFail
	}
}
