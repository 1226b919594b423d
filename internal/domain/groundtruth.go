package domain

// Expectation is the externally authored expected range for one category.
// Pointer fields distinguish "not specified" from zero.
type Expectation struct {
	MinExpected *int `json:"min_expected,omitempty"`
	MaxExpected *int `json:"max_expected,omitempty"`
	Tolerance   int  `json:"tolerance,omitempty"`
}

// GroundTruth holds the expected values for one scenario. The absence of
// an expectation for a category is a first-class skip signal, not an error.
type GroundTruth struct {
	ID           string                 `json:"id"`
	Expectations map[string]Expectation `json:"expected"`
	Thresholds   map[string]float64     `json:"thresholds,omitempty"`
}

// Expectation looks up the expectation for a category. The second return
// is false when none was authored, which callers must treat as a skip.
func (gt *GroundTruth) Expectation(category string) (Expectation, bool) {
	if gt == nil || gt.Expectations == nil {
		return Expectation{}, false
	}
	exp, ok := gt.Expectations[category]
	return exp, ok
}

// TotalExpected sums the minimum expected counts across all categories.
// Used by assertion gates as the floor for total detections.
func (gt *GroundTruth) TotalExpected() int {
	if gt == nil {
		return 0
	}
	total := 0
	for _, exp := range gt.Expectations {
		if exp.MinExpected != nil {
			total += *exp.MinExpected
		}
	}
	return total
}

// InRange reports whether a count satisfies the expectation, honoring the
// authored tolerance on both bounds.
func (exp Expectation) InRange(count int) bool {
	if exp.MinExpected != nil && count < *exp.MinExpected-exp.Tolerance {
		return false
	}
	if exp.MaxExpected != nil && count > *exp.MaxExpected+exp.Tolerance {
		return false
	}
	return true
}
