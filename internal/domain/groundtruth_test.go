package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toolgauge/toolgauge/internal/domain"
)

func intp(n int) *int { return &n }

func TestExpectation_AbsenceIsSkipSignal(t *testing.T) {
	gt := &domain.GroundTruth{Expectations: map[string]domain.Expectation{
		"secrets": {MinExpected: intp(2)},
	}}

	_, ok := gt.Expectation("dead_code")
	assert.False(t, ok)

	exp, ok := gt.Expectation("secrets")
	assert.True(t, ok)
	assert.Equal(t, 2, *exp.MinExpected)
}

func TestExpectation_NilGroundTruthSkips(t *testing.T) {
	var gt *domain.GroundTruth
	_, ok := gt.Expectation("secrets")
	assert.False(t, ok)
	assert.Equal(t, 0, gt.TotalExpected())
}

func TestInRange_Bounds(t *testing.T) {
	exp := domain.Expectation{MinExpected: intp(2), MaxExpected: intp(5)}

	assert.False(t, exp.InRange(1))
	assert.True(t, exp.InRange(2))
	assert.True(t, exp.InRange(5))
	assert.False(t, exp.InRange(6))
}

func TestInRange_ToleranceWidensBothBounds(t *testing.T) {
	exp := domain.Expectation{MinExpected: intp(3), MaxExpected: intp(5), Tolerance: 1}

	assert.True(t, exp.InRange(2))
	assert.False(t, exp.InRange(1))
	assert.True(t, exp.InRange(6))
	assert.False(t, exp.InRange(7))
}

func TestInRange_UnboundedSides(t *testing.T) {
	onlyMin := domain.Expectation{MinExpected: intp(1)}
	assert.True(t, onlyMin.InRange(1000))
	assert.False(t, onlyMin.InRange(0))

	unbounded := domain.Expectation{}
	assert.True(t, unbounded.InRange(0))
	assert.True(t, unbounded.InRange(999))
}

func TestTotalExpected_SumsMinimums(t *testing.T) {
	gt := &domain.GroundTruth{Expectations: map[string]domain.Expectation{
		"secrets":   {MinExpected: intp(2)},
		"dead_code": {MinExpected: intp(3)},
		"style":     {}, // no minimum authored
	}}
	assert.Equal(t, 5, gt.TotalExpected())
}
