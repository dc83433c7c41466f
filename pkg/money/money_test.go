package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2HalfUp(t *testing.T) {
	assert.Equal(t, 0.78, Round2(0.775))
	assert.Equal(t, 0.77, Round2(0.774))
	assert.Equal(t, 4.80, Round2(4.8))
	assert.Equal(t, 1.13, Round2(1.125))
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, 50.00, LineTotal(25.00, 2))
	assert.Equal(t, 10.00, LineTotal(10.00, 1))
	assert.Equal(t, 3.35, LineTotal(1.115, 3))
}

func TestTaxAndTotalScenario(t *testing.T) {
	// cart 25.00x2 + 10.00x1, 8% tax, 5.00 tip
	subtotal := 60.00
	tax := Tax(subtotal, 8)
	assert.Equal(t, 4.80, tax)
	assert.Equal(t, 69.80, Total(subtotal, tax, 5))
}

func TestTaxRoundsIndependently(t *testing.T) {
	// 7.5% of 10.37 is 0.77775; the stored tax must be the rounded figure
	assert.Equal(t, 0.78, Tax(10.37, 7.5))
	assert.Equal(t, 11.15, Total(10.37, 0.78, 0))
}

func TestChangeDue(t *testing.T) {
	assert.Equal(t, 0.20, ChangeDue(70.00, 69.80))
	assert.Equal(t, 0.00, ChangeDue(60.00, 69.80))
}

func TestSufficientWithTolerance(t *testing.T) {
	assert.True(t, Sufficient(70.00, 69.80))
	assert.True(t, Sufficient(69.80, 69.80))
	// the one-cent slack band
	assert.True(t, Sufficient(69.79, 69.80))
	assert.False(t, Sufficient(69.78, 69.80))
	assert.False(t, Sufficient(60.00, 69.80))
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 9.80, Remaining(60.00, 69.80))
	assert.Equal(t, 0.00, Remaining(70.00, 69.80))
}

func TestQuickCashAmounts(t *testing.T) {
	assert.Equal(t, []float64{70, 80, 100}, QuickCashAmounts(69.80))
	assert.Equal(t, []float64{10, 20, 50, 100}, QuickCashAmounts(5))
	// exact boundary still suggests strictly above
	assert.Equal(t, []float64{110, 120, 150, 200}, QuickCashAmounts(100))
}

func TestQuickCashAmountsDeduplicated(t *testing.T) {
	// 95 -> 100 on every boundary
	amounts := QuickCashAmounts(95)
	assert.Equal(t, []float64{100}, amounts)
	assert.LessOrEqual(t, len(amounts), 4)
}
