package money

import (
	"sort"

	"github.com/shopspring/decimal"
)

// sufficiency tolerance absorbing floating point noise in tendered input
var tolerance = decimal.NewFromFloat(-0.01)

var cashBoundaries = []int64{10, 20, 50, 100}

// Round2 rounds an amount to 2 decimal places, half up.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// LineTotal returns the rounded total for one cart or refund line.
func LineTotal(unitPrice float64, quantity int) float64 {
	price := decimal.NewFromFloat(unitPrice)
	qty := decimal.NewFromInt(int64(quantity))
	return price.Mul(qty).Round(2).InexactFloat64()
}

// Tax returns the rounded tax amount for a subtotal at the given percent rate.
func Tax(subtotal, ratePercent float64) float64 {
	sub := decimal.NewFromFloat(subtotal)
	rate := decimal.NewFromFloat(ratePercent)
	return sub.Mul(rate).Div(decimal.NewFromInt(100)).Round(2).InexactFloat64()
}

// Total sums subtotal, tax and tip, rounded. Each input is expected to be
// rounded already; the sum is rounded again so the stored figure is
// round-trippable on its own.
func Total(subtotal, taxAmount, tipAmount float64) float64 {
	sub := decimal.NewFromFloat(subtotal)
	tax := decimal.NewFromFloat(taxAmount)
	tip := decimal.NewFromFloat(tipAmount)
	return sub.Add(tax).Add(tip).Round(2).InexactFloat64()
}

// ChangeDue returns the rounded change owed to the customer, never negative.
func ChangeDue(tendered, total float64) float64 {
	diff := decimal.NewFromFloat(tendered).Sub(decimal.NewFromFloat(total)).Round(2)
	if diff.IsNegative() {
		return 0
	}
	return diff.InexactFloat64()
}

// Sufficient reports whether the tendered amount covers the total, allowing
// a 0.01 shortfall as floating point slack.
func Sufficient(tendered, total float64) bool {
	diff := decimal.NewFromFloat(tendered).Sub(decimal.NewFromFloat(total))
	return diff.GreaterThanOrEqual(tolerance)
}

// Remaining returns the positive amount still owed when payment is short.
func Remaining(tendered, total float64) float64 {
	diff := decimal.NewFromFloat(total).Sub(decimal.NewFromFloat(tendered)).Round(2)
	if diff.IsNegative() {
		return 0
	}
	return diff.InexactFloat64()
}

// QuickCashAmounts suggests cash amounts for the given total: the next
// 10, 20, 50 and 100 boundary strictly above it, deduplicated, ascending,
// at most four entries.
func QuickCashAmounts(total float64) []float64 {
	t := decimal.NewFromFloat(total)
	seen := make(map[string]bool, len(cashBoundaries))
	amounts := make([]float64, 0, len(cashBoundaries))
	for _, b := range cashBoundaries {
		unit := decimal.NewFromInt(b)
		amt := t.Div(unit).Floor().Add(decimal.NewFromInt(1)).Mul(unit)
		key := amt.StringFixed(2)
		if seen[key] {
			continue
		}
		seen[key] = true
		amounts = append(amounts, amt.InexactFloat64())
	}
	sort.Float64s(amounts)
	if len(amounts) > 4 {
		amounts = amounts[:4]
	}
	return amounts
}
