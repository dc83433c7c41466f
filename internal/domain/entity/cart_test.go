package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/georgekarlr/beauty-salon-sub000/internal/domain/enum"
)

func TestComputeTotals(t *testing.T) {
	cart := []CartLine{
		{ID: 1, Name: "Haircut", UnitPrice: 25.00, Quantity: 2, Kind: enum.KindService},
		{ID: 1, Name: "Shampoo", UnitPrice: 10.00, Quantity: 1, Kind: enum.KindProduct},
	}

	totals := ComputeTotals(cart, 8, 5)

	assert.Equal(t, 60.00, totals.Subtotal)
	assert.Equal(t, 4.80, totals.TaxAmount)
	assert.Equal(t, 5.00, totals.TipAmount)
	assert.Equal(t, 69.80, totals.Total)
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil, 8, 0)
	assert.Equal(t, 0.00, totals.Subtotal)
	assert.Equal(t, 0.00, totals.TaxAmount)
	assert.Equal(t, 0.00, totals.Total)
}

func TestComputeTotalsRoundsEachStep(t *testing.T) {
	// tax on 10.37 at 7.5% is 0.77775; the stored tax must round on its
	// own, and the total must be built from the rounded pieces
	cart := []CartLine{
		{ID: 2, Name: "Trim", UnitPrice: 10.37, Quantity: 1, Kind: enum.KindService},
	}

	totals := ComputeTotals(cart, 7.5, 0)

	assert.Equal(t, 10.37, totals.Subtotal)
	assert.Equal(t, 0.78, totals.TaxAmount)
	assert.Equal(t, 11.15, totals.Total)
}

func TestAssessPayment(t *testing.T) {
	tendered := 70.00
	p := AssessPayment(69.80, &tendered)
	assert.True(t, p.Sufficient)
	assert.Equal(t, 0.20, p.ChangeDue)
	assert.Equal(t, 0.00, p.Remaining)

	short := 60.00
	p = AssessPayment(69.80, &short)
	assert.False(t, p.Sufficient)
	assert.Equal(t, 0.00, p.ChangeDue)
	assert.Equal(t, 9.80, p.Remaining)
}

func TestAssessPaymentNilTendered(t *testing.T) {
	p := AssessPayment(69.80, nil)
	assert.False(t, p.Sufficient)
	assert.Equal(t, 69.80, p.Remaining)
}
