package entity

import (
	"github.com/georgekarlr/beauty-salon-sub000/internal/domain/enum"
	"github.com/georgekarlr/beauty-salon-sub000/pkg/money"
)

// CartLine is one entry in a checkout cart, unique by (ID, Kind)
type CartLine struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	UnitPrice float64       `json:"unit_price"`
	Quantity  int           `json:"quantity"`
	Kind      enum.ItemKind `json:"kind"`
}

// Total returns the rounded line total
func (l CartLine) Total() float64 {
	return money.LineTotal(l.UnitPrice, l.Quantity)
}

// Totals holds the derived monetary figures for a cart. Never stored;
// recomputed from the inputs on every read.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"tax_amount"`
	TipAmount float64 `json:"tip_amount"`
	Total     float64 `json:"total"`
}

// ComputeTotals derives subtotal, tax and total from the cart and the tax
// and tip inputs. Each figure is rounded at its own step so the stored tax
// and total are individually round-trippable.
func ComputeTotals(cart []CartLine, taxRatePercent, tipAmount float64) Totals {
	var subtotal float64
	for _, line := range cart {
		subtotal += line.Total()
	}
	subtotal = money.Round2(subtotal)
	tax := money.Tax(subtotal, taxRatePercent)
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		TipAmount: money.Round2(tipAmount),
		Total:     money.Total(subtotal, tax, tipAmount),
	}
}
