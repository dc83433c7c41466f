package entity

import "github.com/georgekarlr/beauty-salon-sub000/pkg/money"

// RefundDraft stages a partial refund against one open sale. It lives only
// while the sale's details are open and is discarded after submission.
type RefundDraft struct {
	SaleID     int64         `json:"sale_id"`
	Quantities map[int64]int `json:"quantities"`
	Reason     string        `json:"reason"`

	items map[int64]SaleLineItem
}

// RefundLine is a derived, submittable refund entry for one sale line
type RefundLine struct {
	SaleItemID   int64   `json:"sale_item_id"`
	Quantity     int     `json:"quantity"`
	RefundAmount float64 `json:"refund_amount"`
}

// NewRefundDraft initializes an all-zero draft keyed by the sale's line items
func NewRefundDraft(saleID int64, items []SaleLineItem) *RefundDraft {
	d := &RefundDraft{
		SaleID:     saleID,
		Quantities: make(map[int64]int, len(items)),
		items:      make(map[int64]SaleLineItem, len(items)),
	}
	for _, item := range items {
		d.Quantities[item.SaleItemID] = 0
		d.items[item.SaleItemID] = item
	}
	return d
}

// SetQuantity stages a refund quantity for one line, clamped to
// [0, purchased quantity]. Unknown line ids are ignored.
func (d *RefundDraft) SetQuantity(saleItemID int64, qty int) {
	item, ok := d.items[saleItemID]
	if !ok {
		return
	}
	if qty < 0 {
		qty = 0
	}
	if qty > item.Quantity {
		qty = item.Quantity
	}
	d.Quantities[saleItemID] = qty
}

// EligibleLines derives the submittable refund lines: quantity above zero
// and a positive rounded amount, in the sale's line order.
func (d *RefundDraft) EligibleLines(order []SaleLineItem) []RefundLine {
	lines := make([]RefundLine, 0, len(order))
	for _, item := range order {
		qty := d.Quantities[item.SaleItemID]
		if qty <= 0 {
			continue
		}
		amount := money.LineTotal(item.PricePerUnit, qty)
		if amount <= 0 {
			continue
		}
		lines = append(lines, RefundLine{
			SaleItemID:   item.SaleItemID,
			Quantity:     qty,
			RefundAmount: amount,
		})
	}
	return lines
}

// Total sums the eligible refund amounts
func (d *RefundDraft) Total(order []SaleLineItem) float64 {
	var total float64
	for _, line := range d.EligibleLines(order) {
		total += line.RefundAmount
	}
	return money.Round2(total)
}
