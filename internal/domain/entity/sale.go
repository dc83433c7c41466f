package entity

import "time"

// SaleSummary is one row of the sales history list. The net revenue figure
// is precomputed by the gateway and trusted as-is; the console never
// recomputes historical totals.
type SaleSummary struct {
	ID            int64     `json:"id"`
	SaleDate      time.Time `json:"sale_date"`
	CustomerName  string    `json:"customer_name,omitempty"`
	PaymentMethod string    `json:"payment_method"`
	TotalAmount   float64   `json:"total_amount"`
	TotalRefund   float64   `json:"total_refund"`
	NetRevenue    float64   `json:"net_revenue"`
}

// SaleLineItem is one purchased line on a historical sale, immutable once
// created.
type SaleLineItem struct {
	SaleItemID   int64   `json:"sale_item_id"`
	ItemName     string  `json:"item_name"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit"`
	TotalPrice   float64 `json:"total_price"`
}

// RefundRecord is a prior refund applied to a sale
type RefundRecord struct {
	RefundDate time.Time `json:"refund_date"`
	Reason     string    `json:"reason"`
	Amount     float64   `json:"amount"`
}

// SaleDetails is the full view of one sale: summary figures, the ordered
// line items and the refund history.
type SaleDetails struct {
	SaleSummary
	Subtotal       float64        `json:"subtotal"`
	TaxAmount      float64        `json:"tax_amount"`
	TipAmount      float64        `json:"tip_amount"`
	AmountTendered *float64       `json:"amount_tendered,omitempty"`
	ChangeDue      float64        `json:"change_due"`
	Items          []SaleLineItem `json:"items"`
	Refunds        []RefundRecord `json:"refunds"`
}
