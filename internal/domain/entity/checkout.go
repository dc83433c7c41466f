package entity

import (
	"time"

	"github.com/georgekarlr/beauty-salon-sub000/pkg/money"
)

// CommitResult is the terminal outcome of a committed sale, stored on the
// session once step 4 is reached.
type CommitResult struct {
	SaleID      int64     `json:"sale_id"`
	TotalAmount float64   `json:"total_amount"`
	ChangeDue   float64   `json:"change_due"`
	SaleDate    time.Time `json:"sale_date"`
}

// PaymentAssessment reports whether the tendered amount covers the total.
// A shortfall is expressed as a positive remaining amount, never a negative
// change figure.
type PaymentAssessment struct {
	Sufficient bool    `json:"sufficient"`
	ChangeDue  float64 `json:"change_due"`
	Remaining  float64 `json:"remaining"`
}

// AssessPayment evaluates a tendered amount against a total. A nil tendered
// amount is insufficient by definition and owes the full total.
func AssessPayment(total float64, tendered *float64) PaymentAssessment {
	if tendered == nil {
		return PaymentAssessment{Remaining: money.Round2(total)}
	}
	if !money.Sufficient(*tendered, total) {
		return PaymentAssessment{Remaining: money.Remaining(*tendered, total)}
	}
	return PaymentAssessment{
		Sufficient: true,
		ChangeDue:  money.ChangeDue(*tendered, total),
	}
}
