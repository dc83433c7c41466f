package gateway

import (
	"context"
	"time"

	"github.com/georgekarlr/beauty-salon-sub000/internal/domain/entity"
	"github.com/georgekarlr/beauty-salon-sub000/internal/domain/enum"
)

// Catalog is the full set of sellable services and products
type Catalog struct {
	Services []entity.ServiceItem `json:"services"`
	Products []entity.Product     `json:"products"`
}

// AppointmentQuery filters appointments by time range and, optionally, by
// customer.
type AppointmentQuery struct {
	Start      time.Time
	End        time.Time
	CustomerID *int64
}

// HistoryQuery filters the sales history list
type HistoryQuery struct {
	Start      time.Time
	End        time.Time
	SearchTerm string
}

// SaleItemLine is one service or product line on a sale submission
type SaleItemLine struct {
	ID          int64   `json:"id"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	TotalAmount float64 `json:"total_amount"`
}

// SaleRequest is the payload posted to the remote store when a checkout
// commits. All monetary figures are rounded to 2 decimals before this
// struct is built.
type SaleRequest struct {
	AccountID      string             `json:"account_id"`
	CustomerID     *int64             `json:"customer_id,omitempty"`
	AppointmentID  *int64             `json:"appointment_id,omitempty"`
	Subtotal       float64            `json:"subtotal"`
	TaxAmount      float64            `json:"tax_amount"`
	TipAmount      float64            `json:"tip_amount"`
	TotalAmount    float64            `json:"total_amount"`
	AmountTendered *float64           `json:"amount_tendered,omitempty"`
	PaymentMethod  enum.PaymentMethod `json:"payment_method"`
	ServiceItems   []SaleItemLine     `json:"service_items"`
	ProductItems   []SaleItemLine     `json:"product_items"`
}

// SaleResult is the remote store's acknowledgement of a submitted sale
type SaleResult struct {
	SaleID      int64     `json:"sale_id"`
	TotalAmount float64   `json:"total_amount"`
	ChangeDue   float64   `json:"change_due"`
	SaleDate    time.Time `json:"sale_date"`
}

// RefundItemLine is one line of a refund submission
type RefundItemLine struct {
	SaleItemID   int64   `json:"sale_item_id"`
	Quantity     int     `json:"quantity"`
	RefundAmount float64 `json:"refund_amount"`
}

// RefundRequest is the payload posted when a staged refund is submitted
type RefundRequest struct {
	AccountID string           `json:"account_id"`
	SaleID    int64            `json:"sale_id"`
	Reason    string           `json:"reason"`
	Items     []RefundItemLine `json:"items"`
}

// RefundResult is the remote store's acknowledgement of a submitted refund
type RefundResult struct {
	RefundID   int64     `json:"refund_id"`
	RefundDate time.Time `json:"refund_date"`
}

// CommerceGateway is the port to the remote commerce store. One method per
// remote operation; the console knows nothing about transport, auth or
// serialization, and the store is the sole arbiter of durable state.
type CommerceGateway interface {
	SearchCustomers(ctx context.Context, term string) ([]entity.Customer, error)
	ListAppointments(ctx context.Context, q AppointmentQuery) ([]entity.Appointment, error)
	ListCatalog(ctx context.Context) (*Catalog, error)
	SubmitSale(ctx context.Context, req *SaleRequest) (*SaleResult, error)
	SubmitRefund(ctx context.Context, req *RefundRequest) (*RefundResult, error)
	ListSalesHistory(ctx context.Context, q HistoryQuery) ([]entity.SaleSummary, error)
	GetSaleDetails(ctx context.Context, saleID int64) (*entity.SaleDetails, error)
}
