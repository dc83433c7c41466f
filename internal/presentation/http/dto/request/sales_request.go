package request

// SalesFilterRequest represents sales history filter parameters
type SalesFilterRequest struct {
	Start  string `form:"start"`
	End    string `form:"end"`
	Search string `form:"search"`
}

// RefundQuantityRequest stages a refund quantity for one sale line
type RefundQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// RefundReasonRequest updates the refund draft's free-text reason
type RefundReasonRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}
