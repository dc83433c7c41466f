package request

// SelectCustomerRequest attaches a customer to a checkout session
type SelectCustomerRequest struct {
	ID    int64  `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required,max=255"`
	Email string `json:"email" binding:"omitempty,max=255"`
	Phone string `json:"phone" binding:"omitempty,max=50"`
}

// SelectAppointmentRequest links an offered appointment to the checkout
type SelectAppointmentRequest struct {
	AppointmentID int64 `json:"appointment_id" binding:"required"`
}

// AddItemRequest puts a catalog item into the cart
type AddItemRequest struct {
	Kind   string `json:"kind" binding:"required"`
	ItemID int64  `json:"item_id" binding:"required"`
}

// UpdateQuantityRequest changes a cart line's quantity; values below one
// are clamped, removal is its own endpoint
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// PaymentRequest applies payment-step inputs; nil fields are untouched
type PaymentRequest struct {
	Method         *string  `json:"method"`
	TaxRatePercent *float64 `json:"tax_rate_percent" binding:"omitempty,min=0,max=100"`
	TipAmount      *float64 `json:"tip_amount" binding:"omitempty,min=0"`
	AmountTendered *float64 `json:"amount_tendered" binding:"omitempty,min=0"`
}
