package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/georgekarlr/beauty-salon-sub000/internal/application/service"
	"github.com/georgekarlr/beauty-salon-sub000/internal/domain/entity"
	"github.com/georgekarlr/beauty-salon-sub000/internal/domain/enum"
	"github.com/georgekarlr/beauty-salon-sub000/internal/presentation/http/dto/request"
	"github.com/georgekarlr/beauty-salon-sub000/internal/presentation/http/dto/response"
)

// CheckoutHandler handles point-of-sale checkout HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Create opens a new checkout session
func (h *CheckoutHandler) Create(c *gin.Context) {
	view := h.checkoutService.Create(c.Request.Context(), GetAccountID(c))
	response.Created(c, "Checkout session created", view)
}

// Get returns the current session state with derived totals
func (h *CheckoutHandler) Get(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}
	view, err := h.checkoutService.Get(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Checkout session retrieved", view)
}

// Discard removes a session entirely
func (h *CheckoutHandler) Discard(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}
	if err := h.checkoutService.Discard(id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Reset clears the session back to the customer step
func (h *CheckoutHandler) Reset(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}
	view, err := h.checkoutService.Reset(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Checkout session reset", view)
}

// SearchCustomers looks up customers by free text via the gateway
func (h *CheckoutHandler) SearchCustomers(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}
	view, err := h.checkoutService.SearchCustomers(c.Request.Context(), id, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customers retrieved", view)
}

// SelectCustomer attaches a customer and loads their same-day appointments
func (h *CheckoutHandler) SelectCustomer(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}
	var req request.SelectCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	view, err := h.checkoutService.SelectCustomer(c.Request.Context(), id, entity.Customer{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer selected", view)
}

// SelectAppointment links one of the offered appointments to the checkout
func (h *CheckoutHandler) SelectAppointment(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}
	var req request.SelectAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	view, err := h.checkoutService.SelectAppointment(id, req.AppointmentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Appointment linked", view)
}

// ReloadCatalog retries the catalog preload
func (h *CheckoutHandler) ReloadCatalog(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}
	view, err := h.checkoutService.ReloadCatalog(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Catalog retrieved", view)
}

// AddItem places a catalog item in the cart
func (h *CheckoutHandler) AddItem(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}
	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	kind, err := enum.ParseItemKind(req.Kind)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	view, svcErr := h.checkoutService.AddItem(id, kind, req.ItemID)
	if svcErr != nil {
		response.Error(c, svcErr)
		return
	}
	response.OK(c, "Item added", view)
}

// UpdateQuantity changes a cart line's quantity
func (h *CheckoutHandler) UpdateQuantity(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}
	kind, ok := itemKind(c)
	if !ok {
		response.BadRequest(c, "Invalid item kind")
		return
	}
	itemID, err := strconv.ParseInt(c.Param("itemID"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid item id")
		return
	}
	var req request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	view, svcErr := h.checkoutService.UpdateQuantity(id, kind, itemID, req.Quantity)
	if svcErr != nil {
		response.Error(c, svcErr)
		return
	}
	response.OK(c, "Quantity updated", view)
}

// RemoveItem deletes a cart line
func (h *CheckoutHandler) RemoveItem(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}
	kind, ok := itemKind(c)
	if !ok {
		response.BadRequest(c, "Invalid item kind")
		return
	}
	itemID, err := strconv.ParseInt(c.Param("itemID"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid item id")
		return
	}
	view, svcErr := h.checkoutService.RemoveItem(id, kind, itemID)
	if svcErr != nil {
		response.Error(c, svcErr)
		return
	}
	response.OK(c, "Item removed", view)
}

// SetPayment applies payment-step inputs
func (h *CheckoutHandler) SetPayment(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}
	var req request.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	input := service.PaymentInput{
		TaxRatePercent: req.TaxRatePercent,
		TipAmount:      req.TipAmount,
		AmountTendered: req.AmountTendered,
	}
	if req.Method != nil {
		method, err := enum.ParsePaymentMethod(*req.Method)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		input.Method = &method
	}
	view, err := h.checkoutService.SetPayment(id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment updated", view)
}

// CashSuggestions returns quick cash amounts above the current total
func (h *CheckoutHandler) CashSuggestions(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}
	amounts, err := h.checkoutService.CashSuggestions(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cash suggestions", gin.H{"amounts": amounts})
}

// Advance moves the wizard forward; an unmet guard leaves the step as is
func (h *CheckoutHandler) Advance(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}
	view, err := h.checkoutService.Advance(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Step updated", view)
}

// Back moves the wizard one step back
func (h *CheckoutHandler) Back(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}
	view, err := h.checkoutService.Back(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Step updated", view)
}

// Commit submits the sale. A gateway failure is reported on the returned
// state, not as an HTTP error, so the caller keeps the cart for retry.
func (h *CheckoutHandler) Commit(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}
	view, err := h.checkoutService.Commit(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if view.Error != "" {
		response.OK(c, "Sale submission failed", view)
		return
	}
	response.OK(c, "Sale completed", view)
}
