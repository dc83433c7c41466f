package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/georgekarlr/beauty-salon-sub000/internal/application/service"
	"github.com/georgekarlr/beauty-salon-sub000/internal/domain/gateway"
	"github.com/georgekarlr/beauty-salon-sub000/internal/presentation/http/dto/request"
	"github.com/georgekarlr/beauty-salon-sub000/internal/presentation/http/dto/response"
)

// SalesHandler handles sales history and refund HTTP requests
type SalesHandler struct {
	salesService *service.SalesService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(salesService *service.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// List returns the sales history for a date range and optional search term
func (h *SalesHandler) List(c *gin.Context) {
	var filter request.SalesFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// default to the last 30 days
	end := time.Now()
	start := end.AddDate(0, 0, -30)
	if filter.Start != "" {
		parsed, err := time.Parse("2006-01-02", filter.Start)
		if err != nil {
			response.BadRequest(c, "Invalid start date, expected YYYY-MM-DD")
			return
		}
		start = parsed
	}
	if filter.End != "" {
		parsed, err := time.Parse("2006-01-02", filter.End)
		if err != nil {
			response.BadRequest(c, "Invalid end date, expected YYYY-MM-DD")
			return
		}
		// make the end date inclusive
		end = parsed.AddDate(0, 0, 1)
	}

	view, err := h.salesService.ListSales(c.Request.Context(), GetAccountID(c), gateway.HistoryQuery{
		Start:      start,
		End:        end,
		SearchTerm: filter.Search,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales retrieved", view)
}

// Get opens one sale's details and initializes its refund draft
func (h *SalesHandler) Get(c *gin.Context) {
	saleID, ok := h.saleID(c)
	if !ok {
		return
	}
	view, err := h.salesService.OpenSale(c.Request.Context(), GetAccountID(c), saleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale retrieved", view)
}

// SetRefundQuantity stages a refund quantity for one sale line
func (h *SalesHandler) SetRefundQuantity(c *gin.Context) {
	saleID, ok := h.saleID(c)
	if !ok {
		return
	}
	saleItemID, err := strconv.ParseInt(c.Param("saleItemID"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid sale item id")
		return
	}
	var req request.RefundQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	view, svcErr := h.salesService.SetRefundQuantity(GetAccountID(c), saleID, saleItemID, req.Quantity)
	if svcErr != nil {
		response.Error(c, svcErr)
		return
	}
	response.OK(c, "Refund quantity staged", view)
}

// SetRefundReason updates the refund draft's reason text
func (h *SalesHandler) SetRefundReason(c *gin.Context) {
	saleID, ok := h.saleID(c)
	if !ok {
		return
	}
	var req request.RefundReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	view, err := h.salesService.SetRefundReason(GetAccountID(c), saleID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Refund reason updated", view)
}

// SubmitRefund posts the staged refund. A gateway failure is reported on
// the returned state so the draft survives for correction.
func (h *SalesHandler) SubmitRefund(c *gin.Context) {
	saleID, ok := h.saleID(c)
	if !ok {
		return
	}
	view, err := h.salesService.SubmitRefund(c.Request.Context(), GetAccountID(c), saleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if view.Error != "" {
		response.OK(c, "Refund submission failed", view)
		return
	}
	response.OK(c, "Refund submitted", view)
}

// CloseRefund discards the open sale and its refund draft
func (h *SalesHandler) CloseRefund(c *gin.Context) {
	view := h.salesService.CloseSale(GetAccountID(c))
	response.OK(c, "Sale closed", view)
}

func (h *SalesHandler) saleID(c *gin.Context) (int64, bool) {
	saleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid sale id")
		return 0, false
	}
	return saleID, true
}
