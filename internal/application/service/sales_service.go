package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/georgekarlr/beauty-salon-sub000/internal/domain/entity"
	"github.com/georgekarlr/beauty-salon-sub000/internal/domain/gateway"
	"github.com/georgekarlr/beauty-salon-sub000/pkg/apperror"
)

// DefaultRefundReason is used when a refund is submitted with a blank
// reason. The stored draft keeps the user's text untouched.
const DefaultRefundReason = "Refund"

// salesWorkspace is one account's reconciler state: the last loaded history
// list, the currently open sale and its refund draft.
type salesWorkspace struct {
	mu sync.Mutex

	accountID string

	sales []entity.SaleSummary
	query gateway.HistoryQuery

	openSale *entity.SaleDetails
	draft    *entity.RefundDraft

	submitting bool
	errMsg     string

	// stale-response guard for the history list
	listGen uint64
}

// SalesView is the serializable snapshot of a reconciler workspace. The
// eligible refund set and its total are derived on every snapshot.
type SalesView struct {
	Sales       []entity.SaleSummary `json:"sales"`
	OpenSale    *entity.SaleDetails  `json:"open_sale,omitempty"`
	Quantities  map[int64]int        `json:"refund_quantities,omitempty"`
	Reason      string               `json:"refund_reason,omitempty"`
	Eligible    []entity.RefundLine  `json:"eligible_refund_lines"`
	RefundTotal float64              `json:"refund_total"`
	Submitting  bool                 `json:"submitting"`
	Error       string               `json:"error,omitempty"`
}

// SalesService owns the post-sale lifecycle: history listing, sale
// inspection and partial refunds, all against the commerce gateway
type SalesService struct {
	gateway gateway.CommerceGateway
	logger  *zap.Logger

	mu         sync.Mutex
	workspaces map[string]*salesWorkspace
}

// NewSalesService creates a new sales service
func NewSalesService(gw gateway.CommerceGateway, logger *zap.Logger) *SalesService {
	return &SalesService{
		gateway:    gw,
		logger:     logger,
		workspaces: make(map[string]*salesWorkspace),
	}
}

func (svc *SalesService) workspace(accountID string) *salesWorkspace {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	ws, ok := svc.workspaces[accountID]
	if !ok {
		ws = &salesWorkspace{accountID: accountID}
		svc.workspaces[accountID] = ws
	}
	return ws
}

func (ws *salesWorkspace) snapshot() *SalesView {
	view := &SalesView{
		Sales:      ws.sales,
		OpenSale:   ws.openSale,
		Submitting: ws.submitting,
		Error:      ws.errMsg,
		Eligible:   []entity.RefundLine{},
	}
	if ws.draft != nil && ws.openSale != nil {
		// copy so the view survives the mutex; the live map keeps changing
		quantities := make(map[int64]int, len(ws.draft.Quantities))
		for id, qty := range ws.draft.Quantities {
			quantities[id] = qty
		}
		view.Quantities = quantities
		view.Reason = ws.draft.Reason
		view.Eligible = ws.draft.EligibleLines(ws.openSale.Items)
		view.RefundTotal = ws.draft.Total(ws.openSale.Items)
	}
	return view
}

// ListSales loads the sales history for a date range and optional search
// term. The gateway's ordering is preserved and its net revenue figures are
// trusted as-is. A response arriving after the query changed is discarded;
// a failure keeps the previous list.
func (svc *SalesService) ListSales(ctx context.Context, accountID string, q gateway.HistoryQuery) (*SalesView, error) {
	ws := svc.workspace(accountID)

	ws.mu.Lock()
	ws.listGen++
	gen := ws.listGen
	ws.query = q
	ws.mu.Unlock()

	sales, gwErr := svc.gateway.ListSalesHistory(ctx, q)

	ws.mu.Lock()
	defer ws.mu.Unlock()
	if gen != ws.listGen {
		// the range or search term changed while this call was in flight
		return ws.snapshot(), nil
	}
	if gwErr != nil {
		ws.errMsg = gwErr.Error()
		return ws.snapshot(), nil
	}
	ws.errMsg = ""
	ws.sales = sales
	if sales == nil {
		ws.sales = []entity.SaleSummary{}
	}
	return ws.snapshot(), nil
}

// OpenSale fetches one sale's full details and initializes an all-zero
// refund draft keyed by the returned line items.
func (svc *SalesService) OpenSale(ctx context.Context, accountID string, saleID int64) (*SalesView, error) {
	ws := svc.workspace(accountID)

	details, gwErr := svc.gateway.GetSaleDetails(ctx, saleID)

	ws.mu.Lock()
	defer ws.mu.Unlock()
	if gwErr != nil {
		ws.errMsg = gwErr.Error()
		return ws.snapshot(), nil
	}
	ws.errMsg = ""
	ws.openSale = details
	ws.draft = entity.NewRefundDraft(saleID, details.Items)
	return ws.snapshot(), nil
}

// CloseSale discards the open sale and its refund draft
func (svc *SalesService) CloseSale(accountID string) *SalesView {
	ws := svc.workspace(accountID)
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.openSale = nil
	ws.draft = nil
	ws.errMsg = ""
	return ws.snapshot()
}

// SetRefundQuantity stages a refund quantity for one line of the open sale,
// clamped to the purchased quantity.
func (svc *SalesService) SetRefundQuantity(accountID string, saleID, saleItemID int64, qty int) (*SalesView, error) {
	ws := svc.workspace(accountID)
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.openSale == nil || ws.draft == nil || ws.openSale.ID != saleID {
		return nil, apperror.NewValidationError("No sale is open")
	}
	ws.draft.SetQuantity(saleItemID, qty)
	return ws.snapshot(), nil
}

// SetRefundReason updates the draft's free-text reason
func (svc *SalesService) SetRefundReason(accountID string, saleID int64, reason string) (*SalesView, error) {
	ws := svc.workspace(accountID)
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.openSale == nil || ws.draft == nil || ws.openSale.ID != saleID {
		return nil, apperror.NewValidationError("No sale is open")
	}
	ws.draft.Reason = reason
	return ws.snapshot(), nil
}

// SubmitRefund posts the staged refund. Local preconditions reject without
// a gateway call; on success the history list and the open sale's details
// are reloaded so server-computed totals replace the local draft math, and
// the form is reset. On failure the draft stays intact for correction.
func (svc *SalesService) SubmitRefund(ctx context.Context, accountID string, saleID int64) (*SalesView, error) {
	if accountID == "" {
		return nil, apperror.NewValidationError("No account context available")
	}
	ws := svc.workspace(accountID)

	ws.mu.Lock()
	if ws.openSale == nil || ws.draft == nil || ws.openSale.ID != saleID {
		ws.mu.Unlock()
		return nil, apperror.NewValidationError("No sale is open")
	}
	eligible := ws.draft.EligibleLines(ws.openSale.Items)
	if len(eligible) == 0 {
		ws.mu.Unlock()
		return nil, apperror.NewValidationError("No refund lines selected")
	}
	if ws.submitting {
		ws.mu.Unlock()
		return nil, apperror.NewValidationError("A refund is already being submitted")
	}
	ws.submitting = true
	reason := ws.draft.Reason
	if reason == "" {
		reason = DefaultRefundReason
	}
	items := make([]gateway.RefundItemLine, len(eligible))
	for i, line := range eligible {
		items[i] = gateway.RefundItemLine{
			SaleItemID:   line.SaleItemID,
			Quantity:     line.Quantity,
			RefundAmount: line.RefundAmount,
		}
	}
	query := ws.query
	ws.mu.Unlock()

	result, gwErr := svc.gateway.SubmitRefund(ctx, &gateway.RefundRequest{
		AccountID: accountID,
		SaleID:    saleID,
		Reason:    reason,
		Items:     items,
	})

	if gwErr != nil {
		ws.mu.Lock()
		defer ws.mu.Unlock()
		ws.submitting = false
		ws.errMsg = gwErr.Error()
		svc.logger.Warn("refund submission failed",
			zap.String("account_id", accountID),
			zap.Int64("sale_id", saleID),
			zap.Error(gwErr),
		)
		return ws.snapshot(), nil
	}

	svc.logger.Info("refund submitted",
		zap.String("account_id", accountID),
		zap.Int64("sale_id", saleID),
		zap.Int64("refund_id", result.RefundID),
	)

	// reload list and details; the server owns net revenue and refund
	// history, the console never decrements them locally
	sales, listErr := svc.gateway.ListSalesHistory(ctx, query)
	details, detailErr := svc.gateway.GetSaleDetails(ctx, saleID)

	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.submitting = false
	ws.errMsg = ""
	if listErr == nil && sales != nil {
		ws.sales = sales
	} else if listErr != nil {
		ws.errMsg = listErr.Error()
	}
	if detailErr == nil {
		ws.openSale = details
		ws.draft = entity.NewRefundDraft(saleID, details.Items)
	} else {
		ws.errMsg = detailErr.Error()
	}
	return ws.snapshot(), nil
}
