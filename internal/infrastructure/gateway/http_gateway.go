package gateway

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"
	"resty.dev/v3"

	"github.com/georgekarlr/beauty-salon-sub000/internal/config"
	"github.com/georgekarlr/beauty-salon-sub000/internal/domain/entity"
	domain "github.com/georgekarlr/beauty-salon-sub000/internal/domain/gateway"
	"github.com/georgekarlr/beauty-salon-sub000/pkg/apperror"
)

// remoteError is the error body the commerce store returns on failures
type remoteError struct {
	Message string `json:"message"`
}

// HTTPGateway implements the CommerceGateway port over the store's HTTP API
type HTTPGateway struct {
	client *resty.Client
	logger *zap.Logger
}

// NewHTTPGateway creates a gateway client from configuration
func NewHTTPGateway(cfg *config.GatewayConfig, logger *zap.Logger) *HTTPGateway {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		client.SetHeader("X-API-Key", cfg.APIKey)
	}
	return &HTTPGateway{client: client, logger: logger}
}

// Close releases the underlying HTTP client
func (g *HTTPGateway) Close() error {
	return g.client.Close()
}

// asGatewayError converts a transport failure or remote error body into the
// user-facing gateway error shape. The remote message travels verbatim.
func (g *HTTPGateway) asGatewayError(op string, res *resty.Response, err error) error {
	if err != nil {
		g.logger.Error("gateway call failed", zap.String("op", op), zap.Error(err))
		return apperror.NewGatewayError(err.Error())
	}
	msg := ""
	if re, ok := res.Error().(*remoteError); ok && re != nil {
		msg = re.Message
	}
	g.logger.Error("gateway returned error",
		zap.String("op", op),
		zap.Int("status", res.StatusCode()),
		zap.String("message", msg),
	)
	return apperror.NewGatewayError(msg)
}

func (g *HTTPGateway) SearchCustomers(ctx context.Context, term string) ([]entity.Customer, error) {
	var customers []entity.Customer
	res, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("search", term).
		SetResult(&customers).
		SetError(&remoteError{}).
		Get("/customers")
	if err != nil || res.IsError() {
		return nil, g.asGatewayError("search_customers", res, err)
	}
	return customers, nil
}

func (g *HTTPGateway) ListAppointments(ctx context.Context, q domain.AppointmentQuery) ([]entity.Appointment, error) {
	req := g.client.R().
		SetContext(ctx).
		SetQueryParam("start", q.Start.Format(time.RFC3339)).
		SetQueryParam("end", q.End.Format(time.RFC3339))
	if q.CustomerID != nil {
		req.SetQueryParam("customer_id", strconv.FormatInt(*q.CustomerID, 10))
	}
	var appointments []entity.Appointment
	res, err := req.
		SetResult(&appointments).
		SetError(&remoteError{}).
		Get("/appointments")
	if err != nil || res.IsError() {
		return nil, g.asGatewayError("list_appointments", res, err)
	}
	return appointments, nil
}

func (g *HTTPGateway) ListCatalog(ctx context.Context) (*domain.Catalog, error) {
	var catalog domain.Catalog
	res, err := g.client.R().
		SetContext(ctx).
		SetResult(&catalog).
		SetError(&remoteError{}).
		Get("/catalog")
	if err != nil || res.IsError() {
		return nil, g.asGatewayError("list_catalog", res, err)
	}
	return &catalog, nil
}

func (g *HTTPGateway) SubmitSale(ctx context.Context, saleReq *domain.SaleRequest) (*domain.SaleResult, error) {
	var result domain.SaleResult
	res, err := g.client.R().
		SetContext(ctx).
		SetBody(saleReq).
		SetResult(&result).
		SetError(&remoteError{}).
		Post("/sales")
	if err != nil || res.IsError() {
		return nil, g.asGatewayError("submit_sale", res, err)
	}
	g.logger.Info("sale submitted",
		zap.Int64("sale_id", result.SaleID),
		zap.Float64("total_amount", result.TotalAmount),
	)
	return &result, nil
}

func (g *HTTPGateway) SubmitRefund(ctx context.Context, refundReq *domain.RefundRequest) (*domain.RefundResult, error) {
	var result domain.RefundResult
	res, err := g.client.R().
		SetContext(ctx).
		SetBody(refundReq).
		SetResult(&result).
		SetError(&remoteError{}).
		Post("/refunds")
	if err != nil || res.IsError() {
		return nil, g.asGatewayError("submit_refund", res, err)
	}
	g.logger.Info("refund submitted",
		zap.Int64("sale_id", refundReq.SaleID),
		zap.Int64("refund_id", result.RefundID),
	)
	return &result, nil
}

func (g *HTTPGateway) ListSalesHistory(ctx context.Context, q domain.HistoryQuery) ([]entity.SaleSummary, error) {
	var sales []entity.SaleSummary
	res, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("start", q.Start.Format(time.RFC3339)).
		SetQueryParam("end", q.End.Format(time.RFC3339)).
		SetQueryParam("search", q.SearchTerm).
		SetResult(&sales).
		SetError(&remoteError{}).
		Get("/sales")
	if err != nil || res.IsError() {
		return nil, g.asGatewayError("list_sales_history", res, err)
	}
	return sales, nil
}

func (g *HTTPGateway) GetSaleDetails(ctx context.Context, saleID int64) (*entity.SaleDetails, error) {
	var details entity.SaleDetails
	res, err := g.client.R().
		SetContext(ctx).
		SetResult(&details).
		SetError(&remoteError{}).
		Get("/sales/" + strconv.FormatInt(saleID, 10))
	if err != nil || res.IsError() {
		return nil, g.asGatewayError("get_sale_details", res, err)
	}
	return &details, nil
}

var _ domain.CommerceGateway = (*HTTPGateway)(nil)
