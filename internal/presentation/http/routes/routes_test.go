package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/georgekarlr/beauty-salon-sub000/internal/application/service"
	"github.com/georgekarlr/beauty-salon-sub000/internal/config"
	"github.com/georgekarlr/beauty-salon-sub000/internal/domain/entity"
	"github.com/georgekarlr/beauty-salon-sub000/internal/domain/gateway"
	"github.com/georgekarlr/beauty-salon-sub000/internal/presentation/http/handler"
)

// stubGateway answers every remote operation with canned data
type stubGateway struct{}

func (stubGateway) SearchCustomers(context.Context, string) ([]entity.Customer, error) {
	return []entity.Customer{{ID: 100, Name: "Dana Reyes"}}, nil
}

func (stubGateway) ListAppointments(context.Context, gateway.AppointmentQuery) ([]entity.Appointment, error) {
	return []entity.Appointment{}, nil
}

func (stubGateway) ListCatalog(context.Context) (*gateway.Catalog, error) {
	return &gateway.Catalog{
		Services: []entity.ServiceItem{{ID: 1, Name: "Haircut", Price: 25.00}},
		Products: []entity.Product{{ID: 1, Name: "Shampoo", Price: 10.00}},
	}, nil
}

func (stubGateway) SubmitSale(_ context.Context, req *gateway.SaleRequest) (*gateway.SaleResult, error) {
	return &gateway.SaleResult{SaleID: 42, TotalAmount: req.TotalAmount}, nil
}

func (stubGateway) SubmitRefund(context.Context, *gateway.RefundRequest) (*gateway.RefundResult, error) {
	return &gateway.RefundResult{RefundID: 5}, nil
}

func (stubGateway) ListSalesHistory(context.Context, gateway.HistoryQuery) ([]entity.SaleSummary, error) {
	return []entity.SaleSummary{}, nil
}

func (stubGateway) GetSaleDetails(context.Context, int64) (*entity.SaleDetails, error) {
	return &entity.SaleDetails{}, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zaptest.NewLogger(t)
	cfg := &config.Config{
		App:       config.AppConfig{Name: "salon-pos-console"},
		RateLimit: config.RateLimitConfig{Requests: 100, Duration: 1},
	}

	checkoutService := service.NewCheckoutService(stubGateway{}, logger, 8)
	salesService := service.NewSalesService(stubGateway{}, logger)

	return Setup(&Handlers{
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Sales:    handler.NewSalesHandler(salesService),
	}, &Deps{Cfg: cfg, Logger: logger})
}

func do(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Account-ID", "acct-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "salon-pos-console")
}

func TestCheckoutRequiresAccountContext(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/sessions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Account context required")
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/v1/checkout/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	base := "/api/v1/checkout/sessions/" + created.Data.ID

	w = do(t, router, http.MethodPost, base+"/customer", `{"id": 100, "name": "Dana Reyes"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodPost, base+"/advance", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"step":2`)

	w = do(t, router, http.MethodPost, base+"/items", `{"kind": "service", "item_id": 1}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodPost, base+"/advance", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"step":3`)

	w = do(t, router, http.MethodPost, base+"/payment", `{"method": "card"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sufficient":true`)

	w = do(t, router, http.MethodPost, base+"/commit", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"step":4`)
	assert.Contains(t, w.Body.String(), `"sale_id":42`)
}

func TestSalesListRejectsMalformedDates(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/api/v1/sales?start=2026-13-45", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid start date")

	w = do(t, router, http.MethodGet, "/api/v1/sales?end=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid end date")
}

func TestAdvanceWithoutCustomerIsNoOp(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/v1/checkout/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = do(t, router, http.MethodPost, "/api/v1/checkout/sessions/"+created.Data.ID+"/advance", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"step":1`)
}
