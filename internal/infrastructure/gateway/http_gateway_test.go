package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/georgekarlr/beauty-salon-sub000/internal/config"
	domain "github.com/georgekarlr/beauty-salon-sub000/internal/domain/gateway"
	"github.com/georgekarlr/beauty-salon-sub000/pkg/apperror"
)

func newTestGateway(t *testing.T, handler http.Handler) (*HTTPGateway, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gw := NewHTTPGateway(&config.GatewayConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, zaptest.NewLogger(t))
	t.Cleanup(func() { _ = gw.Close() })
	return gw, server
}

func TestSubmitSaleSuccess(t *testing.T) {
	var received domain.SaleRequest
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/sales", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.SaleResult{
			SaleID:      42,
			TotalAmount: received.TotalAmount,
			ChangeDue:   0.20,
			SaleDate:    time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
		})
	}))

	tendered := 70.00
	result, err := gw.SubmitSale(context.Background(), &domain.SaleRequest{
		AccountID:      "acct-1",
		Subtotal:       60.00,
		TaxAmount:      4.80,
		TipAmount:      5.00,
		TotalAmount:    69.80,
		AmountTendered: &tendered,
		PaymentMethod:  "cash",
		ServiceItems:   []domain.SaleItemLine{{ID: 1, Quantity: 2, Price: 25.00, TotalAmount: 50.00}},
		ProductItems:   []domain.SaleItemLine{{ID: 1, Quantity: 1, Price: 10.00, TotalAmount: 10.00}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), result.SaleID)
	assert.Equal(t, 69.80, result.TotalAmount)
	assert.Equal(t, 69.80, received.TotalAmount)
	require.NotNil(t, received.AmountTendered)
	assert.Equal(t, 70.00, *received.AmountTendered)
}

func TestSubmitSaleErrorMessageVerbatim(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "insufficient stock"})
	}))

	_, err := gw.SubmitSale(context.Background(), &domain.SaleRequest{AccountID: "acct-1"})
	require.Error(t, err)

	assert.Equal(t, "insufficient stock", err.Error())
	assert.True(t, apperror.IsGatewayError(err))
}

func TestErrorFallbackWhenRemoteMessageMissing(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := gw.ListCatalog(context.Background())
	require.Error(t, err)

	assert.Equal(t, apperror.GatewayFallbackMessage, err.Error())
	assert.True(t, apperror.IsGatewayError(err))
}

func TestListAppointmentsQuery(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/appointments", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("customer_id"))
		assert.NotEmpty(t, r.URL.Query().Get("start"))
		assert.NotEmpty(t, r.URL.Query().Get("end"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "customer_id": 100, "status": "scheduled"}]`))
	}))

	customerID := int64(100)
	appointments, err := gw.ListAppointments(context.Background(), domain.AppointmentQuery{
		Start:      time.Now(),
		End:        time.Now().Add(24 * time.Hour),
		CustomerID: &customerID,
	})
	require.NoError(t, err)

	require.Len(t, appointments, 1)
	assert.Equal(t, int64(1), appointments[0].ID)
	assert.True(t, appointments[0].Status.Linkable())
}

func TestGetSaleDetails(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sales/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 7,
			"total_amount": 135.5,
			"net_revenue": 135.5,
			"items": [
				{"sale_item_id": 11, "item_name": "Color Treatment", "quantity": 3, "price_per_unit": 40, "total_price": 120}
			],
			"refunds": []
		}`))
	}))

	details, err := gw.GetSaleDetails(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), details.ID)
	require.Len(t, details.Items, 1)
	assert.Equal(t, int64(11), details.Items[0].SaleItemID)
	assert.Empty(t, details.Refunds)
}

func TestSearchCustomersSendsTerm(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "dana", r.URL.Query().Get("search"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "name": "Dana Reyes"}]`))
	}))

	customers, err := gw.SearchCustomers(context.Background(), "dana")
	require.NoError(t, err)

	require.Len(t, customers, 1)
	assert.Equal(t, "Dana Reyes", customers[0].Name)
}
