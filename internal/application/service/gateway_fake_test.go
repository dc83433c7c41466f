package service

import (
	"context"

	"github.com/georgekarlr/beauty-salon-sub000/internal/domain/entity"
	"github.com/georgekarlr/beauty-salon-sub000/internal/domain/gateway"
)

// fakeGateway is an in-memory CommerceGateway for tests. Unset hooks
// succeed with empty results.
type fakeGateway struct {
	searchCustomers  func(term string) ([]entity.Customer, error)
	listAppointments func(q gateway.AppointmentQuery) ([]entity.Appointment, error)
	listCatalog      func() (*gateway.Catalog, error)
	submitSale       func(req *gateway.SaleRequest) (*gateway.SaleResult, error)
	submitRefund     func(req *gateway.RefundRequest) (*gateway.RefundResult, error)
	listSalesHistory func(q gateway.HistoryQuery) ([]entity.SaleSummary, error)
	getSaleDetails   func(saleID int64) (*entity.SaleDetails, error)
}

func (f *fakeGateway) SearchCustomers(_ context.Context, term string) ([]entity.Customer, error) {
	if f.searchCustomers == nil {
		return []entity.Customer{}, nil
	}
	return f.searchCustomers(term)
}

func (f *fakeGateway) ListAppointments(_ context.Context, q gateway.AppointmentQuery) ([]entity.Appointment, error) {
	if f.listAppointments == nil {
		return []entity.Appointment{}, nil
	}
	return f.listAppointments(q)
}

func (f *fakeGateway) ListCatalog(_ context.Context) (*gateway.Catalog, error) {
	if f.listCatalog == nil {
		return &gateway.Catalog{}, nil
	}
	return f.listCatalog()
}

func (f *fakeGateway) SubmitSale(_ context.Context, req *gateway.SaleRequest) (*gateway.SaleResult, error) {
	if f.submitSale == nil {
		return &gateway.SaleResult{SaleID: 1}, nil
	}
	return f.submitSale(req)
}

func (f *fakeGateway) SubmitRefund(_ context.Context, req *gateway.RefundRequest) (*gateway.RefundResult, error) {
	if f.submitRefund == nil {
		return &gateway.RefundResult{RefundID: 1}, nil
	}
	return f.submitRefund(req)
}

func (f *fakeGateway) ListSalesHistory(_ context.Context, q gateway.HistoryQuery) ([]entity.SaleSummary, error) {
	if f.listSalesHistory == nil {
		return []entity.SaleSummary{}, nil
	}
	return f.listSalesHistory(q)
}

func (f *fakeGateway) GetSaleDetails(_ context.Context, saleID int64) (*entity.SaleDetails, error) {
	if f.getSaleDetails == nil {
		return &entity.SaleDetails{}, nil
	}
	return f.getSaleDetails(saleID)
}

var _ gateway.CommerceGateway = (*fakeGateway)(nil)
