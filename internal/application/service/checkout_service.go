package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/georgekarlr/beauty-salon-sub000/internal/domain/entity"
	"github.com/georgekarlr/beauty-salon-sub000/internal/domain/enum"
	"github.com/georgekarlr/beauty-salon-sub000/internal/domain/gateway"
	"github.com/georgekarlr/beauty-salon-sub000/pkg/apperror"
	"github.com/georgekarlr/beauty-salon-sub000/pkg/money"
)

// checkoutSession is one live checkout workflow instance. The session is
// logically single-threaded; the mutex serializes concurrent HTTP calls
// hitting the same session.
type checkoutSession struct {
	mu sync.Mutex

	id        uuid.UUID
	accountID string

	step        enum.CheckoutStep
	customer    *entity.Customer
	appointment *entity.Appointment
	cart        []entity.CartLine

	taxRatePercent float64
	tipAmount      float64
	paymentMethod  enum.PaymentMethod
	amountTendered *float64

	result *entity.CommitResult

	// re-entrancy guard for commit
	processing bool
	// last user-visible failure, cleared on the next successful action
	errMsg string

	catalog         *gateway.Catalog
	customerMatches []entity.Customer
	appointments    []entity.Appointment

	// generation counters; a response is discarded when the triggering
	// state changed while the call was in flight
	searchGen      uint64
	appointmentGen uint64
	commitGen      uint64
}

// CheckoutView is the serializable snapshot of a session. Totals and the
// payment assessment are derived on every snapshot, never stored.
type CheckoutView struct {
	ID              uuid.UUID                `json:"id"`
	Step            enum.CheckoutStep        `json:"step"`
	Customer        *entity.Customer         `json:"customer,omitempty"`
	Appointment     *entity.Appointment      `json:"appointment,omitempty"`
	Cart            []entity.CartLine        `json:"cart"`
	TaxRatePercent  float64                  `json:"tax_rate_percent"`
	TipAmount       float64                  `json:"tip_amount"`
	PaymentMethod   enum.PaymentMethod       `json:"payment_method"`
	AmountTendered  *float64                 `json:"amount_tendered,omitempty"`
	Totals          entity.Totals            `json:"totals"`
	Payment         entity.PaymentAssessment `json:"payment"`
	Result          *entity.CommitResult     `json:"result,omitempty"`
	Error           string                   `json:"error,omitempty"`
	CustomerMatches []entity.Customer        `json:"customer_matches"`
	Appointments    []entity.Appointment     `json:"appointments"`
	Catalog         *gateway.Catalog         `json:"catalog,omitempty"`
}

// PaymentInput carries the payment-step fields a caller wants to change.
// Nil fields are left untouched.
type PaymentInput struct {
	Method         *enum.PaymentMethod
	TaxRatePercent *float64
	TipAmount      *float64
	AmountTendered *float64
}

// CheckoutService owns all live checkout sessions and drives the wizard
// state machine over the commerce gateway
type CheckoutService struct {
	gateway        gateway.CommerceGateway
	logger         *zap.Logger
	defaultTaxRate float64

	mu       sync.RWMutex
	sessions map[uuid.UUID]*checkoutSession
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(gw gateway.CommerceGateway, logger *zap.Logger, defaultTaxRate float64) *CheckoutService {
	return &CheckoutService{
		gateway:        gw,
		logger:         logger,
		defaultTaxRate: defaultTaxRate,
		sessions:       make(map[uuid.UUID]*checkoutSession),
	}
}

// canAdvance is the wizard guard table. A false result makes the advance a
// no-op, never an error.
func canAdvance(s *checkoutSession) bool {
	switch s.step {
	case enum.StepCustomer:
		return s.customer != nil
	case enum.StepItems:
		return len(s.cart) > 0
	default:
		// step 3 only advances through commit; step 4 is terminal
		return false
	}
}

func (s *checkoutSession) snapshot() *CheckoutView {
	totals := entity.ComputeTotals(s.cart, s.taxRatePercent, s.tipAmount)
	cart := make([]entity.CartLine, len(s.cart))
	copy(cart, s.cart)
	return &CheckoutView{
		ID:              s.id,
		Step:            s.step,
		Customer:        s.customer,
		Appointment:     s.appointment,
		Cart:            cart,
		TaxRatePercent:  s.taxRatePercent,
		TipAmount:       s.tipAmount,
		PaymentMethod:   s.paymentMethod,
		AmountTendered:  s.amountTendered,
		Totals:          totals,
		Payment:         entity.AssessPayment(totals.Total, s.amountTendered),
		Result:          s.result,
		Error:           s.errMsg,
		CustomerMatches: s.customerMatches,
		Appointments:    s.appointments,
		Catalog:         s.catalog,
	}
}

// clear resets every local field back to a fresh step-1 session
func (s *checkoutSession) clear(defaultTaxRate float64) {
	s.step = enum.StepCustomer
	s.customer = nil
	s.appointment = nil
	s.cart = nil
	s.taxRatePercent = defaultTaxRate
	s.tipAmount = 0
	s.paymentMethod = enum.PaymentCash
	s.amountTendered = nil
	s.result = nil
	s.processing = false
	s.errMsg = ""
	s.customerMatches = nil
	s.appointments = nil
	s.searchGen++
	s.appointmentGen++
	s.commitGen++
}

func (svc *CheckoutService) session(id uuid.UUID) (*checkoutSession, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	s, ok := svc.sessions[id]
	if !ok {
		return nil, apperror.NewNotFoundError("Checkout session")
	}
	return s, nil
}

// Create opens a new checkout session for an account and preloads the
// catalog. A preload failure does not fail creation; the message is kept on
// the session for the caller to render.
func (svc *CheckoutService) Create(ctx context.Context, accountID string) *CheckoutView {
	s := &checkoutSession{
		id:        uuid.New(),
		accountID: accountID,
	}
	s.clear(svc.defaultTaxRate)

	catalog, err := svc.gateway.ListCatalog(ctx)
	if err != nil {
		s.errMsg = err.Error()
	} else {
		s.catalog = catalog
	}

	svc.mu.Lock()
	svc.sessions[s.id] = s
	svc.mu.Unlock()

	svc.logger.Info("checkout session created",
		zap.String("session_id", s.id.String()),
		zap.String("account_id", accountID),
	)
	return s.snapshot()
}

// Get returns the current snapshot of a session
func (svc *CheckoutService) Get(id uuid.UUID) (*CheckoutView, error) {
	s, err := svc.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), nil
}

// Discard removes a session entirely
func (svc *CheckoutService) Discard(id uuid.UUID) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	if _, ok := svc.sessions[id]; !ok {
		return apperror.NewNotFoundError("Checkout session")
	}
	delete(svc.sessions, id)
	return nil
}

// Reset returns a session to step 1 with all local state cleared. Allowed
// from any step, including the terminal result step.
func (svc *CheckoutService) Reset(id uuid.UUID) (*CheckoutView, error) {
	s, err := svc.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clear(svc.defaultTaxRate)
	return s.snapshot(), nil
}

// ReloadCatalog retries the catalog preload. On failure the previous
// catalog is kept.
func (svc *CheckoutService) ReloadCatalog(ctx context.Context, id uuid.UUID) (*CheckoutView, error) {
	s, err := svc.session(id)
	if err != nil {
		return nil, err
	}
	catalog, gwErr := svc.gateway.ListCatalog(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gwErr != nil {
		s.errMsg = gwErr.Error()
	} else {
		s.catalog = catalog
		s.errMsg = ""
	}
	return s.snapshot(), nil
}

// SearchCustomers looks up customers by free text. A response that arrives
// after another search started is discarded; a failure keeps the previous
// matches; an explicit empty result clears them.
func (svc *CheckoutService) SearchCustomers(ctx context.Context, id uuid.UUID, term string) (*CheckoutView, error) {
	s, err := svc.session(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.searchGen++
	gen := s.searchGen
	s.mu.Unlock()

	matches, gwErr := svc.gateway.SearchCustomers(ctx, term)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.searchGen {
		// a newer search superseded this one
		return s.snapshot(), nil
	}
	if gwErr != nil {
		s.errMsg = gwErr.Error()
		return s.snapshot(), nil
	}
	s.errMsg = ""
	s.customerMatches = matches
	if matches == nil {
		s.customerMatches = []entity.Customer{}
	}
	return s.snapshot(), nil
}

// SelectCustomer replaces the selected customer, drops any previously
// linked appointment and looks up the customer's same-day appointments in
// linkable states.
func (svc *CheckoutService) SelectCustomer(ctx context.Context, id uuid.UUID, customer entity.Customer) (*CheckoutView, error) {
	s, err := svc.session(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	c := customer
	s.customer = &c
	s.appointment = nil
	s.appointments = nil
	s.appointmentGen++
	gen := s.appointmentGen
	s.mu.Unlock()

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	all, gwErr := svc.gateway.ListAppointments(ctx, gateway.AppointmentQuery{
		Start:      dayStart,
		End:        dayStart.Add(24 * time.Hour),
		CustomerID: &customer.ID,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.appointmentGen {
		// the customer changed again while this lookup was in flight
		return s.snapshot(), nil
	}
	if gwErr != nil {
		s.errMsg = gwErr.Error()
		return s.snapshot(), nil
	}
	s.errMsg = ""
	linkable := make([]entity.Appointment, 0, len(all))
	for _, appt := range all {
		if appt.Status.Linkable() {
			linkable = append(linkable, appt)
		}
	}
	s.appointments = linkable
	return s.snapshot(), nil
}

// SelectAppointment links one of the offered appointments to the checkout.
// The appointment must belong to the selected customer.
func (svc *CheckoutService) SelectAppointment(id uuid.UUID, appointmentID int64) (*CheckoutView, error) {
	s, err := svc.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.customer == nil {
		return nil, apperror.NewValidationError("No customer selected")
	}
	for i := range s.appointments {
		appt := s.appointments[i]
		if appt.ID == appointmentID && appt.CustomerID == s.customer.ID {
			s.appointment = &appt
			return s.snapshot(), nil
		}
	}
	return nil, apperror.NewValidationError("Appointment is not available for this customer")
}

// AddItem puts a catalog item into the cart. An existing (id, kind) line
// has its quantity incremented by exactly one; otherwise a new line is
// appended with quantity one.
func (svc *CheckoutService) AddItem(id uuid.UUID, kind enum.ItemKind, itemID int64) (*CheckoutView, error) {
	s, err := svc.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != enum.StepItems {
		return nil, apperror.NewValidationError("Items can only be changed during item selection")
	}

	name, price, ok := s.catalogItem(kind, itemID)
	if !ok {
		return nil, apperror.NewNotFoundError("Catalog item")
	}

	for i := range s.cart {
		if s.cart[i].ID == itemID && s.cart[i].Kind == kind {
			s.cart[i].Quantity++
			return s.snapshot(), nil
		}
	}
	s.cart = append(s.cart, entity.CartLine{
		ID:        itemID,
		Name:      name,
		UnitPrice: price,
		Quantity:  1,
		Kind:      kind,
	})
	return s.snapshot(), nil
}

// UpdateQuantity sets a cart line's quantity, clamped to a minimum of one.
// Removal is a separate explicit operation.
func (svc *CheckoutService) UpdateQuantity(id uuid.UUID, kind enum.ItemKind, itemID int64, qty int) (*CheckoutView, error) {
	s, err := svc.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != enum.StepItems {
		return nil, apperror.NewValidationError("Items can only be changed during item selection")
	}
	if qty < 1 {
		qty = 1
	}
	for i := range s.cart {
		if s.cart[i].ID == itemID && s.cart[i].Kind == kind {
			s.cart[i].Quantity = qty
			return s.snapshot(), nil
		}
	}
	return nil, apperror.NewNotFoundError("Cart line")
}

// RemoveItem deletes the matching cart line, keeping the insertion order of
// the remaining lines.
func (svc *CheckoutService) RemoveItem(id uuid.UUID, kind enum.ItemKind, itemID int64) (*CheckoutView, error) {
	s, err := svc.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != enum.StepItems {
		return nil, apperror.NewValidationError("Items can only be changed during item selection")
	}
	for i := range s.cart {
		if s.cart[i].ID == itemID && s.cart[i].Kind == kind {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return s.snapshot(), nil
		}
	}
	return nil, apperror.NewNotFoundError("Cart line")
}

// Advance moves the wizard forward when the current step's guard is met.
// A failed guard leaves the step unchanged.
func (svc *CheckoutService) Advance(id uuid.UUID) (*CheckoutView, error) {
	s, err := svc.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if canAdvance(s) {
		s.step++
		s.errMsg = ""
	}
	return s.snapshot(), nil
}

// Back moves the wizard one step back. Permitted from the item and payment
// steps only; the result step is terminal until an explicit reset.
func (svc *CheckoutService) Back(id uuid.UUID) (*CheckoutView, error) {
	s, err := svc.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step == enum.StepItems || s.step == enum.StepPayment {
		s.step--
	}
	return s.snapshot(), nil
}

// SetPayment applies payment-step inputs. Switching to card fills the
// tendered amount with the exact total; switching to cash leaves it as a
// free-entry field.
func (svc *CheckoutService) SetPayment(id uuid.UUID, input PaymentInput) (*CheckoutView, error) {
	s, err := svc.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != enum.StepPayment {
		return nil, apperror.NewValidationError("Payment can only be changed on the payment step")
	}
	if input.TaxRatePercent != nil {
		s.taxRatePercent = *input.TaxRatePercent
	}
	if input.TipAmount != nil {
		s.tipAmount = *input.TipAmount
	}
	if input.AmountTendered != nil {
		tendered := *input.AmountTendered
		s.amountTendered = &tendered
	}
	if input.Method != nil {
		if !input.Method.IsValid() {
			return nil, apperror.NewValidationError("Unknown payment method")
		}
		s.paymentMethod = *input.Method
		if s.paymentMethod == enum.PaymentCard {
			// card payments are assumed exact
			totals := entity.ComputeTotals(s.cart, s.taxRatePercent, s.tipAmount)
			total := totals.Total
			s.amountTendered = &total
		}
	}
	return s.snapshot(), nil
}

// CashSuggestions returns the quick cash amounts for the session's current
// total.
func (svc *CheckoutService) CashSuggestions(id uuid.UUID) ([]float64, error) {
	s, err := svc.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	totals := entity.ComputeTotals(s.cart, s.taxRatePercent, s.tipAmount)
	return money.QuickCashAmounts(totals.Total), nil
}

// Commit submits the sale to the commerce gateway. It is the only
// transition into the result step. On failure the session stays on the
// payment step with cart and totals untouched so the caller can retry.
func (svc *CheckoutService) Commit(ctx context.Context, id uuid.UUID) (*CheckoutView, error) {
	s, err := svc.session(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.step != enum.StepPayment {
		s.mu.Unlock()
		return nil, apperror.NewValidationError("Checkout is not on the payment step")
	}
	if len(s.cart) == 0 {
		s.mu.Unlock()
		return nil, apperror.NewValidationError("Cart is empty")
	}
	if s.processing {
		s.mu.Unlock()
		return nil, apperror.NewValidationError("A sale is already being submitted")
	}
	s.processing = true
	gen := s.commitGen
	req := s.buildSaleRequest()
	s.mu.Unlock()

	result, gwErr := svc.gateway.SubmitSale(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.commitGen {
		// the session was reset while the sale was in flight; the store
		// already owns the outcome either way
		return s.snapshot(), nil
	}
	s.processing = false
	if gwErr != nil {
		s.errMsg = gwErr.Error()
		svc.logger.Warn("sale commit failed",
			zap.String("session_id", s.id.String()),
			zap.Error(gwErr),
		)
		return s.snapshot(), nil
	}
	s.errMsg = ""
	s.result = &entity.CommitResult{
		SaleID:      result.SaleID,
		TotalAmount: result.TotalAmount,
		ChangeDue:   result.ChangeDue,
		SaleDate:    result.SaleDate,
	}
	s.step = enum.StepResult
	svc.logger.Info("sale committed",
		zap.String("session_id", s.id.String()),
		zap.Int64("sale_id", result.SaleID),
	)
	return s.snapshot(), nil
}

// buildSaleRequest serializes the session into the gateway's sale payload.
// Caller holds the session lock.
func (s *checkoutSession) buildSaleRequest() *gateway.SaleRequest {
	totals := entity.ComputeTotals(s.cart, s.taxRatePercent, s.tipAmount)
	req := &gateway.SaleRequest{
		AccountID:      s.accountID,
		Subtotal:       totals.Subtotal,
		TaxAmount:      totals.TaxAmount,
		TipAmount:      totals.TipAmount,
		TotalAmount:    totals.Total,
		AmountTendered: s.amountTendered,
		PaymentMethod:  s.paymentMethod,
		ServiceItems:   []gateway.SaleItemLine{},
		ProductItems:   []gateway.SaleItemLine{},
	}
	if s.customer != nil {
		req.CustomerID = &s.customer.ID
	}
	if s.appointment != nil {
		req.AppointmentID = &s.appointment.ID
	}
	for _, line := range s.cart {
		item := gateway.SaleItemLine{
			ID:          line.ID,
			Quantity:    line.Quantity,
			Price:       line.UnitPrice,
			TotalAmount: line.Total(),
		}
		if line.Kind == enum.KindService {
			req.ServiceItems = append(req.ServiceItems, item)
		} else {
			req.ProductItems = append(req.ProductItems, item)
		}
	}
	return req
}

// catalogItem resolves an item's display name and unit price from the last
// loaded catalog. Caller holds the session lock.
func (s *checkoutSession) catalogItem(kind enum.ItemKind, itemID int64) (string, float64, bool) {
	if s.catalog == nil {
		return "", 0, false
	}
	if kind == enum.KindService {
		for _, svc := range s.catalog.Services {
			if svc.ID == itemID {
				return svc.Name, svc.Price, true
			}
		}
		return "", 0, false
	}
	for _, p := range s.catalog.Products {
		if p.ID == itemID {
			return p.Name, p.Price, true
		}
	}
	return "", 0, false
}
