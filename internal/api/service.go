package api

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/estateflow/estateflow/internal/advisor"
	"github.com/estateflow/estateflow/internal/apperr"
	"github.com/estateflow/estateflow/internal/models"
	"github.com/estateflow/estateflow/internal/portfolio"
	"github.com/estateflow/estateflow/internal/store"
)

// AddressSearcher is the external address-lookup collaborator. The concrete
// widget lives outside this codebase; the service only needs a query-to-
// address function.
type AddressSearcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// Message is one entry in the transient assistant conversation log. The log
// lives for the process lifetime only and is never persisted into the domain
// collections.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Service coordinates the store, derived metrics, and the advisory
// collaborator for the API layer.
type Service struct {
	store   *store.Store
	advisor *advisor.Service
	address AddressSearcher
	now     func() time.Time

	msgMu    sync.Mutex
	messages []Message
}

// Option is a functional option for configuring the service.
type Option func(*Service)

// WithClock replaces the wall clock used for metrics and overdue-day math.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithAddressSearcher attaches the external address-lookup collaborator.
func WithAddressSearcher(a AddressSearcher) Option {
	return func(s *Service) { s.address = a }
}

// NewService creates a new API service.
func NewService(st *store.Store, adv *advisor.Service, opts ...Option) *Service {
	s := &Service{
		store:    st,
		advisor:  adv,
		now:      time.Now,
		messages: []Message{{Role: "assistant", Text: advisor.Greeting}},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Landlords returns all landlords in insertion order.
func (s *Service) Landlords(_ context.Context) []models.Landlord {
	return s.store.Snapshot().Landlords
}

// Properties returns all properties in insertion order.
func (s *Service) Properties(_ context.Context) []models.Property {
	return s.store.Snapshot().Properties
}

// Units returns all units in insertion order.
func (s *Service) Units(_ context.Context) []models.Unit {
	return s.store.Snapshot().Units
}

// Tenants returns all tenants in insertion order.
func (s *Service) Tenants(_ context.Context) []models.Tenant {
	return s.store.Snapshot().Tenants
}

// CreateLandlord appends a landlord. The store assigns the ID.
func (s *Service) CreateLandlord(_ context.Context, req CreateLandlordRequest) models.Landlord {
	return s.store.AddLandlord(models.Landlord{
		Name:               req.Name,
		Type:               req.Type,
		RegistrationNumber: req.RegistrationNumber,
		Phone:              req.Phone,
		Email:              req.Email,
		BankAccount:        req.BankAccount,
		Memo:               req.Memo,
	})
}

// CreateProperty appends a property after checking the landlord reference.
func (s *Service) CreateProperty(_ context.Context, req CreatePropertyRequest) (models.Property, error) {
	snap := s.store.Snapshot()
	if !landlordExists(snap.Landlords, req.LandlordID) {
		return models.Property{}, fmt.Errorf("landlord %s: %w", req.LandlordID, apperr.ErrNotFound)
	}
	return s.store.AddProperty(models.Property{
		LandlordID:  req.LandlordID,
		Name:        req.Name,
		Address:     req.Address,
		Type:        req.Type,
		TotalFloors: req.TotalFloors,
	}), nil
}

// CreateUnit appends a unit after checking the property reference.
func (s *Service) CreateUnit(_ context.Context, req CreateUnitRequest) (models.Unit, error) {
	snap := s.store.Snapshot()
	if !propertyExists(snap.Properties, req.PropertyID) {
		return models.Unit{}, fmt.Errorf("property %s: %w", req.PropertyID, apperr.ErrNotFound)
	}
	return s.store.AddUnit(models.Unit{
		PropertyID: req.PropertyID,
		Floor:      req.Floor,
		Name:       req.Name,
		Area:       req.Area,
		Memo:       req.Memo,
	}), nil
}

// CreateTenant appends a tenant after checking the unit reference. Whether
// the unit already has a tenant is deliberately not checked; vacancy
// filtering happens at lookup time.
func (s *Service) CreateTenant(_ context.Context, req CreateTenantRequest) (models.Tenant, error) {
	snap := s.store.Snapshot()
	if _, ok := portfolio.UnitByID(snap.Units, req.UnitID); !ok {
		return models.Tenant{}, fmt.Errorf("unit %s: %w", req.UnitID, apperr.ErrNotFound)
	}
	start, err := models.ParseDate(req.LeaseStartDate)
	if err != nil {
		return models.Tenant{}, fmt.Errorf("%w: %v", apperr.ErrInvalid, err)
	}
	end, err := models.ParseDate(req.LeaseEndDate)
	if err != nil {
		return models.Tenant{}, fmt.Errorf("%w: %v", apperr.ErrInvalid, err)
	}
	return s.store.AddTenant(models.Tenant{
		UnitID:             req.UnitID,
		Name:               req.Name,
		Type:               req.Type,
		RegistrationNumber: req.RegistrationNumber,
		Phone:              req.Phone,
		Email:              req.Email,
		Deposit:            req.Deposit,
		RentAmount:         req.RentAmount,
		MaintenanceAmount:  req.MaintenanceAmount,
		LeaseStartDate:     start,
		LeaseEndDate:       end,
		Memo:               req.Memo,
	}), nil
}

// PropertyUnits returns the property's units, floor descending then name
// ascending.
func (s *Service) PropertyUnits(_ context.Context, propertyID string) ([]models.Unit, error) {
	snap := s.store.Snapshot()
	if !propertyExists(snap.Properties, propertyID) {
		return nil, fmt.Errorf("property %s: %w", propertyID, apperr.ErrNotFound)
	}
	return portfolio.UnitsForProperty(snap.Units, propertyID), nil
}

// PropertyVacancies returns the property's units with no tenant.
func (s *Service) PropertyVacancies(_ context.Context, propertyID string) ([]models.Unit, error) {
	snap := s.store.Snapshot()
	if !propertyExists(snap.Properties, propertyID) {
		return nil, fmt.Errorf("property %s: %w", propertyID, apperr.ErrNotFound)
	}
	return portfolio.VacantUnitsForProperty(snap.Units, snap.Tenants, propertyID), nil
}

// PaymentView is a payment record with its chain resolved to display names.
// Names stay empty when a reference dangles.
type PaymentView struct {
	models.PaymentRecord
	TenantName   string `json:"tenantName,omitempty"`
	UnitName     string `json:"unitName,omitempty"`
	PropertyName string `json:"propertyName,omitempty"`
}

// Payments returns all payment records with resolved display names.
func (s *Service) Payments(_ context.Context) []PaymentView {
	snap := s.store.Snapshot()
	out := make([]PaymentView, len(snap.Payments))
	for i, p := range snap.Payments {
		chain := portfolio.ChainForPayment(snap, p)
		view := PaymentView{PaymentRecord: p}
		if chain.Tenant != nil {
			view.TenantName = chain.Tenant.Name
		}
		if chain.Unit != nil {
			view.UnitName = chain.Unit.Name
		}
		if chain.Property != nil {
			view.PropertyName = chain.Property.Name
		}
		out[i] = view
	}
	return out
}

// UpdatePaymentStatus transitions a payment record's status. The store-level
// silent no-op on unknown IDs is surfaced here as a not-found error.
func (s *Service) UpdatePaymentStatus(_ context.Context, paymentID string, status models.PaymentStatus) (models.PaymentRecord, error) {
	updated, found := s.store.UpdatePaymentStatus(paymentID, status)
	if !found {
		return models.PaymentRecord{}, fmt.Errorf("payment %s: %w", paymentID, apperr.ErrNotFound)
	}
	return updated, nil
}

// OverdueItem is one entry in the dashboard's overdue panel.
type OverdueItem struct {
	PaymentID    string      `json:"paymentId"`
	TenantName   string      `json:"tenantName,omitempty"`
	UnitName     string      `json:"unitName,omitempty"`
	PropertyName string      `json:"propertyName,omitempty"`
	Amount       int64       `json:"amount"`
	DueDate      models.Date `json:"dueDate"`
}

// DashboardResponse bundles derived stats with the recent overdue list.
type DashboardResponse struct {
	Stats         portfolio.Stats `json:"stats"`
	RecentOverdue []OverdueItem   `json:"recentOverdue"`
}

// Dashboard recomputes all dashboard aggregates from the current snapshot.
func (s *Service) Dashboard(_ context.Context) DashboardResponse {
	snap := s.store.Snapshot()
	today := models.DateOf(s.now())

	chains := portfolio.RecentOverdue(snap, 5)
	items := make([]OverdueItem, len(chains))
	for i, c := range chains {
		item := OverdueItem{
			PaymentID: c.Payment.ID,
			Amount:    c.Payment.Amount,
			DueDate:   c.Payment.Date,
		}
		if c.Tenant != nil {
			item.TenantName = c.Tenant.Name
		}
		if c.Unit != nil {
			item.UnitName = c.Unit.Name
		}
		if c.Property != nil {
			item.PropertyName = c.Property.Name
		}
		items[i] = item
	}

	return DashboardResponse{
		Stats:         portfolio.ComputeStats(snap, today),
		RecentOverdue: items,
	}
}

// Chat forwards a free-text prompt to the advisor together with a snapshot
// context summary, appending both sides to the transient message log.
func (s *Service) Chat(ctx context.Context, prompt string) Message {
	snap := s.store.Snapshot()
	s.appendMessage(Message{Role: "user", Text: prompt})
	reply := Message{
		Role: "assistant",
		Text: s.advisor.GenerateAdvice(ctx, prompt, portfolio.ContextSummary(snap)),
	}
	s.appendMessage(reply)
	return reply
}

// Messages returns a copy of the transient conversation log.
func (s *Service) Messages(_ context.Context) []Message {
	s.msgMu.Lock()
	defer s.msgMu.Unlock()
	return append([]Message(nil), s.messages...)
}

// DraftNotice asks the advisor for an overdue-payment notice for the given
// payment, resolving tenant and unit names from the chain.
func (s *Service) DraftNotice(ctx context.Context, paymentID string) (Message, error) {
	snap := s.store.Snapshot()

	var payment *models.PaymentRecord
	for i := range snap.Payments {
		if snap.Payments[i].ID == paymentID {
			payment = &snap.Payments[i]
			break
		}
	}
	if payment == nil {
		return Message{}, fmt.Errorf("payment %s: %w", paymentID, apperr.ErrNotFound)
	}

	chain := portfolio.ChainForPayment(snap, *payment)
	if chain.Tenant == nil {
		return Message{}, fmt.Errorf("tenant %s: %w", payment.TenantID, apperr.ErrNotFound)
	}
	unitName := ""
	if chain.Unit != nil {
		unitName = chain.Unit.Name
	}

	s.appendMessage(Message{
		Role: "user",
		Text: fmt.Sprintf("%s (%s)님 미납 안내 문자 작성해줘", chain.Tenant.Name, unitName),
	})

	days := models.DateOf(s.now()).DaysSince(payment.Date)
	reply := Message{
		Role: "assistant",
		Text: s.advisor.DraftNotice(ctx, chain.Tenant.Name, payment.Amount, payment.Type, days),
	}
	s.appendMessage(reply)
	return reply, nil
}

// SearchAddress delegates to the external address-lookup collaborator.
func (s *Service) SearchAddress(ctx context.Context, query string) (string, error) {
	if s.address == nil {
		return "", fmt.Errorf("address search: %w", apperr.ErrUnavailable)
	}
	return s.address.Search(ctx, query)
}

func (s *Service) appendMessage(m Message) {
	s.msgMu.Lock()
	s.messages = append(s.messages, m)
	s.msgMu.Unlock()
}

func landlordExists(landlords []models.Landlord, id string) bool {
	for _, l := range landlords {
		if l.ID == id {
			return true
		}
	}
	return false
}

func propertyExists(properties []models.Property, id string) bool {
	for _, p := range properties {
		if p.ID == id {
			return true
		}
	}
	return false
}
