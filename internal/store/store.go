// Package store holds the in-memory portfolio collections. Mutations are
// copy-on-write so that a snapshot handed to a reader is never altered by a
// later write.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/estateflow/estateflow/internal/models"
)

// Change event kinds published through the change hook.
const (
	ChangeLandlordCreated = "landlord.created"
	ChangePropertyCreated = "property.created"
	ChangeUnitCreated     = "unit.created"
	ChangeTenantCreated   = "tenant.created"
	ChangePaymentUpdated  = "payment.updated"
)

// Snapshot is a point-in-time copy of all collections, in insertion order.
type Snapshot struct {
	Landlords  []models.Landlord
	Properties []models.Property
	Units      []models.Unit
	Tenants    []models.Tenant
	Payments   []models.PaymentRecord
}

// Store owns the five entity collections for one process lifetime.
type Store struct {
	mu         sync.RWMutex
	landlords  []models.Landlord
	properties []models.Property
	units      []models.Unit
	tenants    []models.Tenant
	payments   []models.PaymentRecord

	newID    func() string
	now      func() time.Time
	onChange func(kind, id string)
}

// Option is a functional option for configuring the store.
type Option func(*Store)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithClock replaces the wall clock used to stamp paid dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithChangeHook registers a callback invoked after every mutation.
// The hook runs outside the store lock.
func WithChangeHook(hook func(kind, id string)) Option {
	return func(s *Store) { s.onChange = hook }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces all collections with the given snapshot. Used for seeding;
// does not fire the change hook.
func (s *Store) Load(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.landlords = append([]models.Landlord(nil), snap.Landlords...)
	s.properties = append([]models.Property(nil), snap.Properties...)
	s.units = append([]models.Unit(nil), snap.Units...)
	s.tenants = append([]models.Tenant(nil), snap.Tenants...)
	s.payments = append([]models.PaymentRecord(nil), snap.Payments...)
}

// Snapshot returns a copy of every collection. Callers may hold and iterate
// the result without further locking.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Landlords:  append([]models.Landlord(nil), s.landlords...),
		Properties: append([]models.Property(nil), s.properties...),
		Units:      append([]models.Unit(nil), s.units...),
		Tenants:    append([]models.Tenant(nil), s.tenants...),
		Payments:   append([]models.PaymentRecord(nil), s.payments...),
	}
}

// AddLandlord appends a landlord with a freshly assigned ID.
func (s *Store) AddLandlord(l models.Landlord) models.Landlord {
	s.mu.Lock()
	l.ID = s.newID()
	s.landlords = append(s.landlords, l)
	s.mu.Unlock()
	s.notify(ChangeLandlordCreated, l.ID)
	return l
}

// AddProperty appends a property with a freshly assigned ID.
func (s *Store) AddProperty(p models.Property) models.Property {
	s.mu.Lock()
	p.ID = s.newID()
	s.properties = append(s.properties, p)
	s.mu.Unlock()
	s.notify(ChangePropertyCreated, p.ID)
	return p
}

// AddUnit appends a unit with a freshly assigned ID.
func (s *Store) AddUnit(u models.Unit) models.Unit {
	s.mu.Lock()
	u.ID = s.newID()
	s.units = append(s.units, u)
	s.mu.Unlock()
	s.notify(ChangeUnitCreated, u.ID)
	return u
}

// AddTenant appends a tenant with a freshly assigned ID.
func (s *Store) AddTenant(t models.Tenant) models.Tenant {
	s.mu.Lock()
	t.ID = s.newID()
	s.tenants = append(s.tenants, t)
	s.mu.Unlock()
	s.notify(ChangeTenantCreated, t.ID)
	return t
}

// UpdatePaymentStatus replaces the matching payment record with a copy
// carrying the new status. A transition to PAID stamps the paid date from the
// store clock; any other status clears it. An unknown ID leaves the
// collection untouched and returns found=false.
func (s *Store) UpdatePaymentStatus(id string, status models.PaymentStatus) (models.PaymentRecord, bool) {
	s.mu.Lock()
	var updated models.PaymentRecord
	found := false
	for i, p := range s.payments {
		if p.ID != id {
			continue
		}
		p.Status = status
		if status == models.StatusPaid {
			paid := models.DateOf(s.now())
			p.PaidDate = &paid
		} else {
			p.PaidDate = nil
		}
		next := make([]models.PaymentRecord, len(s.payments))
		copy(next, s.payments)
		next[i] = p
		s.payments = next
		updated, found = p, true
		break
	}
	s.mu.Unlock()
	if found {
		s.notify(ChangePaymentUpdated, id)
	}
	return updated, found
}

func (s *Store) notify(kind, id string) {
	if s.onChange != nil {
		s.onChange(kind, id)
	}
}
