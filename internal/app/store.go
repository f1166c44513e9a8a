// Package app holds the domain state store and its business logic.
//
// The Store is the single authoritative in-memory snapshot of all
// entities loaded for the current session. Its operations are the only
// sanctioned way to mutate the snapshot: each one calls the remote
// gateway first and applies the in-memory update only on success, so a
// failed operation leaves the snapshot untouched.
package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"rentdesk/internal/domain"
)

// Gateways bundles the transport ports the store depends on.
type Gateways struct {
	Properties    domain.PropertyGateway
	Tenants       domain.TenantGateway
	Contracts     domain.ContractGateway
	PropertyTypes domain.PropertyTypeGateway
	Users         domain.UserGateway
	Session       domain.SessionGateway
}

// Store coordinates the in-memory snapshot with the remote gateways.
//
// The mutex guards snapshot reads and writes only; it is never held
// across a gateway call. Invariant checks and mutations are therefore
// atomic within one operation, but two operations overlapping across
// the network suspension can still interleave. Callers are expected to
// serialize operations on the same entity.
type Store struct {
	mu            sync.Mutex
	properties    []domain.Property
	tenants       []domain.Tenant
	contracts     []domain.Contract
	propertyTypes []domain.PropertyType
	users         []domain.User
	session       *domain.Session
	pending       []Reconciliation

	gw       Gateways
	notifier Notifier
	now      func() time.Time
}

// New creates a Store wired to the given gateways and notifier.
func New(gw Gateways, n Notifier) *Store {
	if n == nil {
		n = NopNotifier{}
	}
	return &Store{gw: gw, notifier: n, now: time.Now}
}

// SetClock overrides the store's time source.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Properties returns a copy of the loaded properties.
func (s *Store) Properties() []domain.Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Property, len(s.properties))
	copy(out, s.properties)
	return out
}

// Tenants returns a copy of the loaded tenants.
func (s *Store) Tenants() []domain.Tenant {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Tenant, len(s.tenants))
	copy(out, s.tenants)
	return out
}

// Contracts returns a copy of the loaded contracts.
func (s *Store) Contracts() []domain.Contract {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Contract, len(s.contracts))
	copy(out, s.contracts)
	return out
}

// PropertyTypes returns a copy of the loaded property types.
func (s *Store) PropertyTypes() []domain.PropertyType {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.PropertyType, len(s.propertyTypes))
	copy(out, s.propertyTypes)
	return out
}

// Users returns a copy of the loaded users. Empty unless the session
// user is an admin.
func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

// Session returns the current session, or nil when unauthenticated.
func (s *Store) Session() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	cp := *s.session
	return &cp
}

// fail surfaces err through the notifier, preferring the error's own
// message over the per-operation fallback, and returns it unchanged.
func (s *Store) fail(err error, fallback string) error {
	s.notifier.Error(domain.UserMessage(err, fallback))
	return err
}

// setPropertyStatus performs the dependent mutation that keeps a
// property's status in sync with its contract. It is not atomic with
// the primary write that triggered it: on failure the divergence is
// queued for reconciliation and surfaced as a warning, and the primary
// result stands.
func (s *Store) setPropertyStatus(ctx context.Context, propertyID string, status domain.PropertyStatus) {
	updated, err := s.gw.Properties.Update(ctx, propertyID, domain.PropertyPatch{Status: &status})
	if err != nil {
		s.queueReconciliation(propertyID, status)
		s.notifier.Warning("property status could not be updated; queued for reconciliation")
		return
	}
	s.mu.Lock()
	s.replaceProperty(*updated)
	s.mu.Unlock()
}

// replaceProperty swaps the snapshot entry matching p.ID. Callers hold
// the mutex.
func (s *Store) replaceProperty(p domain.Property) {
	for i := range s.properties {
		if s.properties[i].ID == p.ID {
			s.properties[i] = p
			return
		}
	}
}

func (s *Store) findProperty(id string) (domain.Property, bool) {
	for _, p := range s.properties {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Property{}, false
}

func (s *Store) findContract(id string) (domain.Contract, bool) {
	for _, c := range s.contracts {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Contract{}, false
}

// occupyingContractFor reports whether any contract referencing the
// given property or tenant id is Active or Pending. Callers hold the
// mutex.
func (s *Store) occupyingContractFor(propertyID, tenantID string) bool {
	for _, c := range s.contracts {
		if !c.Status.Occupying() {
			continue
		}
		if propertyID != "" && c.PropertyID == propertyID {
			return true
		}
		if tenantID != "" && c.TenantID == tenantID {
			return true
		}
	}
	return false
}

// joinErrs folds a list of errors into one, nil when empty.
func joinErrs(errs []error) error {
	return errors.Join(errs...)
}
