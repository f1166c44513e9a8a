// Package memory implements an in-memory backend for development and
// testing. It stands in for the remote REST service: it implements
// every gateway port directly and also backs the stub API server.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"rentdesk/internal/domain"

	"github.com/google/uuid"
)

// Backend is an in-memory stand-in for the backing service.
type Backend struct {
	mu            sync.Mutex
	properties    []domain.Property
	tenants       []domain.Tenant
	contracts     []domain.Contract
	propertyTypes []domain.PropertyType
	accounts      []account
	sessions      map[string]string // token -> user id
	currentToken  string

	now func() time.Time
}

type account struct {
	user         domain.User
	passwordHash string
}

// New creates an empty in-memory backend.
func New() *Backend {
	return &Backend{
		sessions: make(map[string]string),
		now:      time.Now,
	}
}

// SetClock overrides the backend's time source.
func (b *Backend) SetClock(now func() time.Time) {
	b.now = now
}

// Ensure the gateway ports are met.
var _ domain.PropertyGateway = (*Backend)(nil)
var _ domain.TenantGateway = (*TenantGateway)(nil)
var _ domain.ContractGateway = (*ContractGateway)(nil)
var _ domain.PropertyTypeGateway = (*PropertyTypeGateway)(nil)
var _ domain.UserGateway = (*UserGateway)(nil)
var _ domain.SessionGateway = (*SessionGateway)(nil)

func newID() string {
	return uuid.NewString()
}

// --- PropertyGateway ---
// The Backend itself carries the property port; the other entities hang
// off it as small wrapper types, since their method sets would otherwise
// collide.

// List returns all properties.
func (b *Backend) List(ctx context.Context) ([]domain.Property, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Property, len(b.properties))
	copy(out, b.properties)
	return out, nil
}

// Get returns a property by id.
func (b *Backend) Get(ctx context.Context, id string) (*domain.Property, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, p := range b.properties {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.NotFoundf("property not found")
}

// Create stores a new property.
func (b *Backend) Create(ctx context.Context, in domain.PropertyInput) (*domain.Property, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p := domain.Property{
		ID:        newID(),
		Title:     in.Title,
		Address:   in.Address,
		Type:      in.Type,
		Status:    in.Status,
		Size:      in.Size,
		Bedrooms:  in.Bedrooms,
		Bathrooms: in.Bathrooms,
		Notes:     in.Notes,
		CreatedAt: b.now().UTC(),
	}
	if p.Status == "" {
		p.Status = domain.PropertyAvailable
	}
	b.properties = append(b.properties, p)
	return &p, nil
}

// Update applies a patch to a property.
func (b *Backend) Update(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.properties {
		if b.properties[i].ID != id {
			continue
		}
		p := &b.properties[i]
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Address != nil {
			p.Address = *patch.Address
		}
		if patch.Type != nil {
			p.Type = *patch.Type
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.Size != nil {
			p.Size = patch.Size
		}
		if patch.Bedrooms != nil {
			p.Bedrooms = patch.Bedrooms
		}
		if patch.Bathrooms != nil {
			p.Bathrooms = patch.Bathrooms
		}
		if patch.Notes != nil {
			p.Notes = *patch.Notes
		}
		cp := *p
		return &cp, nil
	}
	return nil, domain.NotFoundf("property not found")
}

// Delete removes a property.
func (b *Backend) Delete(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.properties {
		if b.properties[i].ID == id {
			b.properties = append(b.properties[:i], b.properties[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundf("property not found")
}

// --- TenantGateway ---

// TenantGateway exposes tenant records on the backend.
type TenantGateway struct{ b *Backend }

// Tenants returns the tenant gateway.
func (b *Backend) Tenants() *TenantGateway { return &TenantGateway{b: b} }

// List returns all tenants.
func (g *TenantGateway) List(ctx context.Context) ([]domain.Tenant, error) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	out := make([]domain.Tenant, len(g.b.tenants))
	copy(out, g.b.tenants)
	return out, nil
}

// Get returns a tenant by id.
func (g *TenantGateway) Get(ctx context.Context, id string) (*domain.Tenant, error) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	for _, t := range g.b.tenants {
		if t.ID == id {
			cp := t
			return &cp, nil
		}
	}
	return nil, domain.NotFoundf("tenant not found")
}

// Create stores a new tenant.
func (g *TenantGateway) Create(ctx context.Context, in domain.TenantInput) (*domain.Tenant, error) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	t := domain.Tenant{
		ID:        newID(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Document:  in.Document,
		Notes:     in.Notes,
		CreatedAt: g.b.now().UTC(),
	}
	g.b.tenants = append(g.b.tenants, t)
	return &t, nil
}

// Update applies a patch to a tenant.
func (g *TenantGateway) Update(ctx context.Context, id string, patch domain.TenantPatch) (*domain.Tenant, error) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	for i := range g.b.tenants {
		if g.b.tenants[i].ID != id {
			continue
		}
		t := &g.b.tenants[i]
		if patch.Name != nil {
			t.Name = *patch.Name
		}
		if patch.Email != nil {
			t.Email = *patch.Email
		}
		if patch.Phone != nil {
			t.Phone = *patch.Phone
		}
		if patch.Document != nil {
			t.Document = *patch.Document
		}
		if patch.Notes != nil {
			t.Notes = *patch.Notes
		}
		cp := *t
		return &cp, nil
	}
	return nil, domain.NotFoundf("tenant not found")
}

// Delete removes a tenant.
func (g *TenantGateway) Delete(ctx context.Context, id string) error {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	for i := range g.b.tenants {
		if g.b.tenants[i].ID == id {
			g.b.tenants = append(g.b.tenants[:i], g.b.tenants[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundf("tenant not found")
}

// --- ContractGateway ---

// ContractGateway exposes contract records on the backend.
type ContractGateway struct{ b *Backend }

// Contracts returns the contract gateway.
func (b *Backend) Contracts() *ContractGateway { return &ContractGateway{b: b} }

// List returns all contracts.
func (g *ContractGateway) List(ctx context.Context) ([]domain.Contract, error) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	out := make([]domain.Contract, len(g.b.contracts))
	copy(out, g.b.contracts)
	return out, nil
}

// Get returns a contract by id.
func (g *ContractGateway) Get(ctx context.Context, id string) (*domain.Contract, error) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	for _, c := range g.b.contracts {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, domain.NotFoundf("contract not found")
}

// Create stores a new contract.
func (g *ContractGateway) Create(ctx context.Context, in domain.ContractInput) (*domain.Contract, error) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	c := domain.Contract{
		ID:          newID(),
		PropertyID:  in.PropertyID,
		TenantID:    in.TenantID,
		Status:      in.Status,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		MonthlyRent: in.MonthlyRent,
		Notes:       in.Notes,
		CreatedAt:   g.b.now().UTC(),
	}
	if c.Status == "" {
		c.Status = domain.ContractActive
	}
	g.b.contracts = append(g.b.contracts, c)
	return &c, nil
}

// Update applies a patch to a contract.
func (g *ContractGateway) Update(ctx context.Context, id string, patch domain.ContractPatch) (*domain.Contract, error) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	for i := range g.b.contracts {
		if g.b.contracts[i].ID != id {
			continue
		}
		c := &g.b.contracts[i]
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		if patch.StartDate != nil {
			c.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			c.EndDate = *patch.EndDate
		}
		if patch.MonthlyRent != nil {
			c.MonthlyRent = *patch.MonthlyRent
		}
		if patch.Notes != nil {
			c.Notes = *patch.Notes
		}
		cp := *c
		return &cp, nil
	}
	return nil, domain.NotFoundf("contract not found")
}

// Delete removes a contract.
func (g *ContractGateway) Delete(ctx context.Context, id string) error {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	for i := range g.b.contracts {
		if g.b.contracts[i].ID == id {
			g.b.contracts = append(g.b.contracts[:i], g.b.contracts[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundf("contract not found")
}

// --- PropertyTypeGateway ---

// PropertyTypeGateway exposes property-type records on the backend.
type PropertyTypeGateway struct{ b *Backend }

// PropertyTypes returns the property-type gateway.
func (b *Backend) PropertyTypes() *PropertyTypeGateway { return &PropertyTypeGateway{b: b} }

// List returns all property types.
func (g *PropertyTypeGateway) List(ctx context.Context) ([]domain.PropertyType, error) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	out := make([]domain.PropertyType, len(g.b.propertyTypes))
	copy(out, g.b.propertyTypes)
	return out, nil
}

// Get returns a property type by id.
func (g *PropertyTypeGateway) Get(ctx context.Context, id string) (*domain.PropertyType, error) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	for _, t := range g.b.propertyTypes {
		if t.ID == id {
			cp := t
			return &cp, nil
		}
	}
	return nil, domain.NotFoundf("property type not found")
}

// Create stores a new property type. The backend enforces the unique
// name constraint as well; the client pre-check is not authoritative.
func (g *PropertyTypeGateway) Create(ctx context.Context, name string) (*domain.PropertyType, error) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	for _, t := range g.b.propertyTypes {
		if strings.EqualFold(t.Name, name) {
			return nil, domain.Conflictf("a type named %q already exists", name)
		}
	}
	t := domain.PropertyType{ID: newID(), Name: name}
	g.b.propertyTypes = append(g.b.propertyTypes, t)
	return &t, nil
}

// Update renames a property type.
func (g *PropertyTypeGateway) Update(ctx context.Context, id string, name string) (*domain.PropertyType, error) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	for _, t := range g.b.propertyTypes {
		if t.ID != id && strings.EqualFold(t.Name, name) {
			return nil, domain.Conflictf("a type named %q already exists", name)
		}
	}
	for i := range g.b.propertyTypes {
		if g.b.propertyTypes[i].ID == id {
			g.b.propertyTypes[i].Name = name
			cp := g.b.propertyTypes[i]
			return &cp, nil
		}
	}
	return nil, domain.NotFoundf("property type not found")
}

// Delete removes a property type.
func (g *PropertyTypeGateway) Delete(ctx context.Context, id string) error {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	for i := range g.b.propertyTypes {
		if g.b.propertyTypes[i].ID == id {
			g.b.propertyTypes = append(g.b.propertyTypes[:i], g.b.propertyTypes[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundf("property type not found")
}
