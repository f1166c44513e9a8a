package rest

import (
	"context"
	"net/http"

	"rentdesk/internal/domain"
)

// TenantGateway calls the /tenants endpoints.
type TenantGateway struct{ c *Client }

// NewTenantGateway creates a tenant gateway on the client.
func NewTenantGateway(c *Client) *TenantGateway { return &TenantGateway{c: c} }

var _ domain.TenantGateway = (*TenantGateway)(nil)

// List fetches all tenants.
func (g *TenantGateway) List(ctx context.Context) ([]domain.Tenant, error) {
	var out []domain.Tenant
	if err := g.c.do(ctx, http.MethodGet, "/tenants", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one tenant.
func (g *TenantGateway) Get(ctx context.Context, id string) (*domain.Tenant, error) {
	var out domain.Tenant
	if err := g.c.do(ctx, http.MethodGet, "/tenants/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a tenant.
func (g *TenantGateway) Create(ctx context.Context, in domain.TenantInput) (*domain.Tenant, error) {
	var out domain.Tenant
	if err := g.c.do(ctx, http.MethodPost, "/tenants", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update patches a tenant.
func (g *TenantGateway) Update(ctx context.Context, id string, patch domain.TenantPatch) (*domain.Tenant, error) {
	var out domain.Tenant
	if err := g.c.do(ctx, http.MethodPut, "/tenants/"+id, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a tenant.
func (g *TenantGateway) Delete(ctx context.Context, id string) error {
	return g.c.do(ctx, http.MethodDelete, "/tenants/"+id, nil, nil)
}
