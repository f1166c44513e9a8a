package rest

import (
	"context"
	"net/http"

	"rentdesk/internal/domain"
)

// PropertyGateway calls the /properties endpoints.
type PropertyGateway struct{ c *Client }

// NewPropertyGateway creates a property gateway on the client.
func NewPropertyGateway(c *Client) *PropertyGateway { return &PropertyGateway{c: c} }

var _ domain.PropertyGateway = (*PropertyGateway)(nil)

// List fetches all properties.
func (g *PropertyGateway) List(ctx context.Context) ([]domain.Property, error) {
	var out []domain.Property
	if err := g.c.do(ctx, http.MethodGet, "/properties", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one property.
func (g *PropertyGateway) Get(ctx context.Context, id string) (*domain.Property, error) {
	var out domain.Property
	if err := g.c.do(ctx, http.MethodGet, "/properties/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a property.
func (g *PropertyGateway) Create(ctx context.Context, in domain.PropertyInput) (*domain.Property, error) {
	var out domain.Property
	if err := g.c.do(ctx, http.MethodPost, "/properties", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update patches a property.
func (g *PropertyGateway) Update(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error) {
	var out domain.Property
	if err := g.c.do(ctx, http.MethodPut, "/properties/"+id, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a property.
func (g *PropertyGateway) Delete(ctx context.Context, id string) error {
	return g.c.do(ctx, http.MethodDelete, "/properties/"+id, nil, nil)
}
