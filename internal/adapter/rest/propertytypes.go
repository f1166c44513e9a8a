package rest

import (
	"context"
	"net/http"

	"rentdesk/internal/domain"
)

// PropertyTypeGateway calls the /property-types endpoints.
type PropertyTypeGateway struct{ c *Client }

// NewPropertyTypeGateway creates a property-type gateway on the client.
func NewPropertyTypeGateway(c *Client) *PropertyTypeGateway { return &PropertyTypeGateway{c: c} }

var _ domain.PropertyTypeGateway = (*PropertyTypeGateway)(nil)

type typeNameBody struct {
	Name string `json:"name"`
}

// List fetches all property types.
func (g *PropertyTypeGateway) List(ctx context.Context) ([]domain.PropertyType, error) {
	var out []domain.PropertyType
	if err := g.c.do(ctx, http.MethodGet, "/property-types", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one property type.
func (g *PropertyTypeGateway) Get(ctx context.Context, id string) (*domain.PropertyType, error) {
	var out domain.PropertyType
	if err := g.c.do(ctx, http.MethodGet, "/property-types/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a property type.
func (g *PropertyTypeGateway) Create(ctx context.Context, name string) (*domain.PropertyType, error) {
	var out domain.PropertyType
	if err := g.c.do(ctx, http.MethodPost, "/property-types", typeNameBody{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update renames a property type.
func (g *PropertyTypeGateway) Update(ctx context.Context, id string, name string) (*domain.PropertyType, error) {
	var out domain.PropertyType
	if err := g.c.do(ctx, http.MethodPut, "/property-types/"+id, typeNameBody{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a property type.
func (g *PropertyTypeGateway) Delete(ctx context.Context, id string) error {
	return g.c.do(ctx, http.MethodDelete, "/property-types/"+id, nil, nil)
}
