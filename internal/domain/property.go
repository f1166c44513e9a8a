// Package domain contains the core business entities and gateway ports.
package domain

import (
	"context"
	"time"
)

// PropertyStatus is the occupancy state of a property. A property is in
// exactly one status at any time.
type PropertyStatus string

const (
	// PropertyAvailable means the property can be linked to a new contract.
	PropertyAvailable PropertyStatus = "Available"
	// PropertyRented means an active or pending contract occupies the property.
	PropertyRented PropertyStatus = "Rented"
	// PropertyMaintenance means the property is temporarily off the market.
	PropertyMaintenance PropertyStatus = "Maintenance"
)

// Valid reports whether s is one of the known property statuses.
func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyAvailable, PropertyRented, PropertyMaintenance:
		return true
	}
	return false
}

// Property is a rentable unit. Type holds the name of a PropertyType,
// denormalized so listings render without a join; a type rename fans out
// to every referencing property.
type Property struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Address   string         `json:"address"`
	Type      string         `json:"type"`
	Status    PropertyStatus `json:"status"`
	Size      *float64       `json:"size,omitempty"`
	Bedrooms  *int           `json:"bedrooms,omitempty"`
	Bathrooms *int           `json:"bathrooms,omitempty"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// PropertyInput is the payload for creating a property.
type PropertyInput struct {
	Title     string         `json:"title"`
	Address   string         `json:"address"`
	Type      string         `json:"type"`
	Status    PropertyStatus `json:"status"`
	Size      *float64       `json:"size,omitempty"`
	Bedrooms  *int           `json:"bedrooms,omitempty"`
	Bathrooms *int           `json:"bathrooms,omitempty"`
	Notes     string         `json:"notes,omitempty"`
}

// PropertyPatch is a partial update; nil fields are left unchanged.
type PropertyPatch struct {
	Title     *string         `json:"title,omitempty"`
	Address   *string         `json:"address,omitempty"`
	Type      *string         `json:"type,omitempty"`
	Status    *PropertyStatus `json:"status,omitempty"`
	Size      *float64        `json:"size,omitempty"`
	Bedrooms  *int            `json:"bedrooms,omitempty"`
	Bathrooms *int            `json:"bathrooms,omitempty"`
	Notes     *string         `json:"notes,omitempty"`
}

// PropertyGateway is the transport port for property records. It owns no
// state and enforces no business rules.
type PropertyGateway interface {
	List(ctx context.Context) ([]Property, error)
	Get(ctx context.Context, id string) (*Property, error)
	Create(ctx context.Context, in PropertyInput) (*Property, error)
	Update(ctx context.Context, id string, patch PropertyPatch) (*Property, error)
	Delete(ctx context.Context, id string) error
}
