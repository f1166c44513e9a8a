package domain

import (
	"context"
	"time"
)

// Tenant is a person who rents properties.
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Document  string    `json:"document,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// TenantInput is the payload for creating a tenant.
type TenantInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Document string `json:"document,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// TenantPatch is a partial update; nil fields are left unchanged.
type TenantPatch struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Document *string `json:"document,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// TenantGateway is the transport port for tenant records.
type TenantGateway interface {
	List(ctx context.Context) ([]Tenant, error)
	Get(ctx context.Context, id string) (*Tenant, error)
	Create(ctx context.Context, in TenantInput) (*Tenant, error)
	Update(ctx context.Context, id string, patch TenantPatch) (*Tenant, error)
	Delete(ctx context.Context, id string) error
}
