package domain

import "context"

// PropertyType is a category a property belongs to, referenced by name.
// Names are unique case-insensitively.
type PropertyType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PropertyTypeGateway is the transport port for property-type records.
type PropertyTypeGateway interface {
	List(ctx context.Context) ([]PropertyType, error)
	Get(ctx context.Context, id string) (*PropertyType, error)
	Create(ctx context.Context, name string) (*PropertyType, error)
	Update(ctx context.Context, id string, name string) (*PropertyType, error)
	Delete(ctx context.Context, id string) error
}
