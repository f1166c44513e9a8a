package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"rentdesk/internal/domain"
)

// ContractGateway calls the /contracts endpoints.
type ContractGateway struct{ c *Client }

// NewContractGateway creates a contract gateway on the client.
func NewContractGateway(c *Client) *ContractGateway { return &ContractGateway{c: c} }

var _ domain.ContractGateway = (*ContractGateway)(nil)

// money decodes leniently: JSON numbers and numeric strings are
// accepted, anything else (null, text) becomes 0. Older backend rows
// stored rent as strings.
type money float64

func (m *money) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*m = money(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			*m = money(n)
			return nil
		}
	}
	*m = 0
	return nil
}

type contractDTO struct {
	ID          string                `json:"id"`
	PropertyID  string                `json:"propertyId"`
	TenantID    string                `json:"tenantId"`
	Status      domain.ContractStatus `json:"status"`
	StartDate   time.Time             `json:"startDate"`
	EndDate     time.Time             `json:"endDate"`
	MonthlyRent money                 `json:"monthlyRent"`
	Notes       string                `json:"notes"`
	CreatedAt   time.Time             `json:"createdAt"`
}

func (d contractDTO) toDomain() domain.Contract {
	return domain.Contract{
		ID:          d.ID,
		PropertyID:  d.PropertyID,
		TenantID:    d.TenantID,
		Status:      d.Status,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		MonthlyRent: float64(d.MonthlyRent),
		Notes:       d.Notes,
		CreatedAt:   d.CreatedAt,
	}
}

// List fetches all contracts.
func (g *ContractGateway) List(ctx context.Context) ([]domain.Contract, error) {
	var dtos []contractDTO
	if err := g.c.do(ctx, http.MethodGet, "/contracts", nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]domain.Contract, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// Get fetches one contract.
func (g *ContractGateway) Get(ctx context.Context, id string) (*domain.Contract, error) {
	var d contractDTO
	if err := g.c.do(ctx, http.MethodGet, "/contracts/"+id, nil, &d); err != nil {
		return nil, err
	}
	out := d.toDomain()
	return &out, nil
}

// Create adds a contract.
func (g *ContractGateway) Create(ctx context.Context, in domain.ContractInput) (*domain.Contract, error) {
	var d contractDTO
	if err := g.c.do(ctx, http.MethodPost, "/contracts", in, &d); err != nil {
		return nil, err
	}
	out := d.toDomain()
	return &out, nil
}

// Update patches a contract.
func (g *ContractGateway) Update(ctx context.Context, id string, patch domain.ContractPatch) (*domain.Contract, error) {
	var d contractDTO
	if err := g.c.do(ctx, http.MethodPut, "/contracts/"+id, patch, &d); err != nil {
		return nil, err
	}
	out := d.toDomain()
	return &out, nil
}

// Delete removes a contract.
func (g *ContractGateway) Delete(ctx context.Context, id string) error {
	return g.c.do(ctx, http.MethodDelete, "/contracts/"+id, nil, nil)
}
