package domain

import (
	"context"
	"time"
)

// ContractStatus is the lifecycle state of a lease contract.
type ContractStatus string

const (
	// ContractPending means the contract is signed but not yet in effect.
	ContractPending ContractStatus = "Pending"
	// ContractActive means the contract is currently in effect.
	ContractActive ContractStatus = "Active"
	// ContractEnded means the contract was terminated or expired.
	ContractEnded ContractStatus = "Ended"
)

// Valid reports whether s is one of the known contract statuses.
func (s ContractStatus) Valid() bool {
	switch s {
	case ContractPending, ContractActive, ContractEnded:
		return true
	}
	return false
}

// Occupying reports whether a contract in this status occupies its
// property. At most one occupying contract may reference a property.
func (s ContractStatus) Occupying() bool {
	return s == ContractPending || s == ContractActive
}

// CanTransitionTo reports whether the status change from s to next is
// legal. The machine is Pending -> Active -> Ended, with Pending -> Ended
// (cancellation before activation) and Ended -> Active (reactivation,
// conditional on property availability, checked by the store).
func (s ContractStatus) CanTransitionTo(next ContractStatus) bool {
	switch s {
	case ContractPending:
		return next == ContractActive || next == ContractEnded
	case ContractActive:
		return next == ContractEnded
	case ContractEnded:
		return next == ContractActive
	}
	return false
}

// Contract links one property to one tenant for a period of time.
type Contract struct {
	ID          string         `json:"id"`
	PropertyID  string         `json:"propertyId"`
	TenantID    string         `json:"tenantId"`
	Status      ContractStatus `json:"status"`
	StartDate   time.Time      `json:"startDate"`
	EndDate     time.Time      `json:"endDate"`
	MonthlyRent float64        `json:"monthlyRent"`
	Notes       string         `json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// ContractInput is the payload for creating a contract.
type ContractInput struct {
	PropertyID  string         `json:"propertyId"`
	TenantID    string         `json:"tenantId"`
	Status      ContractStatus `json:"status"`
	StartDate   time.Time      `json:"startDate"`
	EndDate     time.Time      `json:"endDate"`
	MonthlyRent float64        `json:"monthlyRent"`
	Notes       string         `json:"notes,omitempty"`
}

// ContractPatch is a partial update; nil fields are left unchanged.
type ContractPatch struct {
	Status      *ContractStatus `json:"status,omitempty"`
	StartDate   *time.Time      `json:"startDate,omitempty"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	MonthlyRent *float64        `json:"monthlyRent,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
}

// ContractGateway is the transport port for contract records.
type ContractGateway interface {
	List(ctx context.Context) ([]Contract, error)
	Get(ctx context.Context, id string) (*Contract, error)
	Create(ctx context.Context, in ContractInput) (*Contract, error)
	Update(ctx context.Context, id string, patch ContractPatch) (*Contract, error)
	Delete(ctx context.Context, id string) error
}
