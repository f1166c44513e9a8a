package app

import (
	"context"

	"rentdesk/internal/domain"
)

// AddTenant creates a tenant.
func (s *Store) AddTenant(ctx context.Context, in domain.TenantInput) (*domain.Tenant, error) {
	created, err := s.gw.Tenants.Create(ctx, in)
	if err != nil {
		return nil, s.fail(err, "could not add tenant")
	}

	s.mu.Lock()
	s.tenants = append(s.tenants, *created)
	s.mu.Unlock()

	s.notifier.Success("tenant added")
	return created, nil
}

// UpdateTenant applies a partial update to a tenant.
func (s *Store) UpdateTenant(ctx context.Context, id string, patch domain.TenantPatch) (*domain.Tenant, error) {
	updated, err := s.gw.Tenants.Update(ctx, id, patch)
	if err != nil {
		return nil, s.fail(err, "could not update tenant")
	}

	s.mu.Lock()
	for i := range s.tenants {
		if s.tenants[i].ID == id {
			s.tenants[i] = *updated
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Success("tenant updated")
	return updated, nil
}

// DeleteTenant removes a tenant. It refuses while any contract
// referencing the tenant is Active or Pending.
func (s *Store) DeleteTenant(ctx context.Context, id string) error {
	s.mu.Lock()
	if s.occupyingContractFor("", id) {
		s.mu.Unlock()
		return s.fail(domain.Conflictf("tenant has an active or pending contract"), "could not delete tenant")
	}
	s.mu.Unlock()

	if err := s.gw.Tenants.Delete(ctx, id); err != nil {
		return s.fail(err, "could not delete tenant")
	}

	s.mu.Lock()
	for i := range s.tenants {
		if s.tenants[i].ID == id {
			s.tenants = append(s.tenants[:i], s.tenants[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Success("tenant deleted")
	return nil
}
