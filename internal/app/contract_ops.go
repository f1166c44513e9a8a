package app

import (
	"context"

	"rentdesk/internal/domain"
)

// AddContract creates a contract against an available property and, on
// success, performs the dependent mutation marking the property Rented.
// The two writes are not atomic at the transport level; a failed second
// write is queued for reconciliation rather than rolled back.
func (s *Store) AddContract(ctx context.Context, in domain.ContractInput) (*domain.Contract, error) {
	if in.Status == "" {
		in.Status = domain.ContractActive
	}
	if !in.Status.Valid() {
		return nil, s.fail(domain.Validationf("invalid contract status %q", in.Status), "could not add contract")
	}

	s.mu.Lock()
	prop, ok := s.findProperty(in.PropertyID)
	if !ok {
		s.mu.Unlock()
		return nil, s.fail(domain.NotFoundf("property not found"), "could not add contract")
	}
	if prop.Status != domain.PropertyAvailable {
		s.mu.Unlock()
		return nil, s.fail(domain.Conflictf("property is not available"), "could not add contract")
	}
	tenantKnown := false
	for _, t := range s.tenants {
		if t.ID == in.TenantID {
			tenantKnown = true
			break
		}
	}
	s.mu.Unlock()
	if !tenantKnown {
		return nil, s.fail(domain.NotFoundf("tenant not found"), "could not add contract")
	}

	created, err := s.gw.Contracts.Create(ctx, in)
	if err != nil {
		return nil, s.fail(err, "could not add contract")
	}

	s.mu.Lock()
	s.contracts = append(s.contracts, *created)
	s.mu.Unlock()

	s.notifier.Success("contract added")
	s.setPropertyStatus(ctx, created.PropertyID, domain.PropertyRented)
	return created, nil
}

// UpdateContract applies a partial update to a contract, validating any
// status transition against the contract state machine and performing
// the dependent property-status mutation it implies:
//
//   - transition to Ended frees the property (status Available);
//   - reactivation (Ended -> Active) re-checks that the property is
//     Available and then marks it Rented again.
func (s *Store) UpdateContract(ctx context.Context, id string, patch domain.ContractPatch) (*domain.Contract, error) {
	s.mu.Lock()
	current, ok := s.findContract(id)
	if !ok {
		s.mu.Unlock()
		return nil, s.fail(domain.NotFoundf("contract not found"), "could not update contract")
	}

	statusChanging := patch.Status != nil && *patch.Status != current.Status
	if statusChanging {
		next := *patch.Status
		if !next.Valid() {
			s.mu.Unlock()
			return nil, s.fail(domain.Validationf("invalid contract status %q", next), "could not update contract")
		}
		if !current.Status.CanTransitionTo(next) {
			s.mu.Unlock()
			return nil, s.fail(domain.Conflictf("contract cannot change from %s to %s", current.Status, next), "could not update contract")
		}
		if current.Status == domain.ContractEnded && next == domain.ContractActive {
			prop, found := s.findProperty(current.PropertyID)
			if !found {
				s.mu.Unlock()
				return nil, s.fail(domain.NotFoundf("property not found"), "could not update contract")
			}
			if prop.Status != domain.PropertyAvailable {
				s.mu.Unlock()
				return nil, s.fail(domain.Conflictf("property is not available"), "could not update contract")
			}
		}
	}
	s.mu.Unlock()

	updated, err := s.gw.Contracts.Update(ctx, id, patch)
	if err != nil {
		return nil, s.fail(err, "could not update contract")
	}

	s.mu.Lock()
	for i := range s.contracts {
		if s.contracts[i].ID == id {
			s.contracts[i] = *updated
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Success("contract updated")

	if statusChanging {
		switch {
		case updated.Status == domain.ContractEnded:
			s.setPropertyStatus(ctx, updated.PropertyID, domain.PropertyAvailable)
		case current.Status == domain.ContractEnded && updated.Status == domain.ContractActive:
			s.setPropertyStatus(ctx, updated.PropertyID, domain.PropertyRented)
		}
	}
	return updated, nil
}

// DeleteContract removes a contract. Deleting an Active or Pending
// contract frees its property via the dependent mutation.
func (s *Store) DeleteContract(ctx context.Context, id string) error {
	s.mu.Lock()
	current, ok := s.findContract(id)
	s.mu.Unlock()
	if !ok {
		return s.fail(domain.NotFoundf("contract not found"), "could not delete contract")
	}

	if err := s.gw.Contracts.Delete(ctx, id); err != nil {
		return s.fail(err, "could not delete contract")
	}

	s.mu.Lock()
	for i := range s.contracts {
		if s.contracts[i].ID == id {
			s.contracts = append(s.contracts[:i], s.contracts[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Success("contract deleted")

	if current.Status.Occupying() {
		s.setPropertyStatus(ctx, current.PropertyID, domain.PropertyAvailable)
	}
	return nil
}
