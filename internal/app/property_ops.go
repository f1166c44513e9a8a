package app

import (
	"context"

	"rentdesk/internal/domain"
)

// AddProperty creates a property. New properties default to Available.
func (s *Store) AddProperty(ctx context.Context, in domain.PropertyInput) (*domain.Property, error) {
	if in.Status == "" {
		in.Status = domain.PropertyAvailable
	}
	if !in.Status.Valid() {
		return nil, s.fail(domain.Validationf("invalid property status %q", in.Status), "could not add property")
	}

	created, err := s.gw.Properties.Create(ctx, in)
	if err != nil {
		return nil, s.fail(err, "could not add property")
	}

	s.mu.Lock()
	s.properties = append(s.properties, *created)
	s.mu.Unlock()

	s.notifier.Success("property added")
	return created, nil
}

// UpdateProperty applies a partial update to a property.
func (s *Store) UpdateProperty(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, s.fail(domain.Validationf("invalid property status %q", *patch.Status), "could not update property")
	}

	s.mu.Lock()
	_, ok := s.findProperty(id)
	s.mu.Unlock()
	if !ok {
		return nil, s.fail(domain.NotFoundf("property not found"), "could not update property")
	}

	updated, err := s.gw.Properties.Update(ctx, id, patch)
	if err != nil {
		return nil, s.fail(err, "could not update property")
	}

	s.mu.Lock()
	s.replaceProperty(*updated)
	s.mu.Unlock()

	s.notifier.Success("property updated")
	return updated, nil
}

// DeleteProperty removes a property. It refuses while any contract
// referencing the property is Active or Pending.
func (s *Store) DeleteProperty(ctx context.Context, id string) error {
	s.mu.Lock()
	if _, ok := s.findProperty(id); !ok {
		s.mu.Unlock()
		return s.fail(domain.NotFoundf("property not found"), "could not delete property")
	}
	if s.occupyingContractFor(id, "") {
		s.mu.Unlock()
		return s.fail(domain.Conflictf("property has an active or pending contract"), "could not delete property")
	}
	s.mu.Unlock()

	if err := s.gw.Properties.Delete(ctx, id); err != nil {
		return s.fail(err, "could not delete property")
	}

	s.mu.Lock()
	for i := range s.properties {
		if s.properties[i].ID == id {
			s.properties = append(s.properties[:i], s.properties[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Success("property deleted")
	return nil
}
