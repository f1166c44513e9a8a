package app

import (
	"context"
	"strings"

	"rentdesk/internal/domain"
)

// AddPropertyType creates a property type. Names are trimmed and must be
// unique case-insensitively.
func (s *Store) AddPropertyType(ctx context.Context, name string) (*domain.PropertyType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, s.fail(domain.Validationf("type name is required"), "could not add property type")
	}

	s.mu.Lock()
	dup := s.typeNameTaken(name, "")
	s.mu.Unlock()
	if dup {
		return nil, s.fail(domain.Conflictf("a type named %q already exists", name), "could not add property type")
	}

	created, err := s.gw.PropertyTypes.Create(ctx, name)
	if err != nil {
		return nil, s.fail(err, "could not add property type")
	}

	s.mu.Lock()
	s.propertyTypes = append(s.propertyTypes, *created)
	s.mu.Unlock()

	s.notifier.Success("property type added")
	return created, nil
}

// UpdatePropertyType renames a property type. When the name actually
// changes, the rename fans out to every property whose denormalized
// type field holds the old name. The fan-out is best-effort per item:
// failed property updates are joined into the returned error while
// successful ones stand, and the type rename itself is never rolled
// back.
func (s *Store) UpdatePropertyType(ctx context.Context, id, name string) (*domain.PropertyType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, s.fail(domain.Validationf("type name is required"), "could not update property type")
	}

	s.mu.Lock()
	var oldName string
	found := false
	for _, t := range s.propertyTypes {
		if t.ID == id {
			oldName = t.Name
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return nil, s.fail(domain.NotFoundf("property type not found"), "could not update property type")
	}
	if s.typeNameTaken(name, id) {
		s.mu.Unlock()
		return nil, s.fail(domain.Conflictf("a type named %q already exists", name), "could not update property type")
	}
	s.mu.Unlock()

	updated, err := s.gw.PropertyTypes.Update(ctx, id, name)
	if err != nil {
		return nil, s.fail(err, "could not update property type")
	}

	s.mu.Lock()
	for i := range s.propertyTypes {
		if s.propertyTypes[i].ID == id {
			s.propertyTypes[i] = *updated
			break
		}
	}
	var fanOut []string
	if updated.Name != oldName {
		for _, p := range s.properties {
			if p.Type == oldName {
				fanOut = append(fanOut, p.ID)
			}
		}
	}
	s.mu.Unlock()

	s.notifier.Success("property type updated")

	var errs []error
	for _, propertyID := range fanOut {
		if _, err := s.UpdateProperty(ctx, propertyID, domain.PropertyPatch{Type: &updated.Name}); err != nil {
			errs = append(errs, err)
		}
	}
	if err := joinErrs(errs); err != nil {
		s.notifier.Warning("some properties could not be moved to the renamed type")
		return updated, err
	}
	return updated, nil
}

// DeletePropertyType removes a property type. It refuses while any
// property references the type by name.
func (s *Store) DeletePropertyType(ctx context.Context, id string) error {
	s.mu.Lock()
	var name string
	found := false
	for _, t := range s.propertyTypes {
		if t.ID == id {
			name = t.Name
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return s.fail(domain.NotFoundf("property type not found"), "could not delete property type")
	}
	inUse := false
	for _, p := range s.properties {
		if p.Type == name {
			inUse = true
			break
		}
	}
	s.mu.Unlock()
	if inUse {
		return s.fail(domain.Conflictf("type %q is still in use by a property", name), "could not delete property type")
	}

	if err := s.gw.PropertyTypes.Delete(ctx, id); err != nil {
		return s.fail(err, "could not delete property type")
	}

	s.mu.Lock()
	for i := range s.propertyTypes {
		if s.propertyTypes[i].ID == id {
			s.propertyTypes = append(s.propertyTypes[:i], s.propertyTypes[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Success("property type deleted")
	return nil
}

// SyncPropertyTypes re-fetches the property-type collection. This is the
// manual refresh exposed on the settings screen; everything else reloads
// only on login.
func (s *Store) SyncPropertyTypes(ctx context.Context) error {
	types, err := s.gw.PropertyTypes.List(ctx)
	if err != nil {
		return s.fail(err, "could not refresh property types")
	}
	s.mu.Lock()
	s.propertyTypes = types
	s.mu.Unlock()
	s.notifier.Success("property types refreshed")
	return nil
}

// typeNameTaken reports whether another type (excluding excludeID) has
// the given name, compared case-insensitively. Callers hold the mutex.
func (s *Store) typeNameTaken(name, excludeID string) bool {
	for _, t := range s.propertyTypes {
		if t.ID != excludeID && strings.EqualFold(t.Name, name) {
			return true
		}
	}
	return false
}
