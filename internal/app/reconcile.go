package app

import (
	"context"

	"rentdesk/internal/domain"
)

// Reconciliation records a property-status write that failed after its
// primary mutation had already succeeded, leaving the snapshot and the
// remote store diverged.
type Reconciliation struct {
	PropertyID string
	Status     domain.PropertyStatus
}

// queueReconciliation remembers a failed dependent write. The latest
// wanted status per property wins.
func (s *Store) queueReconciliation(propertyID string, status domain.PropertyStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pending {
		if s.pending[i].PropertyID == propertyID {
			s.pending[i].Status = status
			return
		}
	}
	s.pending = append(s.pending, Reconciliation{PropertyID: propertyID, Status: status})
}

// PendingReconciliations returns a copy of the queued dependent writes.
func (s *Store) PendingReconciliations() []Reconciliation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Reconciliation, len(s.pending))
	copy(out, s.pending)
	return out
}

// Reconcile retries every queued property-status write. Entries that
// succeed are removed; the rest stay queued and their errors are joined
// into the returned error.
func (s *Store) Reconcile(ctx context.Context) error {
	s.mu.Lock()
	queued := make([]Reconciliation, len(s.pending))
	copy(queued, s.pending)
	s.mu.Unlock()

	var errs []error
	var remaining []Reconciliation
	for _, r := range queued {
		updated, err := s.gw.Properties.Update(ctx, r.PropertyID, domain.PropertyPatch{Status: &r.Status})
		if err != nil {
			errs = append(errs, err)
			remaining = append(remaining, r)
			continue
		}
		s.mu.Lock()
		s.replaceProperty(*updated)
		s.mu.Unlock()
	}

	s.mu.Lock()
	s.pending = remaining
	s.mu.Unlock()

	if err := joinErrs(errs); err != nil {
		s.notifier.Warning("some property statuses are still out of sync")
		return err
	}
	if len(queued) > 0 {
		s.notifier.Success("property statuses reconciled")
	}
	return nil
}
