package app

import (
	"sort"
	"time"

	"rentdesk/internal/domain"
)

// Labels shown when a renewal's property or tenant is missing from the
// snapshot.
const (
	UnknownProperty = "Unknown property"
	UnknownTenant   = "Unknown tenant"
)

// Renewal is an active contract approaching (or past) its end date,
// resolved for display.
type Renewal struct {
	Contract      domain.Contract
	PropertyTitle string
	TenantName    string
	DaysRemaining int
}

// StatusBreakdown counts properties per status.
type StatusBreakdown struct {
	Available   int
	Rented      int
	Maintenance int
}

// OccupancyRate returns the percentage of properties that are Rented or
// in Maintenance. It returns 0 when no properties are loaded.
func (s *Store) OccupancyRate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.properties) == 0 {
		return 0
	}
	occupied := 0
	for _, p := range s.properties {
		if p.Status == domain.PropertyRented || p.Status == domain.PropertyMaintenance {
			occupied++
		}
	}
	return float64(occupied) / float64(len(s.properties)) * 100
}

// MonthlyRevenue sums the monthly rent of all Active contracts.
func (s *Store) MonthlyRevenue() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, c := range s.contracts {
		if c.Status == domain.ContractActive {
			total += c.MonthlyRent
		}
	}
	return total
}

// AvailableProperties counts properties currently Available.
func (s *Store) AvailableProperties() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, p := range s.properties {
		if p.Status == domain.PropertyAvailable {
			n++
		}
	}
	return n
}

// PropertyStatusBreakdown counts properties per status.
func (s *Store) PropertyStatusBreakdown() StatusBreakdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	var b StatusBreakdown
	for _, p := range s.properties {
		switch p.Status {
		case domain.PropertyAvailable:
			b.Available++
		case domain.PropertyRented:
			b.Rented++
		case domain.PropertyMaintenance:
			b.Maintenance++
		}
	}
	return b
}

// RecentProperties returns the n most recently created properties,
// newest first.
func (s *Store) RecentProperties(n int) []domain.Property {
	props := s.Properties()
	sort.Slice(props, func(i, j int) bool {
		return props[i].CreatedAt.After(props[j].CreatedAt)
	})
	if len(props) > n {
		props = props[:n]
	}
	return props
}

// UpcomingRenewals returns the Active contracts whose end date falls
// within daysThreshold calendar days from today, sorted ascending by
// days remaining. Days remaining may be zero or negative for expired
// contracts still marked Active; those surface first rather than being
// hidden.
func (s *Store) UpcomingRenewals(daysThreshold int) []Renewal {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := midnight(s.now())
	cutoff := today.AddDate(0, 0, daysThreshold)

	var out []Renewal
	for _, c := range s.contracts {
		if c.Status != domain.ContractActive {
			continue
		}
		end := midnight(c.EndDate)
		if end.After(cutoff) {
			continue
		}
		r := Renewal{
			Contract:      c,
			PropertyTitle: UnknownProperty,
			TenantName:    UnknownTenant,
			DaysRemaining: daysBetween(today, end),
		}
		if p, ok := s.findProperty(c.PropertyID); ok {
			r.PropertyTitle = p.Title
		}
		for _, t := range s.tenants {
			if t.ID == c.TenantID {
				r.TenantName = t.Name
				break
			}
		}
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].DaysRemaining < out[j].DaysRemaining
	})
	return out
}

// midnight normalizes t to the start of its calendar day. The result is
// anchored in UTC so day arithmetic is exact regardless of the zone the
// wall-clock time arrived in.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole calendar days from a to b; both are already
// midnight-normalized so the division is exact.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
