package memory

import (
	"context"
	"fmt"
	"time"

	"rentdesk/internal/domain"
)

// Demo credentials accepted by a seeded backend.
const (
	DemoEmail    = "admin@rentdesk.local"
	DemoPassword = "rentdesk!demo"
)

// Seed populates the backend with a small realistic data set: an admin
// account, three property types, four properties, three tenants and two
// contracts (one of them close to its end date).
func Seed(b *Backend) error {
	ctx := context.Background()

	if _, err := b.Session().Register(ctx, domain.RegisterInput{
		Name:     "Demo Admin",
		Email:    DemoEmail,
		Password: DemoPassword,
	}); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := b.Session().Logout(ctx); err != nil {
		return err
	}

	typeNames := []string{"Apartment", "House", "Studio"}
	for _, name := range typeNames {
		if _, err := b.PropertyTypes().Create(ctx, name); err != nil {
			return fmt.Errorf("seed type %s: %w", name, err)
		}
	}

	size := func(v float64) *float64 { return &v }
	rooms := func(n int) *int { return &n }

	props := []domain.PropertyInput{
		{Title: "Sunset Apartment 301", Address: "Rua das Flores 120, ap 301", Type: "Apartment", Status: domain.PropertyAvailable, Size: size(72), Bedrooms: rooms(2), Bathrooms: rooms(1)},
		{Title: "Garden House", Address: "Av. Central 45", Type: "House", Status: domain.PropertyAvailable, Size: size(140), Bedrooms: rooms(3), Bathrooms: rooms(2)},
		{Title: "Downtown Studio 12", Address: "Rua Quinze 900, sala 12", Type: "Studio", Status: domain.PropertyAvailable, Size: size(38), Bedrooms: rooms(1), Bathrooms: rooms(1)},
		{Title: "Harbor View 804", Address: "Av. Beira-Mar 2200, ap 804", Type: "Apartment", Status: domain.PropertyMaintenance, Size: size(95), Bedrooms: rooms(3), Bathrooms: rooms(2)},
	}
	var propertyIDs []string
	for _, in := range props {
		p, err := b.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("seed property %s: %w", in.Title, err)
		}
		propertyIDs = append(propertyIDs, p.ID)
	}

	tenants := []domain.TenantInput{
		{Name: "Maria Souza", Email: "maria@example.com", Phone: "11987654321", Document: "39053344705"},
		{Name: "João Pereira", Email: "joao@example.com", Phone: "2133445566", Document: "12345678909"},
		{Name: "Ana Lima", Email: "ana@example.com", Phone: "31999887766"},
	}
	var tenantIDs []string
	for _, in := range tenants {
		t, err := b.Tenants().Create(ctx, in)
		if err != nil {
			return fmt.Errorf("seed tenant %s: %w", in.Name, err)
		}
		tenantIDs = append(tenantIDs, t.ID)
	}

	now := b.now()
	rented := domain.PropertyRented
	contracts := []domain.ContractInput{
		{
			PropertyID:  propertyIDs[0],
			TenantID:    tenantIDs[0],
			Status:      domain.ContractActive,
			StartDate:   now.AddDate(-1, 0, 0),
			EndDate:     now.AddDate(0, 0, 12),
			MonthlyRent: 2450,
		},
		{
			PropertyID:  propertyIDs[1],
			TenantID:    tenantIDs[1],
			Status:      domain.ContractActive,
			StartDate:   now.AddDate(0, -6, 0),
			EndDate:     now.AddDate(0, 6, 0),
			MonthlyRent: 3900,
		},
	}
	for _, in := range contracts {
		if _, err := b.Contracts().Create(ctx, in); err != nil {
			return fmt.Errorf("seed contract: %w", err)
		}
		if _, err := b.Update(ctx, in.PropertyID, domain.PropertyPatch{Status: &rented}); err != nil {
			return err
		}
	}
	return nil
}

// SeedAt seeds with a fixed clock, for deterministic fixtures.
func SeedAt(b *Backend, at time.Time) error {
	b.SetClock(func() time.Time { return at })
	defer b.SetClock(time.Now)
	return Seed(b)
}
