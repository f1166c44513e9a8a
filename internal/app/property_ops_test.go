package app_test

import (
	"context"
	"testing"

	"rentdesk/internal/domain"
)

func TestAddPropertyDefaultsToAvailable(t *testing.T) {
	e := newTestEnv(t, fixtures{})

	p, err := e.store.AddProperty(context.Background(), domain.PropertyInput{
		Title:   "Loft Centro",
		Address: "Rua Augusta 100",
		Type:    "Apartment",
	})
	if err != nil {
		t.Fatalf("AddProperty: %v", err)
	}
	if p.Status != domain.PropertyAvailable {
		t.Fatalf("want default status Available, got %s", p.Status)
	}
	if got := len(e.store.Properties()); got != 1 {
		t.Fatalf("want property in snapshot, got %d", got)
	}
}

func TestAddPropertyRejectsInvalidStatus(t *testing.T) {
	e := newTestEnv(t, fixtures{})
	e.props.createFn = func(context.Context, domain.PropertyInput) (*domain.Property, error) {
		t.Fatal("create must not be called with an invalid status")
		return nil, nil
	}

	_, err := e.store.AddProperty(context.Background(), domain.PropertyInput{
		Title:  "Loft",
		Status: domain.PropertyStatus("haunted"),
	})
	if !domain.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestUpdatePropertyUnknownID(t *testing.T) {
	e := newTestEnv(t, fixtures{})

	title := "Renamed"
	_, err := e.store.UpdateProperty(context.Background(), "missing", domain.PropertyPatch{Title: &title})
	if !domain.IsNotFound(err) {
		t.Fatalf("want not-found error, got %v", err)
	}
}

func TestDeletePropertyBlockedByOccupyingContract(t *testing.T) {
	fx := fixtures{
		properties: []domain.Property{{ID: "p1", Title: "Casa", Status: domain.PropertyRented}},
		contracts:  []domain.Contract{{ID: "c1", PropertyID: "p1", TenantID: "t1", Status: domain.ContractPending}},
	}
	e := newTestEnv(t, fx)
	e.props.deleteFn = func(context.Context, string) error {
		t.Fatal("delete must not reach the gateway while a contract occupies the property")
		return nil
	}

	err := e.store.DeleteProperty(context.Background(), "p1")
	if !domain.IsConflict(err) {
		t.Fatalf("want conflict error, got %v", err)
	}
	if got := len(e.store.Properties()); got != 1 {
		t.Fatalf("snapshot changed: %d properties", got)
	}
}

func TestDeletePropertyAllowedWithEndedContract(t *testing.T) {
	fx := fixtures{
		properties: []domain.Property{{ID: "p1", Title: "Casa", Status: domain.PropertyAvailable}},
		contracts:  []domain.Contract{{ID: "c1", PropertyID: "p1", TenantID: "t1", Status: domain.ContractEnded}},
	}
	e := newTestEnv(t, fx)

	if err := e.store.DeleteProperty(context.Background(), "p1"); err != nil {
		t.Fatalf("DeleteProperty: %v", err)
	}
	if got := len(e.store.Properties()); got != 0 {
		t.Fatalf("want property removed, got %d", got)
	}
}

func TestDeleteTenantBlockedByOccupyingContract(t *testing.T) {
	fx := fixtures{
		tenants:   []domain.Tenant{{ID: "t1", Name: "Ana Souza"}},
		contracts: []domain.Contract{{ID: "c1", PropertyID: "p1", TenantID: "t1", Status: domain.ContractActive}},
	}
	e := newTestEnv(t, fx)
	e.tenants.deleteFn = func(context.Context, string) error {
		t.Fatal("delete must not reach the gateway while a contract references the tenant")
		return nil
	}

	err := e.store.DeleteTenant(context.Background(), "t1")
	if !domain.IsConflict(err) {
		t.Fatalf("want conflict error, got %v", err)
	}
}

func TestDeleteTenantAllowedWithEndedContract(t *testing.T) {
	fx := fixtures{
		tenants:   []domain.Tenant{{ID: "t1", Name: "Ana Souza"}},
		contracts: []domain.Contract{{ID: "c1", PropertyID: "p1", TenantID: "t1", Status: domain.ContractEnded}},
	}
	e := newTestEnv(t, fx)

	if err := e.store.DeleteTenant(context.Background(), "t1"); err != nil {
		t.Fatalf("DeleteTenant: %v", err)
	}
	if got := len(e.store.Tenants()); got != 0 {
		t.Fatalf("want tenant removed, got %d", got)
	}
}
