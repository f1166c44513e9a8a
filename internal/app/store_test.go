package app_test

import (
	"context"
	"testing"

	"rentdesk/internal/app"
	"rentdesk/internal/domain"
)

type mockPropertyGW struct {
	listFn   func(ctx context.Context) ([]domain.Property, error)
	getFn    func(ctx context.Context, id string) (*domain.Property, error)
	createFn func(ctx context.Context, in domain.PropertyInput) (*domain.Property, error)
	updateFn func(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockPropertyGW) List(ctx context.Context) ([]domain.Property, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockPropertyGW) Get(ctx context.Context, id string) (*domain.Property, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPropertyGW) Create(ctx context.Context, in domain.PropertyInput) (*domain.Property, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	p := domain.Property{ID: "p-new", Title: in.Title, Address: in.Address, Type: in.Type, Status: in.Status}
	return &p, nil
}

func (m *mockPropertyGW) Update(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, patch)
	}
	return nil, nil
}

func (m *mockPropertyGW) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockTenantGW struct {
	listFn   func(ctx context.Context) ([]domain.Tenant, error)
	createFn func(ctx context.Context, in domain.TenantInput) (*domain.Tenant, error)
	updateFn func(ctx context.Context, id string, patch domain.TenantPatch) (*domain.Tenant, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockTenantGW) List(ctx context.Context) ([]domain.Tenant, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockTenantGW) Get(ctx context.Context, id string) (*domain.Tenant, error) {
	return nil, nil
}

func (m *mockTenantGW) Create(ctx context.Context, in domain.TenantInput) (*domain.Tenant, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	t := domain.Tenant{ID: "t-new", Name: in.Name, Email: in.Email}
	return &t, nil
}

func (m *mockTenantGW) Update(ctx context.Context, id string, patch domain.TenantPatch) (*domain.Tenant, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, patch)
	}
	return nil, nil
}

func (m *mockTenantGW) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockContractGW struct {
	listFn   func(ctx context.Context) ([]domain.Contract, error)
	createFn func(ctx context.Context, in domain.ContractInput) (*domain.Contract, error)
	updateFn func(ctx context.Context, id string, patch domain.ContractPatch) (*domain.Contract, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockContractGW) List(ctx context.Context) ([]domain.Contract, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockContractGW) Get(ctx context.Context, id string) (*domain.Contract, error) {
	return nil, nil
}

func (m *mockContractGW) Create(ctx context.Context, in domain.ContractInput) (*domain.Contract, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	c := domain.Contract{
		ID:          "c-new",
		PropertyID:  in.PropertyID,
		TenantID:    in.TenantID,
		Status:      in.Status,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		MonthlyRent: in.MonthlyRent,
	}
	return &c, nil
}

func (m *mockContractGW) Update(ctx context.Context, id string, patch domain.ContractPatch) (*domain.Contract, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, patch)
	}
	return nil, nil
}

func (m *mockContractGW) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockTypeGW struct {
	listFn   func(ctx context.Context) ([]domain.PropertyType, error)
	createFn func(ctx context.Context, name string) (*domain.PropertyType, error)
	updateFn func(ctx context.Context, id, name string) (*domain.PropertyType, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockTypeGW) List(ctx context.Context) ([]domain.PropertyType, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockTypeGW) Get(ctx context.Context, id string) (*domain.PropertyType, error) {
	return nil, nil
}

func (m *mockTypeGW) Create(ctx context.Context, name string) (*domain.PropertyType, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name)
	}
	t := domain.PropertyType{ID: "pt-new", Name: name}
	return &t, nil
}

func (m *mockTypeGW) Update(ctx context.Context, id, name string) (*domain.PropertyType, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, name)
	}
	t := domain.PropertyType{ID: id, Name: name}
	return &t, nil
}

func (m *mockTypeGW) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockUserGW struct {
	listFn   func(ctx context.Context) ([]domain.User, error)
	createFn func(ctx context.Context, in domain.UserInput) (*domain.User, error)
	updateFn func(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	resetFn  func(ctx context.Context, id, password string) error
	toggleFn func(ctx context.Context, id string) (*domain.User, error)
}

func (m *mockUserGW) List(ctx context.Context) ([]domain.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockUserGW) Get(ctx context.Context, id string) (*domain.User, error) {
	return nil, nil
}

func (m *mockUserGW) Create(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	u := domain.User{ID: "u-new", Name: in.Name, Email: in.Email, Role: in.Role, Active: true}
	return &u, nil
}

func (m *mockUserGW) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, patch)
	}
	return nil, nil
}

func (m *mockUserGW) ResetPassword(ctx context.Context, id, password string) error {
	if m.resetFn != nil {
		return m.resetFn(ctx, id, password)
	}
	return nil
}

func (m *mockUserGW) ToggleStatus(ctx context.Context, id string) (*domain.User, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx, id)
	}
	return nil, nil
}

type mockSessionGW struct {
	loginFn       func(ctx context.Context, email, password string) (*domain.Session, error)
	registerFn    func(ctx context.Context, in domain.RegisterInput) (*domain.Session, error)
	logoutFn      func(ctx context.Context) error
	currentUserFn func(ctx context.Context) (*domain.User, error)
}

func (m *mockSessionGW) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return &domain.Session{User: &domain.User{ID: "admin-1", Role: domain.RoleAdmin}, Token: "tok"}, nil
}

func (m *mockSessionGW) Register(ctx context.Context, in domain.RegisterInput) (*domain.Session, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, in)
	}
	return &domain.Session{User: &domain.User{ID: "u-new", Role: domain.RoleUser}, Token: "tok"}, nil
}

func (m *mockSessionGW) Logout(ctx context.Context) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx)
	}
	return nil
}

func (m *mockSessionGW) CurrentUser(ctx context.Context) (*domain.User, error) {
	if m.currentUserFn != nil {
		return m.currentUserFn(ctx)
	}
	return nil, nil
}

// fixtures is the snapshot content a test starts from.
type fixtures struct {
	properties []domain.Property
	tenants    []domain.Tenant
	contracts  []domain.Contract
	types      []domain.PropertyType
	users      []domain.User
	user       *domain.User
}

// testEnv bundles a store with the mock gateways behind it so tests can
// override behavior per call.
type testEnv struct {
	props    *mockPropertyGW
	tenants  *mockTenantGW
	contract *mockContractGW
	types    *mockTypeGW
	users    *mockUserGW
	session  *mockSessionGW
	store    *app.Store
}

// newTestEnv builds a store, seeds it by signing in against mock list
// gateways serving fx, and returns both.
func newTestEnv(t *testing.T, fx fixtures) *testEnv {
	t.Helper()

	user := fx.user
	if user == nil {
		user = &domain.User{ID: "admin-1", Name: "Admin", Role: domain.RoleAdmin, Active: true}
	}

	e := &testEnv{
		props:    &mockPropertyGW{},
		tenants:  &mockTenantGW{},
		contract: &mockContractGW{},
		types:    &mockTypeGW{},
		users:    &mockUserGW{},
		session:  &mockSessionGW{},
	}
	e.props.listFn = func(context.Context) ([]domain.Property, error) { return fx.properties, nil }
	e.tenants.listFn = func(context.Context) ([]domain.Tenant, error) { return fx.tenants, nil }
	e.contract.listFn = func(context.Context) ([]domain.Contract, error) { return fx.contracts, nil }
	e.types.listFn = func(context.Context) ([]domain.PropertyType, error) { return fx.types, nil }
	e.users.listFn = func(context.Context) ([]domain.User, error) { return fx.users, nil }
	e.session.loginFn = func(context.Context, string, string) (*domain.Session, error) {
		return &domain.Session{User: user, Token: "tok"}, nil
	}

	e.store = app.New(app.Gateways{
		Properties:    e.props,
		Tenants:       e.tenants,
		Contracts:     e.contract,
		PropertyTypes: e.types,
		Users:         e.users,
		Session:       e.session,
	}, app.NopNotifier{})

	if _, err := e.store.Login(context.Background(), "admin@test", "secret123"); err != nil {
		t.Fatalf("seed login failed: %v", err)
	}
	return e
}

// echoPropertyUpdate answers property patches against fx by applying
// them to the matching fixture.
func echoPropertyUpdate(fx fixtures) func(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error) {
	return func(_ context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error) {
		for _, p := range fx.properties {
			if p.ID == id {
				if patch.Status != nil {
					p.Status = *patch.Status
				}
				if patch.Type != nil {
					p.Type = *patch.Type
				}
				if patch.Title != nil {
					p.Title = *patch.Title
				}
				return &p, nil
			}
		}
		return nil, domain.NotFoundf("property not found")
	}
}

// echoContractUpdate answers contract patches against fx the same way.
func echoContractUpdate(fx fixtures) func(ctx context.Context, id string, patch domain.ContractPatch) (*domain.Contract, error) {
	return func(_ context.Context, id string, patch domain.ContractPatch) (*domain.Contract, error) {
		for _, c := range fx.contracts {
			if c.ID == id {
				if patch.Status != nil {
					c.Status = *patch.Status
				}
				if patch.EndDate != nil {
					c.EndDate = *patch.EndDate
				}
				if patch.MonthlyRent != nil {
					c.MonthlyRent = *patch.MonthlyRent
				}
				return &c, nil
			}
		}
		return nil, domain.NotFoundf("contract not found")
	}
}
