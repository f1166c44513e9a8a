package app

import (
	"context"

	"rentdesk/internal/domain"
)

// Login authenticates against the backend, establishes the session and
// loads every entity collection for it.
func (s *Store) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, s.fail(domain.Validationf("email and password are required"), "could not sign in")
	}

	sess, err := s.gw.Session.Login(ctx, email, password)
	if err != nil {
		return nil, s.fail(err, "could not sign in")
	}

	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()

	s.notifier.Success("signed in")
	if err := s.loadInitialData(ctx); err != nil {
		return sess, err
	}
	return sess, nil
}

// Register creates an account, establishes the session and loads the
// entity collections. The password pre-check here is stricter than the
// admin-created-user one: at least 8 characters including a symbol.
func (s *Store) Register(ctx context.Context, in domain.RegisterInput) (*domain.Session, error) {
	if in.Name == "" || in.Email == "" {
		return nil, s.fail(domain.Validationf("name and email are required"), "could not register")
	}
	if len(in.Password) < minRegisterPasswordLen {
		return nil, s.fail(domain.Validationf("password must have at least %d characters", minRegisterPasswordLen), "could not register")
	}
	if !containsSymbol(in.Password) {
		return nil, s.fail(domain.Validationf("password must contain a symbol"), "could not register")
	}

	sess, err := s.gw.Session.Register(ctx, in)
	if err != nil {
		return nil, s.fail(err, "could not register")
	}

	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()

	s.notifier.Success("account created")
	if err := s.loadInitialData(ctx); err != nil {
		return sess, err
	}
	return sess, nil
}

// Logout clears the persisted session and drops the whole snapshot.
// The in-memory state is cleared even if the gateway call fails.
func (s *Store) Logout(ctx context.Context) error {
	err := s.gw.Session.Logout(ctx)

	s.mu.Lock()
	s.session = nil
	s.properties = nil
	s.tenants = nil
	s.contracts = nil
	s.propertyTypes = nil
	s.users = nil
	s.pending = nil
	s.mu.Unlock()

	if err != nil {
		return s.fail(err, "could not sign out cleanly")
	}
	s.notifier.Success("signed out")
	return nil
}

// RestoreSession re-establishes a session persisted by a previous run.
// It reports false without error when no session is stored.
func (s *Store) RestoreSession(ctx context.Context) (bool, error) {
	user, err := s.gw.Session.CurrentUser(ctx)
	if err != nil {
		return false, s.fail(err, "could not restore session")
	}
	if user == nil {
		return false, nil
	}

	s.mu.Lock()
	s.session = &domain.Session{User: user}
	s.mu.Unlock()

	if err := s.loadInitialData(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// loadInitialData fetches property types, properties, tenants and
// contracts, plus users when the session role is admin. Collections
// that load successfully are kept even when others fail; failures are
// joined into the returned error.
func (s *Store) loadInitialData(ctx context.Context) error {
	var errs []error

	types, err := s.gw.PropertyTypes.List(ctx)
	if err != nil {
		errs = append(errs, err)
	}
	properties, err := s.gw.Properties.List(ctx)
	if err != nil {
		errs = append(errs, err)
	}
	tenants, err := s.gw.Tenants.List(ctx)
	if err != nil {
		errs = append(errs, err)
	}
	contracts, err := s.gw.Contracts.List(ctx)
	if err != nil {
		errs = append(errs, err)
	}

	s.mu.Lock()
	admin := s.session != nil && s.session.User != nil && s.session.User.Role == domain.RoleAdmin
	if types != nil {
		s.propertyTypes = types
	}
	if properties != nil {
		s.properties = properties
	}
	if tenants != nil {
		s.tenants = tenants
	}
	if contracts != nil {
		s.contracts = contracts
	}
	s.mu.Unlock()

	if admin {
		users, err := s.gw.Users.List(ctx)
		if err != nil {
			errs = append(errs, err)
		} else {
			s.mu.Lock()
			s.users = users
			s.mu.Unlock()
		}
	}

	if err := joinErrs(errs); err != nil {
		s.notifier.Error("some data could not be loaded")
		return err
	}
	return nil
}

func containsSymbol(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		default:
			return true
		}
	}
	return false
}
