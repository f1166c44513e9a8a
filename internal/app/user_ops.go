package app

import (
	"context"
	"strings"

	"rentdesk/internal/domain"
)

// Admin-created accounts only need 6 characters; self-registration
// demands 8 plus a symbol. The split mirrors the backend's policies,
// which remain authoritative — these are fast local pre-checks only.
const (
	minAdminPasswordLen    = 6
	minRegisterPasswordLen = 8
)

// AddUser creates a user account (admin only). Name, email and password
// are required; the password must have at least 6 characters.
func (s *Store) AddUser(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, s.fail(domain.Validationf("name and email are required"), "could not add user")
	}
	if len(in.Password) < minAdminPasswordLen {
		return nil, s.fail(domain.Validationf("password must have at least %d characters", minAdminPasswordLen), "could not add user")
	}
	if in.Role == "" {
		in.Role = domain.RoleUser
	}

	created, err := s.gw.Users.Create(ctx, in)
	if err != nil {
		return nil, s.fail(err, "could not add user")
	}

	s.mu.Lock()
	s.users = append(s.users, *created)
	s.mu.Unlock()

	s.notifier.Success("user added")
	return created, nil
}

// UpdateUser applies a partial update to a user account (admin only).
func (s *Store) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, s.fail(domain.Validationf("name is required"), "could not update user")
	}
	if patch.Email != nil && strings.TrimSpace(*patch.Email) == "" {
		return nil, s.fail(domain.Validationf("email is required"), "could not update user")
	}

	updated, err := s.gw.Users.Update(ctx, id, patch)
	if err != nil {
		return nil, s.fail(err, "could not update user")
	}

	s.mu.Lock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i] = *updated
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Success("user updated")
	return updated, nil
}

// ResetUserPassword sets a new password for a user (admin only).
func (s *Store) ResetUserPassword(ctx context.Context, id, password string) error {
	if len(password) < minAdminPasswordLen {
		return s.fail(domain.Validationf("password must have at least %d characters", minAdminPasswordLen), "could not reset password")
	}

	if err := s.gw.Users.ResetPassword(ctx, id, password); err != nil {
		return s.fail(err, "could not reset password")
	}

	s.notifier.Success("password reset")
	return nil
}

// ToggleUserStatus flips a user's active flag (admin only). A user
// cannot deactivate itself.
func (s *Store) ToggleUserStatus(ctx context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	self := s.session != nil && s.session.User != nil && s.session.User.ID == id
	s.mu.Unlock()
	if self {
		return nil, s.fail(domain.Validationf("you cannot deactivate your own account"), "could not change user status")
	}

	updated, err := s.gw.Users.ToggleStatus(ctx, id)
	if err != nil {
		return nil, s.fail(err, "could not change user status")
	}

	s.mu.Lock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i] = *updated
			break
		}
	}
	s.mu.Unlock()

	if updated.Active {
		s.notifier.Success("user activated")
	} else {
		s.notifier.Success("user deactivated")
	}
	return updated, nil
}
