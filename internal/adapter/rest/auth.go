package rest

import (
	"context"
	"errors"
	"net/http"

	"rentdesk/internal/domain"
)

// SessionGateway calls the /auth endpoints and keeps the persisted
// client-side session in step: login and register store the token and
// user record, logout clears them, CurrentUser reads them back.
type SessionGateway struct{ c *Client }

// NewSessionGateway creates a session gateway on the client.
func NewSessionGateway(c *Client) *SessionGateway { return &SessionGateway{c: c} }

var _ domain.SessionGateway = (*SessionGateway)(nil)

// Login exchanges credentials for a session and persists it.
func (g *SessionGateway) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	body := map[string]string{"email": email, "password": password}
	var sess domain.Session
	if err := g.c.do(ctx, http.MethodPost, "/auth/login", body, &sess); err != nil {
		return nil, err
	}
	if g.c.creds != nil {
		if err := g.c.creds.SaveSession(sess.Token, sess.User); err != nil {
			return nil, err
		}
	}
	return &sess, nil
}

// Register creates an account, establishing and persisting the session.
func (g *SessionGateway) Register(ctx context.Context, in domain.RegisterInput) (*domain.Session, error) {
	var sess domain.Session
	if err := g.c.do(ctx, http.MethodPost, "/auth/register", in, &sess); err != nil {
		return nil, err
	}
	if g.c.creds != nil {
		if err := g.c.creds.SaveSession(sess.Token, sess.User); err != nil {
			return nil, err
		}
	}
	return &sess, nil
}

// Logout ends the remote session and clears the persisted one. The
// local state is cleared even when the remote call fails, so a dead
// backend cannot pin a stale session on this machine.
func (g *SessionGateway) Logout(ctx context.Context) error {
	remoteErr := g.c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	var localErr error
	if g.c.creds != nil {
		localErr = g.c.creds.ClearSession()
	}
	return errors.Join(remoteErr, localErr)
}

// CurrentUser returns the persisted user record, or (nil, nil) when no
// session is stored.
func (g *SessionGateway) CurrentUser(ctx context.Context) (*domain.User, error) {
	if g.c.creds == nil {
		return nil, nil
	}
	token, err := g.c.creds.Token()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}
	return g.c.creds.SavedUser()
}

// UserGateway calls the admin-only /auth/users endpoints.
type UserGateway struct{ c *Client }

// NewUserGateway creates a user gateway on the client.
func NewUserGateway(c *Client) *UserGateway { return &UserGateway{c: c} }

var _ domain.UserGateway = (*UserGateway)(nil)

// List fetches all user accounts.
func (g *UserGateway) List(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := g.c.do(ctx, http.MethodGet, "/auth/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one user account.
func (g *UserGateway) Get(ctx context.Context, id string) (*domain.User, error) {
	var out domain.User
	if err := g.c.do(ctx, http.MethodGet, "/auth/users/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a user account.
func (g *UserGateway) Create(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	var out domain.User
	if err := g.c.do(ctx, http.MethodPost, "/auth/users", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update patches a user account.
func (g *UserGateway) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	var out domain.User
	if err := g.c.do(ctx, http.MethodPut, "/auth/users/"+id, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword sets a new password for a user.
func (g *UserGateway) ResetPassword(ctx context.Context, id string, password string) error {
	body := map[string]string{"password": password}
	return g.c.do(ctx, http.MethodPut, "/auth/users/"+id+"/reset-password", body, nil)
}

// ToggleStatus flips a user's active flag.
func (g *UserGateway) ToggleStatus(ctx context.Context, id string) (*domain.User, error) {
	var out domain.User
	if err := g.c.do(ctx, http.MethodPut, "/auth/users/"+id+"/toggle-status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
