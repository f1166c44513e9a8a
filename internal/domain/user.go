package domain

import (
	"context"
	"time"
)

// Role is the permission level of a user account.
type Role string

const (
	// RoleAdmin can manage user accounts in addition to regular entities.
	RoleAdmin Role = "admin"
	// RoleUser can manage properties, tenants and contracts only.
	RoleUser Role = "user"
)

// User is an account on the backing service. Passwords never appear on
// this type; they travel only in inputs.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserInput is the payload for an admin creating a user.
type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
}

// UserPatch is a partial update; nil fields are left unchanged.
type UserPatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Role  *Role   `json:"role,omitempty"`
}

// RegisterInput is the payload for self-registration.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the authenticated user plus the fact of being
// authenticated. Its lifecycle spans login or register to logout.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// UserGateway is the transport port for admin-only user management.
type UserGateway interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, in UserInput) (*User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*User, error)
	ResetPassword(ctx context.Context, id string, password string) error
	ToggleStatus(ctx context.Context, id string) (*User, error)
}

// SessionGateway is the transport port for authentication. CurrentUser
// reads the persisted client-side session and returns (nil, nil) when
// none exists.
type SessionGateway interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Register(ctx context.Context, in RegisterInput) (*Session, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*User, error)
}
