package memory

import (
	"context"
	"strings"

	"rentdesk/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// SessionGateway implements authentication against the in-memory
// backend. The "persisted" session is simply the last issued token.
type SessionGateway struct{ b *Backend }

// Session returns the session gateway.
func (b *Backend) Session() *SessionGateway { return &SessionGateway{b: b} }

// Login checks credentials and issues a session token. The first
// account ever registered becomes an admin; later ones are regular
// users, matching the backend's bootstrap behavior.
func (g *SessionGateway) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()

	for i := range g.b.accounts {
		a := &g.b.accounts[i]
		if !strings.EqualFold(a.user.Email, email) {
			continue
		}
		if !a.user.Active {
			return nil, domain.Transport("account is deactivated", nil)
		}
		if bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)) != nil {
			return nil, domain.Transport("invalid email or password", nil)
		}
		token := newID()
		g.b.sessions[token] = a.user.ID
		g.b.currentToken = token
		u := a.user
		return &domain.Session{User: &u, Token: token}, nil
	}
	return nil, domain.Transport("invalid email or password", nil)
}

// Register creates an account and issues a session token.
func (g *SessionGateway) Register(ctx context.Context, in domain.RegisterInput) (*domain.Session, error) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()

	for _, a := range g.b.accounts {
		if strings.EqualFold(a.user.Email, in.Email) {
			return nil, domain.Conflictf("email is already registered")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := domain.RoleUser
	if len(g.b.accounts) == 0 {
		role = domain.RoleAdmin
	}
	u := domain.User{
		ID:        newID(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      role,
		Active:    true,
		CreatedAt: g.b.now().UTC(),
	}
	g.b.accounts = append(g.b.accounts, account{user: u, passwordHash: string(hash)})

	token := newID()
	g.b.sessions[token] = u.ID
	g.b.currentToken = token
	return &domain.Session{User: &u, Token: token}, nil
}

// Logout invalidates the current session.
func (g *SessionGateway) Logout(ctx context.Context) error {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	delete(g.b.sessions, g.b.currentToken)
	g.b.currentToken = ""
	return nil
}

// CurrentUser returns the user behind the persisted session, or
// (nil, nil) when none exists.
func (g *SessionGateway) CurrentUser(ctx context.Context) (*domain.User, error) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	id, ok := g.b.sessions[g.b.currentToken]
	if !ok {
		return nil, nil
	}
	for _, a := range g.b.accounts {
		if a.user.ID == id {
			u := a.user
			return &u, nil
		}
	}
	return nil, nil
}

// UserForToken resolves a session token to its user. Used by the stub
// API server's auth middleware.
func (b *Backend) UserForToken(token string) (*domain.User, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id, ok := b.sessions[token]
	if !ok {
		return nil, false
	}
	for _, a := range b.accounts {
		if a.user.ID == id {
			u := a.user
			return &u, true
		}
	}
	return nil, false
}

// --- UserGateway ---

// UserGateway implements admin user management on the backend.
type UserGateway struct{ b *Backend }

// Users returns the user gateway.
func (b *Backend) Users() *UserGateway { return &UserGateway{b: b} }

// List returns all user accounts.
func (g *UserGateway) List(ctx context.Context) ([]domain.User, error) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	out := make([]domain.User, 0, len(g.b.accounts))
	for _, a := range g.b.accounts {
		out = append(out, a.user)
	}
	return out, nil
}

// Get returns a user by id.
func (g *UserGateway) Get(ctx context.Context, id string) (*domain.User, error) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	for _, a := range g.b.accounts {
		if a.user.ID == id {
			u := a.user
			return &u, nil
		}
	}
	return nil, domain.NotFoundf("user not found")
}

// Create adds a user account.
func (g *UserGateway) Create(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	for _, a := range g.b.accounts {
		if strings.EqualFold(a.user.Email, in.Email) {
			return nil, domain.Conflictf("email is already registered")
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	u := domain.User{
		ID:        newID(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      role,
		Active:    true,
		CreatedAt: g.b.now().UTC(),
	}
	g.b.accounts = append(g.b.accounts, account{user: u, passwordHash: string(hash)})
	return &u, nil
}

// Update applies a patch to a user account.
func (g *UserGateway) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	for i := range g.b.accounts {
		if g.b.accounts[i].user.ID != id {
			continue
		}
		u := &g.b.accounts[i].user
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		cp := *u
		return &cp, nil
	}
	return nil, domain.NotFoundf("user not found")
}

// ResetPassword replaces a user's password hash.
func (g *UserGateway) ResetPassword(ctx context.Context, id string, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	for i := range g.b.accounts {
		if g.b.accounts[i].user.ID == id {
			g.b.accounts[i].passwordHash = string(hash)
			return nil
		}
	}
	return domain.NotFoundf("user not found")
}

// ToggleStatus flips a user's active flag.
func (g *UserGateway) ToggleStatus(ctx context.Context, id string) (*domain.User, error) {
	g.b.mu.Lock()
	defer g.b.mu.Unlock()
	for i := range g.b.accounts {
		if g.b.accounts[i].user.ID == id {
			g.b.accounts[i].user.Active = !g.b.accounts[i].user.Active
			u := g.b.accounts[i].user
			return &u, nil
		}
	}
	return nil, domain.NotFoundf("user not found")
}
