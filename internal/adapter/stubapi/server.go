// Package stubapi serves the backend REST API over the in-memory
// backend. It exists so the rest client can be exercised end to end in
// tests and in the offline demo mode without a real server.
package stubapi

import (
	"net/http"
	"strings"

	"rentdesk/internal/adapter/memory"
	"rentdesk/internal/domain"
)

// Server exposes a memory.Backend over HTTP.
type Server struct {
	backend *memory.Backend
}

// New creates a Server over the given backend.
func New(b *memory.Backend) *Server {
	return &Server{backend: b}
}

// Handler returns the root http.Handler for the stub API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.Handle("POST /auth/logout", s.requireUser(s.handleLogout))

	mux.Handle("GET /auth/users", s.requireAdmin(s.handleListUsers))
	mux.Handle("POST /auth/users", s.requireAdmin(s.handleCreateUser))
	mux.Handle("GET /auth/users/{id}", s.requireAdmin(s.handleGetUser))
	mux.Handle("PUT /auth/users/{id}", s.requireAdmin(s.handleUpdateUser))
	mux.Handle("PUT /auth/users/{id}/reset-password", s.requireAdmin(s.handleResetPassword))
	mux.Handle("PUT /auth/users/{id}/toggle-status", s.requireAdmin(s.handleToggleStatus))

	mux.Handle("GET /properties", s.requireUser(s.handleListProperties))
	mux.Handle("POST /properties", s.requireUser(s.handleCreateProperty))
	mux.Handle("GET /properties/{id}", s.requireUser(s.handleGetProperty))
	mux.Handle("PUT /properties/{id}", s.requireUser(s.handleUpdateProperty))
	mux.Handle("DELETE /properties/{id}", s.requireUser(s.handleDeleteProperty))

	mux.Handle("GET /tenants", s.requireUser(s.handleListTenants))
	mux.Handle("POST /tenants", s.requireUser(s.handleCreateTenant))
	mux.Handle("GET /tenants/{id}", s.requireUser(s.handleGetTenant))
	mux.Handle("PUT /tenants/{id}", s.requireUser(s.handleUpdateTenant))
	mux.Handle("DELETE /tenants/{id}", s.requireUser(s.handleDeleteTenant))

	mux.Handle("GET /contracts", s.requireUser(s.handleListContracts))
	mux.Handle("POST /contracts", s.requireUser(s.handleCreateContract))
	mux.Handle("GET /contracts/{id}", s.requireUser(s.handleGetContract))
	mux.Handle("PUT /contracts/{id}", s.requireUser(s.handleUpdateContract))
	mux.Handle("DELETE /contracts/{id}", s.requireUser(s.handleDeleteContract))

	mux.Handle("GET /property-types", s.requireUser(s.handleListTypes))
	mux.Handle("POST /property-types", s.requireUser(s.handleCreateType))
	mux.Handle("GET /property-types/{id}", s.requireUser(s.handleGetType))
	mux.Handle("PUT /property-types/{id}", s.requireUser(s.handleUpdateType))
	mux.Handle("DELETE /property-types/{id}", s.requireUser(s.handleDeleteType))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	return mux
}

// bearerUser resolves the Authorization header to a user.
func (s *Server) bearerUser(r *http.Request) (*domain.User, bool) {
	auth := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || token == "" {
		return nil, false
	}
	return s.backend.UserForToken(token)
}

func (s *Server) requireUser(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.bearerUser(r); !ok {
			unauthorized(w)
			return
		}
		next(w, r)
	})
}

func (s *Server) requireAdmin(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := s.bearerUser(r)
		if !ok {
			unauthorized(w)
			return
		}
		if u.Role != domain.RoleAdmin {
			forbidden(w)
			return
		}
		next(w, r)
	})
}
