package stubapi

import (
	"net/http"

	"rentdesk/internal/domain"
)

// --- auth ---

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	sess, err := s.backend.Session().Login(r.Context(), body.Email, body.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in domain.RegisterInput
	if err := parseJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	sess, err := s.backend.Session().Register(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.backend.Session().Logout(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// --- users ---

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.backend.Users().List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.backend.Users().Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var in domain.UserInput
	if err := parseJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	u, err := s.backend.Users().Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var patch domain.UserPatch
	if err := parseJSON(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	u, err := s.backend.Users().Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Password string `json:"password"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	if err := s.backend.Users().ResetPassword(r.Context(), r.PathValue("id"), body.Password); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleToggleStatus(w http.ResponseWriter, r *http.Request) {
	u, err := s.backend.Users().ToggleStatus(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// --- properties ---

func (s *Server) handleListProperties(w http.ResponseWriter, r *http.Request) {
	props, err := s.backend.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, props)
}

func (s *Server) handleGetProperty(w http.ResponseWriter, r *http.Request) {
	p, err := s.backend.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleCreateProperty(w http.ResponseWriter, r *http.Request) {
	var in domain.PropertyInput
	if err := parseJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	p, err := s.backend.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleUpdateProperty(w http.ResponseWriter, r *http.Request) {
	var patch domain.PropertyPatch
	if err := parseJSON(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	p, err := s.backend.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProperty(w http.ResponseWriter, r *http.Request) {
	if err := s.backend.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- tenants ---

func (s *Server) handleListTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := s.backend.Tenants().List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tenants)
}

func (s *Server) handleGetTenant(w http.ResponseWriter, r *http.Request) {
	t, err := s.backend.Tenants().Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleCreateTenant(w http.ResponseWriter, r *http.Request) {
	var in domain.TenantInput
	if err := parseJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	t, err := s.backend.Tenants().Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) handleUpdateTenant(w http.ResponseWriter, r *http.Request) {
	var patch domain.TenantPatch
	if err := parseJSON(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	t, err := s.backend.Tenants().Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleDeleteTenant(w http.ResponseWriter, r *http.Request) {
	if err := s.backend.Tenants().Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- contracts ---

func (s *Server) handleListContracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := s.backend.Contracts().List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contracts)
}

func (s *Server) handleGetContract(w http.ResponseWriter, r *http.Request) {
	c, err := s.backend.Contracts().Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleCreateContract(w http.ResponseWriter, r *http.Request) {
	var in domain.ContractInput
	if err := parseJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	c, err := s.backend.Contracts().Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleUpdateContract(w http.ResponseWriter, r *http.Request) {
	var patch domain.ContractPatch
	if err := parseJSON(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	c, err := s.backend.Contracts().Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteContract(w http.ResponseWriter, r *http.Request) {
	if err := s.backend.Contracts().Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- property types ---

func (s *Server) handleListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := s.backend.PropertyTypes().List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types)
}

func (s *Server) handleGetType(w http.ResponseWriter, r *http.Request) {
	t, err := s.backend.PropertyTypes().Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleCreateType(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	t, err := s.backend.PropertyTypes().Create(r.Context(), body.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) handleUpdateType(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	t, err := s.backend.PropertyTypes().Update(r.Context(), r.PathValue("id"), body.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleDeleteType(w http.ResponseWriter, r *http.Request) {
	if err := s.backend.PropertyTypes().Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
