package stubapi

import (
	"encoding/json"
	"net/http"

	"rentdesk/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain error kinds onto HTTP statuses and emits the
// `{"error": message}` envelope the real backend uses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case domain.IsValidation(err):
		status = http.StatusBadRequest
	case domain.IsConflict(err):
		status = http.StatusConflict
	case domain.IsNotFound(err):
		status = http.StatusNotFound
	case domain.IsTransport(err):
		status = http.StatusUnauthorized
	}
	writeJSON(w, status, map[string]any{"error": domain.UserMessage(err, "internal error")})
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return domain.Validationf("invalid json: %v", err)
	}
	return nil
}

func unauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthorized"})
}

func forbidden(w http.ResponseWriter) {
	writeJSON(w, http.StatusForbidden, map[string]any{"error": "forbidden"})
}
