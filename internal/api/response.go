package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// respond writes the uniform response envelope: status, message, and timestamp,
// merged with any endpoint-specific fields.
func respond(w http.ResponseWriter, code int, status, message string, extra map[string]any) {
	payload := map[string]any{
		"status":    status,
		"message":   message,
		"timestamp": time.Now(),
	}
	for k, v := range extra {
		payload[k] = v
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// respondSuccess writes a successful envelope.
func respondSuccess(w http.ResponseWriter, code int, message string, extra map[string]any) {
	respond(w, code, "successful", message, extra)
}

// respondFailure writes a failed envelope.
func respondFailure(w http.ResponseWriter, code int, message string) {
	respond(w, code, "failed", message, nil)
}

// respondValidation writes a failed envelope carrying every violated rule.
func respondValidation(w http.ResponseWriter, errs []string) {
	respond(w, http.StatusBadRequest, "failed", "Validation errors", map[string]any{"errors": errs})
}

// respondInternal converts an unexpected error into a 500 envelope, echoing
// the error detail to the caller.
func respondInternal(w http.ResponseWriter, err error) {
	slog.Error("internal error", "error", err)
	respond(w, http.StatusInternalServerError, "failed", "Error: "+err.Error(), nil)
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
