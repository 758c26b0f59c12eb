package httpapi

import (
	"encoding/json"
	"net/http"

	"eventd/internal/app"
	"eventd/pkg/types"
)

// statusFor maps dispatch errors to HTTP status codes. Only factory and
// missing-handler errors leave a dispatch; anything else is a 500.
func statusFor(err error) int {
	if app.IsMissingHandler(err) {
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}
