// Package httputil centralizes JSON response rendering so every handler emits
// the same envelopes.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "attest/pkg/domain-errors"
)

// WriteJSON renders v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the shared error envelope.
// Internal-class errors omit the description so raw failure details never
// reach clients; user-correctable errors include it.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status := dErrors.ToHTTPStatus(code)

	body := map[string]string{
		"error": string(code),
	}
	if status < http.StatusInternalServerError {
		body["error_description"] = dErrors.MessageOf(err)
	}

	WriteJSON(w, status, body)
}
