// Package transport renders the API's JSON responses. Every handler reply,
// success or failure, goes through these two helpers so the wizard frontend
// can rely on one envelope shape.
package transport

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the failure envelope. Details carries per-field problems,
// e.g. the missing pieces reported when a booking is submitted incomplete.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, message string, details map[string]string) {
	WriteJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
