package handlers

import (
	"encoding/json"
	"net/http"

	"cleanair-backend/internal/httpx"
	"cleanair-backend/internal/money"
)

func decodeJSON(r *http.Request, v interface{}) error {
	return httpx.DecodeJSON(r.Body, v)
}

func encodeJSON(payload interface{}) ([]byte, error) {
	return json.Marshal(payload)
}

func dollars(c money.Cents) string {
	return "$" + c.String()
}
