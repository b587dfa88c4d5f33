package middleware

import (
	"encoding/json"
	"net/http"
)

// errorBody matches the envelope the REST handlers use, so clients see one
// error shape whether a request fails in middleware or in a handler.
type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: message})
}
