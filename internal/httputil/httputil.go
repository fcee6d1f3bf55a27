// Package httputil provides shared JSON request/response helpers.
package httputil

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes data as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError writes a JSON error body with the given status.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"error": msg})
}

// DecodeJSON decodes the request body into dst, rejecting unknown fields. On
// failure it writes a 400 response and returns false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// BadRequest writes a 400 response.
func BadRequest(w http.ResponseWriter, msg string) {
	WriteError(w, http.StatusBadRequest, msg)
}

// NotFound writes a 404 response.
func NotFound(w http.ResponseWriter, msg string) {
	WriteError(w, http.StatusNotFound, msg)
}

// Unavailable writes a 503 response.
func Unavailable(w http.ResponseWriter, msg string) {
	WriteError(w, http.StatusServiceUnavailable, msg)
}

// InternalError writes a 500 response.
func InternalError(w http.ResponseWriter, msg string) {
	WriteError(w, http.StatusInternalServerError, msg)
}
