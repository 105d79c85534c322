package playlist

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Envelope is the uniform success wrapper returned by every operation.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
}

// ErrorEnvelope is the uniform failure wrapper.
type ErrorEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Kind       string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeEnvelope(w http.ResponseWriter, status int, data any, msg string) {
	writeJSON(w, status, Envelope{StatusCode: status, Data: data, Message: msg})
}

func writeError(w http.ResponseWriter, status int, msg string, kind string) {
	writeJSON(w, status, ErrorEnvelope{StatusCode: status, Message: msg, Kind: kind})
}

// writeAPIError is the single error-to-response translator: every typed
// service error renders through here, so no handler repeats envelope logic.
func writeAPIError(w http.ResponseWriter, err error) {
	var ae *apiError
	if errors.As(err, &ae) {
		writeError(w, ae.status, ae.msg, ae.kind)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal error", kindOperation)
}
