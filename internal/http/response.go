package httpapi

import (
	"encoding/json"
	"net/http"
)

// Envelope wraps every JSON API response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Error   string `json:"error,omitempty"`
}

// NewEnvelope builds a response body. Success is reported only when no
// error is set, whatever the caller asked for.
func NewEnvelope(data any, message string, success bool, errMsg string) Envelope {
	return Envelope{
		Success: success && errMsg == "",
		Message: message,
		Data:    data,
		Error:   errMsg,
	}
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteEnvelope(w http.ResponseWriter, status int, env Envelope) {
	WriteJSON(w, status, env)
}

func WriteData(w http.ResponseWriter, data any, message string) {
	WriteEnvelope(w, http.StatusOK, NewEnvelope(data, message, true, ""))
}

func WriteError(w http.ResponseWriter, status int, errMsg, message string) {
	WriteEnvelope(w, status, NewEnvelope(nil, message, false, errMsg))
}
