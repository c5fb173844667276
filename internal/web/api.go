package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// writeJSON encodes v with a JSON content type.
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encoding json response", "error", err)
	}
}

// writeJSONError reports a failed operation with enough context to retry.
func writeJSONError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(map[string]string{"error": err.Error()}); encErr != nil {
		slog.Warn("encoding json error response", "error", encErr)
	}
}
