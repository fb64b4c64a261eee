package middleware

import (
	"encoding/json"
	"net/http"
)

func errorResponse(w http.ResponseWriter, status int, message any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(map[string]any{"error": message}); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}
