package middleware

import (
	"encoding/json"
	"net/http"
	"time"
)

type errorBody struct {
	Success     bool   `json:"success"`
	Error       string `json:"error"`
	GeneratedAt string `json:"generated_at"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error:       msg,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	})
}
