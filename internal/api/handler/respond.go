package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bettergovph/open-monitoring/internal/domain"
)

// respondJSON writes v as compact JSON with no trailing newline, so fixed
// payloads produce the same bytes on every call.
func respondJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// mapError translates domain sentinel errors to HTTP status codes.
// All mapping lives here so individual handlers stay concise.
func mapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		respondError(w, http.StatusTooManyRequests, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// RateLimited is the rejection handler given to the rate-limit middleware.
func RateLimited(w http.ResponseWriter, r *http.Request) {
	mapError(w, domain.ErrRateLimited)
}
