package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ampta/resumecraft-backend/internal/models"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// writeError maps a domain error kind to an HTTP status. Internal detail is
// logged but never sent to the caller.
func writeError(w http.ResponseWriter, err error) {
	kind := models.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case models.KindConflict:
		status = http.StatusConflict
	case models.KindNotFound:
		status = http.StatusNotFound
	case models.KindUnauthorized:
		status = http.StatusUnauthorized
	case models.KindExpired, models.KindInvalidArgument:
		status = http.StatusBadRequest
	}

	message := "Something went wrong. Please try again later."
	if apiErr, ok := err.(*models.APIError); ok && kind != models.KindUnexpected && kind != models.KindDependencyFailure {
		message = apiErr.Message
	}
	if status == http.StatusInternalServerError {
		log.Printf("request failed: %v", err)
	}

	writeJSON(w, status, errorResponse{Error: string(kind), Message: message})
}
