// Package httpx holds the JSON response helpers shared by all handlers,
// including the single place where domain errors are translated into
// HTTP status codes.
package httpx

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"flowdeck-api/models"
)

// RespondJSON writes payload as a JSON body with the given status.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// RespondErrorMessage writes a JSON error envelope with the given status.
func RespondErrorMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"error": message})
}

// RespondError translates a domain error into a status code. Unexpected
// errors are logged with context and masked from the client.
func RespondError(w http.ResponseWriter, logger *log.Logger, err error, context string) {
	var validationErr *models.ValidationError
	var duplicateErr *models.DuplicateError
	var referenceErr *models.ReferenceError
	var notFoundErr *models.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		RespondErrorMessage(w, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &duplicateErr):
		RespondErrorMessage(w, http.StatusBadRequest, duplicateErr.Message)
	case errors.As(err, &referenceErr):
		RespondErrorMessage(w, http.StatusBadRequest, referenceErr.Message)
	case errors.As(err, &notFoundErr):
		RespondErrorMessage(w, http.StatusNotFound, notFoundErr.Message)
	case errors.Is(err, models.ErrAdminDelete):
		RespondErrorMessage(w, http.StatusForbidden, models.ErrAdminDelete.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		RespondErrorMessage(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
	default:
		logger.Printf("%s: %v", context, err)
		RespondErrorMessage(w, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
