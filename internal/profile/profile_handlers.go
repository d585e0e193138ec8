package profile

import (
	"encoding/json"
	"log"
	"net/http"

	"flowdeck-api/internal/httpx"
	"flowdeck-api/middleware"
	"flowdeck-api/models"
)

type ProfileHandlers struct {
	service *ProfileService
	logger  *log.Logger
}

func NewProfileHandlers(service *ProfileService, logger *log.Logger) *ProfileHandlers {
	return &ProfileHandlers{service: service, logger: logger}
}

// Get handles GET /Profile for the bearer token's subject
func (h *ProfileHandlers) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	user, err := h.service.Get(r.Context(), userID)
	if err != nil {
		httpx.RespondError(w, h.logger, err, "error retrieving profile")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, user)
}

// Update handles PUT /Profile. The subject id always wins over any id
// in the body; callers cannot edit other users through this route.
func (h *ProfileHandlers) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var payload models.User
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	payload.ID = userID

	if err := h.service.Save(r.Context(), &payload); err != nil {
		httpx.RespondError(w, h.logger, err, "error updating profile")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, payload)
}

type changePasswordRequest struct {
	Password string `json:"password"`
}

// ChangePassword handles PUT /Profile/Password
func (h *ProfileHandlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var payload changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if payload.Password == "" {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Password cannot be empty")
		return
	}

	if err := h.service.ChangePassword(r.Context(), userID, payload.Password); err != nil {
		httpx.RespondError(w, h.logger, err, "error changing password")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
