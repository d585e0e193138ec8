package user

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"flowdeck-api/internal/httpx"
	"flowdeck-api/models"

	"github.com/gorilla/mux"
)

type UserHandlers struct {
	service *UserService
	logger  *log.Logger
}

func NewUserHandlers(service *UserService, logger *log.Logger) *UserHandlers {
	return &UserHandlers{service: service, logger: logger}
}

func (h *UserHandlers) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAll(r.Context())
	if err != nil {
		httpx.RespondError(w, h.logger, err, "error retrieving all users")
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	httpx.RespondJSON(w, http.StatusOK, users)
}

func (h *UserHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, h.logger, err, "error retrieving user")
		return
	}
	if user == nil {
		httpx.RespondErrorMessage(w, http.StatusNotFound, "User with ID "+strconv.FormatInt(id, 10)+" not found")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, user)
}

func (h *UserHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.User
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	payload.ID = 0

	if err := h.service.Save(r.Context(), &payload); err != nil {
		httpx.RespondError(w, h.logger, err, "error creating user")
		return
	}
	httpx.RespondJSON(w, http.StatusCreated, payload)
}

func (h *UserHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var payload models.User
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if id != payload.ID {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "ID in URL does not match ID in request body")
		return
	}

	if err := h.service.Save(r.Context(), &payload); err != nil {
		httpx.RespondError(w, h.logger, err, "error updating user")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, payload)
}

func (h *UserHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, h.logger, err, "error deleting user")
		return
	}
	if !deleted {
		httpx.RespondErrorMessage(w, http.StatusNotFound, "User with ID "+strconv.FormatInt(id, 10)+" not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandlers) CheckUsername(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	exists, err := h.service.UsernameExists(r.Context(), username)
	if err != nil {
		httpx.RespondError(w, h.logger, err, "error checking username")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, exists)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
