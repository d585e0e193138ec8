package project

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"flowdeck-api/internal/httpx"
	"flowdeck-api/models"

	"github.com/gorilla/mux"
)

type ProjectHandlers struct {
	service *ProjectService
	logger  *log.Logger
}

func NewProjectHandlers(service *ProjectService, logger *log.Logger) *ProjectHandlers {
	return &ProjectHandlers{service: service, logger: logger}
}

func (h *ProjectHandlers) GetAll(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.GetAll(r.Context())
	if err != nil {
		httpx.RespondError(w, h.logger, err, "error retrieving all projects")
		return
	}
	if projects == nil {
		projects = []*models.Project{}
	}
	httpx.RespondJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, h.logger, err, "error retrieving project")
		return
	}
	if project == nil {
		httpx.RespondErrorMessage(w, http.StatusNotFound, fmt.Sprintf("Project with ID %d not found", id))
		return
	}
	httpx.RespondJSON(w, http.StatusOK, project)
}

func (h *ProjectHandlers) GetByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "userId")
	if err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	projects, err := h.service.GetByUserID(r.Context(), userID)
	if err != nil {
		httpx.RespondError(w, h.logger, err, "error retrieving user projects")
		return
	}
	if projects == nil {
		projects = []*models.Project{}
	}
	httpx.RespondJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.Project
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	payload.ID = 0

	if err := h.service.Save(r.Context(), &payload); err != nil {
		httpx.RespondError(w, h.logger, err, "error creating project")
		return
	}
	httpx.RespondJSON(w, http.StatusCreated, payload)
}

func (h *ProjectHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var payload models.Project
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if id != payload.ID {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "ID in URL does not match ID in request body")
		return
	}

	if err := h.service.Save(r.Context(), &payload); err != nil {
		httpx.RespondError(w, h.logger, err, "error updating project")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, payload)
}

func (h *ProjectHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, h.logger, err, "error deleting project")
		return
	}
	if !deleted {
		httpx.RespondErrorMessage(w, http.StatusNotFound, fmt.Sprintf("Project with ID %d not found", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProjectHandlers) CheckName(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	userID, err := pathInt64(r, "userId")
	if err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	exists, err := h.service.NameExistsForUser(r.Context(), name, userID)
	if err != nil {
		httpx.RespondError(w, h.logger, err, "error checking project name")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, exists)
}

func (h *ProjectHandlers) Exists(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	exists, err := h.service.Exists(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, h.logger, err, "error checking project existence")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, exists)
}

func pathInt64(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}
