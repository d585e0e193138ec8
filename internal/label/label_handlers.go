package label

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

type LabelHandlers struct {
	service *LabelService
	logger  *log.Logger
}

func NewLabelHandlers(service *LabelService, logger *log.Logger) *LabelHandlers {
	return &LabelHandlers{service: service, logger: logger}
}

func (h *LabelHandlers) GetAll(w http.ResponseWriter, r *http.Request) {
	labels, err := h.service.GetAll(r.Context())
	if err != nil {
		httpx.RespondError(w, h.logger, err, "error retrieving all labels")
		return
	}
	if labels == nil {
		labels = []*models.Label{}
	}
	httpx.RespondJSON(w, http.StatusOK, labels)
}

func (h *LabelHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid label ID")
		return
	}

	label, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, h.logger, err, "error retrieving label")
		return
	}
	if label == nil {
		httpx.RespondErrorMessage(w, http.StatusNotFound, fmt.Sprintf("Label with ID %d not found", id))
		return
	}
	httpx.RespondJSON(w, http.StatusOK, label)
}

func (h *LabelHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.Label
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	payload.ID = 0

	if err := h.service.Save(r.Context(), &payload); err != nil {
		httpx.RespondError(w, h.logger, err, "error creating label")
		return
	}
	httpx.RespondJSON(w, http.StatusCreated, payload)
}

func (h *LabelHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid label ID")
		return
	}

	var payload models.Label
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if payload.ID != 0 && payload.ID != id {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "ID in URL does not match ID in request body")
		return
	}
	payload.ID = id

	if err := h.service.Save(r.Context(), &payload); err != nil {
		httpx.RespondError(w, h.logger, err, "error updating label")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, payload)
}

func (h *LabelHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.RespondErrorMessage(w, http.StatusBadRequest, "Invalid label ID")
		return
	}

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, h.logger, err, "error deleting label")
		return
	}
	if !deleted {
		httpx.RespondErrorMessage(w, http.StatusNotFound, fmt.Sprintf("Label with ID %d not found", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
