package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/alaama/backend/internal/model"
	"github.com/alaama/backend/internal/repository"
	"github.com/google/uuid"
)

// StatusHandler serves the legacy status-check endpoints kept for the uptime
// monitor that predates the CMS.
type StatusHandler struct {
	repo repository.StatusRepository
}

// NewStatusHandler creates a StatusHandler with the given repository.
func NewStatusHandler(repo repository.StatusRepository) *StatusHandler {
	return &StatusHandler{repo: repo}
}

// createStatusRequest is the expected JSON body for POST /api/status.
type createStatusRequest struct {
	ClientName string `json:"client_name"`
}

// Create handles POST /api/status.
func (h *StatusHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ClientName == "" {
		writeError(w, http.StatusBadRequest, "client_name_required")
		return
	}

	check := &model.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := h.repo.Save(r.Context(), check); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	writeJSON(w, http.StatusOK, check)
}

// List handles GET /api/status.
func (h *StatusHandler) List(w http.ResponseWriter, r *http.Request) {
	checks, err := h.repo.List(r.Context(), 1000)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if checks == nil {
		checks = []*model.StatusCheck{}
	}
	writeJSON(w, http.StatusOK, checks)
}
