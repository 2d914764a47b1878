package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alaama/backend/internal/model"
	"github.com/alaama/backend/internal/repository"
	"github.com/alaama/backend/internal/service"
)

// CMSHandler handles the admin CRUD surface for services and case studies.
// Authentication is enforced by middleware on the route table.
type CMSHandler struct {
	cms service.CMSService
}

// NewCMSHandler creates a CMSHandler with the given service.
func NewCMSHandler(cms service.CMSService) *CMSHandler {
	return &CMSHandler{cms: cms}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// boolQuery parses a boolean query param, defaulting when absent.
func boolQuery(r *http.Request, name string, def bool) bool {
	switch r.URL.Query().Get(name) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	default:
		return def
	}
}

// ---------------------------------------------------------------------------
// Services
// ---------------------------------------------------------------------------

// createServiceRequest is the expected JSON body for POST /api/cms/services.
type createServiceRequest struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Outcomes    []string `json:"outcomes"`
	Order       int      `json:"order"`
	Active      *bool    `json:"active"`
}

func (req *createServiceRequest) validate() string {
	switch {
	case req.Title == "" || len([]rune(req.Title)) > 200:
		return "title_invalid"
	case req.Subtitle == "" || len([]rune(req.Subtitle)) > 300:
		return "subtitle_invalid"
	case req.Description == "" || len([]rune(req.Description)) > 1000:
		return "description_invalid"
	case req.Icon == "" || len([]rune(req.Icon)) > 50:
		return "icon_invalid"
	case len(req.Outcomes) < 1 || len(req.Outcomes) > 10:
		return "outcomes_invalid"
	}
	return ""
}

// ListServices handles GET /api/cms/services. active_only defaults to true.
func (h *CMSHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	opts := model.ServiceListOptions{ActiveOnly: boolQuery(r, "active_only", true)}
	services, err := h.cms.ListServices(r.Context(), opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if services == nil {
		services = []*model.Service{}
	}
	writeJSON(w, http.StatusOK, services)
}

// GetService handles GET /api/cms/services/{id}.
func (h *CMSHandler) GetService(w http.ResponseWriter, r *http.Request) {
	svc, err := h.cms.GetService(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "fetch_failed")
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// CreateService handles POST /api/cms/services.
func (h *CMSHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req createServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if code := req.validate(); code != "" {
		writeError(w, http.StatusUnprocessableEntity, code)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	svc := &model.Service{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Icon:        req.Icon,
		Outcomes:    req.Outcomes,
		Order:       req.Order,
		Active:      active,
	}
	if err := h.cms.CreateService(r.Context(), svc); err != nil {
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, svc)
}

// UpdateService handles PUT /api/cms/services/{id}. Only the provided fields
// are changed.
func (h *CMSHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var upd model.ServiceUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	svc, err := h.cms.UpdateService(r.Context(), r.PathValue("id"), upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// DeleteService handles DELETE /api/cms/services/{id}.
func (h *CMSHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.cms.DeleteService(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Service deleted successfully"})
}

// ---------------------------------------------------------------------------
// Case studies
// ---------------------------------------------------------------------------

// createCaseStudyRequest is the expected JSON body for POST /api/cms/case-studies.
type createCaseStudyRequest struct {
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Subtitle  string   `json:"subtitle"`
	Challenge string   `json:"challenge"`
	Position  string   `json:"position"`
	Identity  []string `json:"identity"`
	Execution []string `json:"execution"`
	Impact    []string `json:"impact"`
	Image     *string  `json:"image"`
	Featured  bool     `json:"featured"`
	Order     int      `json:"order"`
	Active    *bool    `json:"active"`
}

func (req *createCaseStudyRequest) validate() string {
	switch {
	case req.Title == "" || len([]rune(req.Title)) > 200:
		return "title_invalid"
	case req.Category == "" || len([]rune(req.Category)) > 100:
		return "category_invalid"
	case req.Subtitle == "" || len([]rune(req.Subtitle)) > 300:
		return "subtitle_invalid"
	case req.Challenge == "" || len([]rune(req.Challenge)) > 2000:
		return "challenge_invalid"
	case req.Position == "" || len([]rune(req.Position)) > 2000:
		return "position_invalid"
	case len(req.Identity) < 1 || len(req.Identity) > 10:
		return "identity_invalid"
	case len(req.Execution) < 1 || len(req.Execution) > 10:
		return "execution_invalid"
	case len(req.Impact) < 1 || len(req.Impact) > 10:
		return "impact_invalid"
	case req.Image != nil && len([]rune(*req.Image)) > 500:
		return "image_invalid"
	}
	return ""
}

// ListCaseStudies handles GET /api/cms/case-studies. active_only defaults to
// true, featured_only to false.
func (h *CMSHandler) ListCaseStudies(w http.ResponseWriter, r *http.Request) {
	opts := model.CaseStudyListOptions{
		ActiveOnly:   boolQuery(r, "active_only", true),
		FeaturedOnly: boolQuery(r, "featured_only", false),
	}
	studies, err := h.cms.ListCaseStudies(r.Context(), opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if studies == nil {
		studies = []*model.CaseStudy{}
	}
	writeJSON(w, http.StatusOK, studies)
}

// GetCaseStudy handles GET /api/cms/case-studies/{id}.
func (h *CMSHandler) GetCaseStudy(w http.ResponseWriter, r *http.Request) {
	cs, err := h.cms.GetCaseStudy(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "fetch_failed")
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

// CreateCaseStudy handles POST /api/cms/case-studies.
func (h *CMSHandler) CreateCaseStudy(w http.ResponseWriter, r *http.Request) {
	var req createCaseStudyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if code := req.validate(); code != "" {
		writeError(w, http.StatusUnprocessableEntity, code)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	cs := &model.CaseStudy{
		Title:     req.Title,
		Category:  req.Category,
		Subtitle:  req.Subtitle,
		Challenge: req.Challenge,
		Position:  req.Position,
		Identity:  req.Identity,
		Execution: req.Execution,
		Impact:    req.Impact,
		Image:     req.Image,
		Featured:  req.Featured,
		Order:     req.Order,
		Active:    active,
	}
	if err := h.cms.CreateCaseStudy(r.Context(), cs); err != nil {
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, cs)
}

// UpdateCaseStudy handles PUT /api/cms/case-studies/{id}.
func (h *CMSHandler) UpdateCaseStudy(w http.ResponseWriter, r *http.Request) {
	var upd model.CaseStudyUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	cs, err := h.cms.UpdateCaseStudy(r.Context(), r.PathValue("id"), upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

// DeleteCaseStudy handles DELETE /api/cms/case-studies/{id}.
func (h *CMSHandler) DeleteCaseStudy(w http.ResponseWriter, r *http.Request) {
	if err := h.cms.DeleteCaseStudy(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Case study deleted successfully"})
}
