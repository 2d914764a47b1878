package handler

import (
	"net/http"

	"github.com/alaama/backend/internal/model"
	"github.com/alaama/backend/internal/service"
)

// PublicConfig is the static configuration exposed to the public website.
type PublicConfig struct {
	GAMeasurementID string `json:"ga_measurement_id"`
	CalendlyLink    string `json:"calendly_link"`
	ContactEmail    string `json:"contact_email"`
	Instagram       string `json:"instagram"`
	Website         string `json:"website"`
}

// PublicHandler serves the unauthenticated read API for the website.
type PublicHandler struct {
	cms service.CMSService
	cfg PublicConfig
}

// NewPublicHandler creates a PublicHandler with the given service and config.
func NewPublicHandler(cms service.CMSService, cfg PublicConfig) *PublicHandler {
	return &PublicHandler{cms: cms, cfg: cfg}
}

// Services handles GET /api/public/services: active services, order ascending.
func (h *PublicHandler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.cms.ListServices(r.Context(), model.ServiceListOptions{ActiveOnly: true})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if services == nil {
		services = []*model.Service{}
	}
	writeJSON(w, http.StatusOK, services)
}

// CaseStudies handles GET /api/public/case-studies: active case studies,
// optionally featured only.
func (h *PublicHandler) CaseStudies(w http.ResponseWriter, r *http.Request) {
	opts := model.CaseStudyListOptions{
		ActiveOnly:   true,
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

// Config handles GET /api/public/config.
func (h *PublicHandler) Config(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cfg)
}
