package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/alaama/backend/internal/model"
	"github.com/alaama/backend/internal/service"
)

const (
	nameMaxLength    = 100
	companyMaxLength = 100
	messageMinLength = 10
	messageMaxLength = 2000
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ContactHandler handles the public contact form and the admin listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Company  *string `json:"company"`
	Message  string  `json:"message"`
	Honeypot string  `json:"honeypot"`
}

// validate returns an error code for the first violated field constraint, or
// "" when the request is valid.
func (req *submitRequest) validate() string {
	switch {
	case req.Name == "":
		return "name_required"
	case len([]rune(req.Name)) > nameMaxLength:
		return "name_too_long"
	case !emailRegex.MatchString(req.Email):
		return "email_invalid"
	case req.Company != nil && len([]rune(*req.Company)) > companyMaxLength:
		return "company_too_long"
	case len([]rune(req.Message)) < messageMinLength:
		return "message_too_short"
	case len([]rune(req.Message)) > messageMaxLength:
		return "message_too_long"
	}
	return ""
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if code := req.validate(); code != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
		return
	}

	result, err := h.contactService.Submit(r.Context(), model.SubmitContact{
		Name:      req.Name,
		Email:     req.Email,
		Company:   req.Company,
		Message:   req.Message,
		Honeypot:  req.Honeypot,
		IPAddress: clientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		if errors.Is(err, service.ErrRateLimited) {
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "too_many_requests"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "submit_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

// submissionListResponse is the JSON response for GET /api/contact/submissions.
type submissionListResponse struct {
	Submissions []*model.ContactSubmission `json:"submissions"`
	Total       int                        `json:"total"`
	Skip        int                        `json:"skip"`
	Limit       int                        `json:"limit"`
}

// AdminList handles GET /api/contact/submissions (admin only, JWT enforced by
// middleware). Supports query params: skip, limit.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	opts := model.SubmissionListOptions{Skip: 0, Limit: 50}
	if s := r.URL.Query().Get("skip"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			opts.Skip = n
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			opts.Limit = n
		}
	}

	submissions, total, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty lists
	if submissions == nil {
		submissions = []*model.ContactSubmission{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(submissionListResponse{
		Submissions: submissions,
		Total:       total,
		Skip:        opts.Skip,
		Limit:       opts.Limit,
	})
}
