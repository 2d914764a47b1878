package model

import "time"

// ContactSubmission is a stored contact form submission.
// EmailSent/EmailSentAt record the outcome of the admin notification and are
// patched exactly once, after the submission row already exists.
type ContactSubmission struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Company     *string    `json:"company,omitempty"`
	Message     string     `json:"message"`
	IPAddress   string     `json:"ip_address"`
	UserAgent   string     `json:"user_agent"`
	SubmittedAt time.Time  `json:"submitted_at"`
	EmailSent   bool       `json:"email_sent"`
	EmailSentAt *time.Time `json:"email_sent_at,omitempty"`
}

// SubmitContact carries a validated contact form submission into the service,
// together with the request provenance captured by the handler.
type SubmitContact struct {
	Name      string
	Email     string
	Company   *string
	Message   string
	Honeypot  string
	IPAddress string
	UserAgent string
}

// ContactSubmissionResult is the synchronous response for POST /api/contact.
// ID is null for spam-filtered submissions; the body shape is identical either
// way so automated submitters get no signal.
type ContactSubmissionResult struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	ID      *string `json:"id"`
}

// SubmissionListOptions carries pagination parameters for the admin listing.
type SubmissionListOptions struct {
	Skip  int
	Limit int
}
