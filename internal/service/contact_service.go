package service

import (
	"context"
	"errors"

	"github.com/alaama/backend/internal/model"
)

// ErrRateLimited is returned by Submit when the client exceeded the contact
// form rate limit. No submission is created in that case.
var ErrRateLimited = errors.New("rate limit exceeded")

// ContactService runs the contact submission pipeline: rate check, honeypot
// check, persistence, and fire-and-forget notification dispatch.
type ContactService interface {
	// Submit processes one contact form submission. The returned result is
	// what the HTTP handler sends back; the notification emails are sent in
	// the background after Submit returns.
	Submit(ctx context.Context, in model.SubmitContact) (*model.ContactSubmissionResult, error)

	// List returns stored submissions newest first, plus the total count.
	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, int, error)
}
