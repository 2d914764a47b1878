package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/alaama/backend/internal/mailer"
	"github.com/alaama/backend/internal/model"
	"github.com/alaama/backend/internal/repository"
	"github.com/alaama/backend/internal/worker"
	"github.com/google/uuid"
)

const thankYouMessage = "Thank you for your message. We'll get back to you within 24 hours!"

// admitFunc abstracts the rate limiter so tests can inject their own.
type admitFunc func(key string, now time.Time) bool

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo   repository.SubmissionRepository
	mailer mailer.Mailer
	tasks  worker.Dispatcher
	admit  admitFunc
	now    func() time.Time
}

// NewContactService creates a ContactService. admit is the rate limiter's
// Admit method; tasks runs the notification dispatch off the request path.
func NewContactService(repo repository.SubmissionRepository, m mailer.Mailer, tasks worker.Dispatcher, admit func(key string, now time.Time) bool) ContactService {
	return &contactServiceImpl{
		repo:   repo,
		mailer: m,
		tasks:  tasks,
		admit:  admit,
		now:    time.Now,
	}
}

// Submit runs the submission pipeline. Order matters: the rate check happens
// before any state is created, the honeypot check before persistence, and the
// notification job is enqueued only after the insert succeeded.
func (s *contactServiceImpl) Submit(ctx context.Context, in model.SubmitContact) (*model.ContactSubmissionResult, error) {
	now := s.now().UTC()

	if !s.admit(in.IPAddress, now) {
		return nil, ErrRateLimited
	}

	if in.Honeypot != "" {
		// Automated submitters get the same success body as everyone else so
		// they cannot tell they were filtered.
		slog.Warn("spam attempt detected", "ip", in.IPAddress)
		return &model.ContactSubmissionResult{
			Success: true,
			Message: thankYouMessage,
			ID:      nil,
		}, nil
	}

	sub := &model.ContactSubmission{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Email:       in.Email,
		Company:     in.Company,
		Message:     in.Message,
		IPAddress:   in.IPAddress,
		UserAgent:   in.UserAgent,
		SubmittedAt: now,
		EmailSent:   false,
	}
	if err := s.repo.Save(ctx, sub); err != nil {
		return nil, err
	}

	if !s.tasks.Enqueue(func(ctx context.Context) { s.notify(ctx, sub) }) {
		slog.Warn("notification queue full, emails skipped", "submission_id", sub.ID)
	}

	return &model.ContactSubmissionResult{
		Success: true,
		Message: thankYouMessage,
		ID:      &sub.ID,
	}, nil
}

// notify sends both emails and records the admin-notification outcome on the
// stored submission. The applicant acknowledgment result is logged only.
// Everything here is best-effort: the HTTP response has already been sent.
func (s *contactServiceImpl) notify(ctx context.Context, sub *model.ContactSubmission) {
	adminSent := s.mailer.NotifyAdmin(sub)
	applicantSent := s.mailer.NotifyApplicant(sub)

	var sentAt *time.Time
	if adminSent {
		t := s.now().UTC()
		sentAt = &t
	}
	if err := s.repo.MarkEmailSent(ctx, sub.ID, adminSent, sentAt); err != nil {
		slog.Error("failed to record email delivery status",
			"submission_id", sub.ID, "error", err)
	}

	slog.Info("notification dispatch finished",
		"submission_id", sub.ID, "admin_sent", adminSent, "applicant_sent", applicantSent)
}

// List returns stored submissions for the admin dashboard.
func (s *contactServiceImpl) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, int, error) {
	return s.repo.List(ctx, opts)
}
