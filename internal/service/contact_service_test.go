package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alaama/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockSubmissionRepository struct {
	saveFunc          func(ctx context.Context, sub *model.ContactSubmission) error
	markEmailSentFunc func(ctx context.Context, id string, sent bool, sentAt *time.Time) error
	listFunc          func(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, int, error)
}

func (m *mockSubmissionRepository) Save(ctx context.Context, sub *model.ContactSubmission) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubmissionRepository) MarkEmailSent(ctx context.Context, id string, sent bool, sentAt *time.Time) error {
	if m.markEmailSentFunc != nil {
		return m.markEmailSentFunc(ctx, id, sent, sentAt)
	}
	return nil
}

func (m *mockSubmissionRepository) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, int, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, 0, nil
}

type mockMailer struct {
	adminResult     bool
	applicantResult bool
	adminCalls      int
	applicantCalls  int
}

func (m *mockMailer) NotifyAdmin(sub *model.ContactSubmission) bool {
	m.adminCalls++
	return m.adminResult
}

func (m *mockMailer) NotifyApplicant(sub *model.ContactSubmission) bool {
	m.applicantCalls++
	return m.applicantResult
}

// inlineDispatcher runs jobs synchronously so tests see their effects
// immediately.
type inlineDispatcher struct {
	full bool
}

func (d *inlineDispatcher) Enqueue(job func(ctx context.Context)) bool {
	if d.full {
		return false
	}
	job(context.Background())
	return true
}

func admitAll(string, time.Time) bool  { return true }
func admitNone(string, time.Time) bool { return false }

func validInput() model.SubmitContact {
	return model.SubmitContact{
		Name:      "Sarah Johnson",
		Email:     "sarah@x.com",
		Message:   "Interested in brand strategy services for our launch.",
		IPAddress: "203.0.113.7",
		UserAgent: "Mozilla/5.0",
	}
}

// ---------------------------------------------------------------------------
// Submit
// ---------------------------------------------------------------------------

func TestContactService_Submit_Success(t *testing.T) {
	var saved *model.ContactSubmission
	repo := &mockSubmissionRepository{
		saveFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
			saved = sub
			return nil
		},
	}
	m := &mockMailer{adminResult: true, applicantResult: true}
	svc := NewContactService(repo, m, &inlineDispatcher{}, admitAll)

	res, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success {
		t.Error("expected success=true")
	}
	if res.Message == "" {
		t.Error("expected a non-empty thank-you message")
	}
	if res.ID == nil {
		t.Fatal("expected a submission id")
	}
	if len(*res.ID) != 36 {
		t.Errorf("expected a 36-char uuid, got %q", *res.ID)
	}
	if saved == nil {
		t.Fatal("expected the submission to be persisted")
	}
	if saved.IPAddress != "203.0.113.7" {
		t.Errorf("expected ip_address to be captured, got %q", saved.IPAddress)
	}
	if saved.UserAgent != "Mozilla/5.0" {
		t.Errorf("expected user_agent to be captured, got %q", saved.UserAgent)
	}
	if saved.EmailSent {
		t.Error("email_sent must start false at persistence time")
	}
}

func TestContactService_Submit_RateLimited(t *testing.T) {
	repo := &mockSubmissionRepository{
		saveFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
			t.Error("no submission may be created for a rate-limited request")
			return nil
		},
	}
	svc := NewContactService(repo, &mockMailer{}, &inlineDispatcher{}, admitNone)

	_, err := svc.Submit(context.Background(), validInput())
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
}

func TestContactService_Submit_HoneypotDisguisedSuccess(t *testing.T) {
	repo := &mockSubmissionRepository{
		saveFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
			t.Error("spam submissions must not be persisted")
			return nil
		},
	}
	m := &mockMailer{adminResult: true}
	svc := NewContactService(repo, m, &inlineDispatcher{}, admitAll)

	in := validInput()
	in.Honeypot = "http://spam.example"
	res, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success {
		t.Error("spam response must look like a success")
	}
	if res.ID != nil {
		t.Errorf("spam response must carry a null id, got %v", *res.ID)
	}
	if m.adminCalls != 0 || m.applicantCalls != 0 {
		t.Error("no notification may be sent for a spam submission")
	}
}

func TestContactService_Submit_PersistenceFailure(t *testing.T) {
	repo := &mockSubmissionRepository{
		saveFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
			return errors.New("connection reset")
		},
	}
	m := &mockMailer{}
	svc := NewContactService(repo, m, &inlineDispatcher{}, admitAll)

	if _, err := svc.Submit(context.Background(), validInput()); err == nil {
		t.Error("expected the persistence error to surface")
	}
	if m.adminCalls != 0 {
		t.Error("no notification may be dispatched when the insert failed")
	}
}

func TestContactService_Submit_QueueFullStillSucceeds(t *testing.T) {
	repo := &mockSubmissionRepository{}
	svc := NewContactService(repo, &mockMailer{}, &inlineDispatcher{full: true}, admitAll)

	res, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success || res.ID == nil {
		t.Error("a full notification queue must not fail the submission")
	}
}

// ---------------------------------------------------------------------------
// Notification dispatch and delivery-status patch
// ---------------------------------------------------------------------------

func TestContactService_Notify_PatchesAdminResultOnly(t *testing.T) {
	var patchedID string
	var patchedSent bool
	var patchedAt *time.Time
	patches := 0
	repo := &mockSubmissionRepository{
		markEmailSentFunc: func(ctx context.Context, id string, sent bool, sentAt *time.Time) error {
			patches++
			patchedID, patchedSent, patchedAt = id, sent, sentAt
			return nil
		},
	}
	// Admin send succeeds, applicant send fails: only the admin result is stored.
	m := &mockMailer{adminResult: true, applicantResult: false}
	svc := NewContactService(repo, m, &inlineDispatcher{}, admitAll)

	res, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patches != 1 {
		t.Fatalf("expected exactly one delivery-status patch, got %d", patches)
	}
	if patchedID != *res.ID {
		t.Errorf("patch targeted %q, expected %q", patchedID, *res.ID)
	}
	if !patchedSent {
		t.Error("email_sent should reflect the successful admin notification")
	}
	if patchedAt == nil {
		t.Error("email_sent_at must be set when email_sent is true")
	}
}

func TestContactService_Notify_AdminFailure(t *testing.T) {
	var patchedSent bool
	var patchedAt *time.Time
	repo := &mockSubmissionRepository{
		markEmailSentFunc: func(ctx context.Context, id string, sent bool, sentAt *time.Time) error {
			patchedSent, patchedAt = sent, sentAt
			return nil
		},
	}
	m := &mockMailer{adminResult: false, applicantResult: true}
	svc := NewContactService(repo, m, &inlineDispatcher{}, admitAll)

	res, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("mail failure must never fail the request: %v", err)
	}
	if !res.Success {
		t.Error("response must already be a success regardless of dispatch outcome")
	}
	if patchedSent {
		t.Error("email_sent should be false when the admin notification failed")
	}
	if patchedAt != nil {
		t.Error("email_sent_at must stay unset when email_sent is false")
	}
}

func TestContactService_Notify_PatchErrorAbsorbed(t *testing.T) {
	repo := &mockSubmissionRepository{
		markEmailSentFunc: func(ctx context.Context, id string, sent bool, sentAt *time.Time) error {
			return errors.New("db gone")
		},
	}
	svc := NewContactService(repo, &mockMailer{adminResult: true}, &inlineDispatcher{}, admitAll)

	if _, err := svc.Submit(context.Background(), validInput()); err != nil {
		t.Errorf("background patch failure must not surface: %v", err)
	}
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestContactService_List(t *testing.T) {
	want := []*model.ContactSubmission{{ID: "a"}, {ID: "b"}}
	repo := &mockSubmissionRepository{
		listFunc: func(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, int, error) {
			if opts.Skip != 10 || opts.Limit != 50 {
				t.Errorf("unexpected options: %+v", opts)
			}
			return want, 42, nil
		},
	}
	svc := NewContactService(repo, &mockMailer{}, &inlineDispatcher{}, admitAll)

	subs, total, err := svc.List(context.Background(), model.SubmissionListOptions{Skip: 10, Limit: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subs) != 2 || total != 42 {
		t.Errorf("unexpected result: %d submissions, total %d", len(subs), total)
	}
}
