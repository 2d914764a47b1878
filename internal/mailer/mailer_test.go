package mailer

import (
	"testing"
	"time"

	"github.com/alaama/backend/internal/model"
)

func TestNotifyAdmin_UnconfiguredCredentials(t *testing.T) {
	m := New(Config{Host: "smtp.example.com", Port: 587, NotifyTo: "ops@example.com"})

	sub := &model.ContactSubmission{ID: "abc", Name: "Alice", Email: "alice@example.com"}
	if m.NotifyAdmin(sub) {
		t.Error("NotifyAdmin should report false when credentials are unset")
	}
	if m.NotifyApplicant(sub) {
		t.Error("NotifyApplicant should report false when credentials are unset")
	}
}

func TestNotifyAdmin_TransportErrorAbsorbed(t *testing.T) {
	// Credentials present but no SMTP server listening: the dial fails and the
	// mailer must absorb it instead of panicking or blocking.
	m := New(Config{
		Host:     "127.0.0.1",
		Port:     1, // nothing listens here
		Username: "user",
		Password: "pass",
		NotifyTo: "ops@example.com",
		Timeout:  200 * time.Millisecond,
	})

	sub := &model.ContactSubmission{ID: "abc", Name: "Alice", Email: "alice@example.com", Message: "hello there"}

	done := make(chan bool, 1)
	go func() { done <- m.NotifyAdmin(sub) }()

	select {
	case ok := <-done:
		if ok {
			t.Error("NotifyAdmin should report false when the transport is unreachable")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("NotifyAdmin did not return within the transport timeout")
	}
}

func TestNew_DefaultTimeout(t *testing.T) {
	m := New(Config{Host: "smtp.example.com", Port: 587}).(*smtpMailer)
	if m.cfg.Timeout != 10*time.Second {
		t.Errorf("expected default timeout of 10s, got %v", m.cfg.Timeout)
	}
}
