package auth

import (
	"testing"
	"time"
)

var testSecret = []byte("test-secret-0123456789abcdef0123")

func TestCreateAndVerifyAccessToken(t *testing.T) {
	token, err := CreateAccessToken("admin", testSecret, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	username, err := VerifyAccessToken(token, testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if username != "admin" {
		t.Errorf("expected username=admin, got %q", username)
	}
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	token, err := CreateAccessToken("admin", testSecret, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := VerifyAccessToken(token, []byte("another-secret-that-is-32-bytes!")); err == nil {
		t.Error("expected verification to fail with a different secret")
	}
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	issued := time.Now().Add(-TokenTTL - time.Minute)
	token, err := CreateAccessToken("admin", testSecret, issued)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := VerifyAccessToken(token, testSecret); err != ErrExpiredToken {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestVerifyAccessToken_Garbage(t *testing.T) {
	if _, err := VerifyAccessToken("not.a.token", testSecret); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
