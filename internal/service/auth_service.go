package service

import (
	"context"
	"errors"

	"github.com/alaama/backend/internal/model"
)

// ErrInvalidCredentials is returned by Login for an unknown username or a
// wrong password; callers must not be able to tell which.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUserExists is returned by Register when the username or email is taken.
var ErrUserExists = errors.New("username or email already registered")

// RegisterAdmin carries the input for creating an admin account.
type RegisterAdmin struct {
	Username string
	Email    string
	Password string
	Role     string
}

// AuthService handles admin registration and token issuance.
type AuthService interface {
	// Register creates a new admin account with a hashed password.
	Register(ctx context.Context, in RegisterAdmin) (*model.AdminUser, error)

	// Login verifies credentials, stamps last_login, and returns a signed
	// access token.
	Login(ctx context.Context, username, password string) (string, error)

	// GetUser returns the admin account for an authenticated username.
	GetUser(ctx context.Context, username string) (*model.AdminUser, error)
}
