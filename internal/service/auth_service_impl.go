package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/alaama/backend/internal/model"
	"github.com/alaama/backend/internal/repository"
	"github.com/alaama/backend/pkg/auth"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// authServiceImpl is the production implementation of AuthService.
type authServiceImpl struct {
	repo   repository.AdminUserRepository
	secret []byte
	now    func() time.Time
}

// NewAuthService creates an AuthService signing tokens with the given secret.
func NewAuthService(repo repository.AdminUserRepository, secret []byte) AuthService {
	return &authServiceImpl{repo: repo, secret: secret, now: time.Now}
}

// Register creates a new admin account. The password is bcrypt-hashed and the
// hash never appears in the returned value's JSON form.
func (s *authServiceImpl) Register(ctx context.Context, in RegisterAdmin) (*model.AdminUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = "admin"
	}
	user := &model.AdminUser{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	slog.Info("admin user created", "username", user.Username)
	return user, nil
}

// Login verifies credentials and returns a bearer token valid for
// auth.TokenTTL.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	if err := s.repo.UpdateLastLogin(ctx, user.ID, s.now().UTC()); err != nil {
		// A missed last_login stamp is not worth failing the login over.
		slog.Error("failed to update last_login", "username", username, "error", err)
	}

	token, err := auth.CreateAccessToken(user.Username, s.secret, s.now())
	if err != nil {
		return "", err
	}

	slog.Info("admin logged in", "username", username)
	return token, nil
}

// GetUser returns the account behind an authenticated username.
func (s *authServiceImpl) GetUser(ctx context.Context, username string) (*model.AdminUser, error) {
	return s.repo.FindByUsername(ctx, username)
}
