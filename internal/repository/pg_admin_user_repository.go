package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alaama/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdminUserRepository defines the persistence interface for admin accounts.
type AdminUserRepository interface {
	Create(ctx context.Context, u *model.AdminUser) error
	FindByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

// PgAdminUserRepository is the PostgreSQL implementation of AdminUserRepository.
type PgAdminUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgAdminUserRepository creates a PgAdminUserRepository backed by the given pool.
func NewPgAdminUserRepository(pool *pgxpool.Pool) *PgAdminUserRepository {
	return &PgAdminUserRepository{pool: pool}
}

var _ AdminUserRepository = (*PgAdminUserRepository)(nil)

// Create inserts a new admin_users row. Returns ErrDuplicate when the
// username or email is already registered.
func (r *PgAdminUserRepository) Create(ctx context.Context, u *model.AdminUser) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO admin_users (id, username, email, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
		return ErrDuplicate
	}
	return err
}

// FindByUsername returns the admin account with the given username or ErrNotFound.
func (r *PgAdminUserRepository) FindByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	var u model.AdminUser
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, email, password_hash, role, created_at, last_login
		 FROM admin_users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.LastLogin)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateLastLogin stamps the account's most recent successful login.
func (r *PgAdminUserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.pool.Exec(ctx, `UPDATE admin_users SET last_login = $2 WHERE id = $1`, id, at)
	return err
}
