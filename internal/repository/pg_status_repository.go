package repository

import (
	"context"

	"github.com/alaama/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StatusRepository defines the persistence interface for legacy status checks.
type StatusRepository interface {
	Save(ctx context.Context, check *model.StatusCheck) error
	List(ctx context.Context, limit int) ([]*model.StatusCheck, error)
}

// PgStatusRepository is the PostgreSQL implementation of StatusRepository.
type PgStatusRepository struct {
	pool *pgxpool.Pool
}

// NewPgStatusRepository creates a PgStatusRepository backed by the given pool.
func NewPgStatusRepository(pool *pgxpool.Pool) *PgStatusRepository {
	return &PgStatusRepository{pool: pool}
}

var _ StatusRepository = (*PgStatusRepository)(nil)

// Save inserts a new status_checks row.
func (r *PgStatusRepository) Save(ctx context.Context, check *model.StatusCheck) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO status_checks (id, client_name, ts) VALUES ($1, $2, $3)`,
		check.ID, check.ClientName, check.Timestamp,
	)
	return err
}

// List returns the most recent status checks, newest first.
func (r *PgStatusRepository) List(ctx context.Context, limit int) ([]*model.StatusCheck, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, client_name, ts FROM status_checks ORDER BY ts DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checks []*model.StatusCheck
	for rows.Next() {
		var c model.StatusCheck
		if err := rows.Scan(&c.ID, &c.ClientName, &c.Timestamp); err != nil {
			return nil, err
		}
		checks = append(checks, &c)
	}
	return checks, rows.Err()
}
