package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/alaama/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ServiceRepository defines the persistence interface for CMS services.
type ServiceRepository interface {
	Create(ctx context.Context, svc *model.Service) error
	GetByID(ctx context.Context, id string) (*model.Service, error)
	List(ctx context.Context, opts model.ServiceListOptions) ([]*model.Service, error)
	Update(ctx context.Context, id string, upd model.ServiceUpdate) (*model.Service, error)
	Delete(ctx context.Context, id string) error
}

// PgServiceRepository is the PostgreSQL implementation of ServiceRepository.
type PgServiceRepository struct {
	pool *pgxpool.Pool
}

// NewPgServiceRepository creates a PgServiceRepository backed by the given pool.
func NewPgServiceRepository(pool *pgxpool.Pool) *PgServiceRepository {
	return &PgServiceRepository{pool: pool}
}

var _ ServiceRepository = (*PgServiceRepository)(nil)

const serviceColumns = `id, title, subtitle, description, icon, outcomes, display_order, active, created_at, updated_at`

func scanService(row pgx.Row) (*model.Service, error) {
	var s model.Service
	err := row.Scan(&s.ID, &s.Title, &s.Subtitle, &s.Description, &s.Icon,
		&s.Outcomes, &s.Order, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new services row.
func (r *PgServiceRepository) Create(ctx context.Context, svc *model.Service) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO services (id, title, subtitle, description, icon, outcomes, display_order, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		svc.ID, svc.Title, svc.Subtitle, svc.Description, svc.Icon,
		svc.Outcomes, svc.Order, svc.Active, svc.CreatedAt, svc.UpdatedAt,
	)
	return err
}

// GetByID returns a single service or ErrNotFound.
func (r *PgServiceRepository) GetByID(ctx context.Context, id string) (*model.Service, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
	return scanService(row)
}

// List returns services ordered by display_order ascending.
func (r *PgServiceRepository) List(ctx context.Context, opts model.ServiceListOptions) ([]*model.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services`
	if opts.ActiveOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY display_order ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*model.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// Update applies the non-nil fields of upd, refreshes updated_at, and returns
// the updated row. Returns ErrNotFound when the id does not exist.
func (r *PgServiceRepository) Update(ctx context.Context, id string, upd model.ServiceUpdate) (*model.Service, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{id}

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}
	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Subtitle != nil {
		add("subtitle", *upd.Subtitle)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Icon != nil {
		add("icon", *upd.Icon)
	}
	if upd.Outcomes != nil {
		add("outcomes", upd.Outcomes)
	}
	if upd.Order != nil {
		add("display_order", *upd.Order)
	}
	if upd.Active != nil {
		add("active", *upd.Active)
	}

	query := `UPDATE services SET ` + strings.Join(sets, ", ") +
		` WHERE id = $1 RETURNING ` + serviceColumns
	return scanService(r.pool.QueryRow(ctx, query, args...))
}

// Delete removes a service. Returns ErrNotFound when no row matched.
func (r *PgServiceRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
