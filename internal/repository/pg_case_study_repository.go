package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/alaama/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CaseStudyRepository defines the persistence interface for case studies.
type CaseStudyRepository interface {
	Create(ctx context.Context, cs *model.CaseStudy) error
	GetByID(ctx context.Context, id string) (*model.CaseStudy, error)
	List(ctx context.Context, opts model.CaseStudyListOptions) ([]*model.CaseStudy, error)
	Update(ctx context.Context, id string, upd model.CaseStudyUpdate) (*model.CaseStudy, error)
	Delete(ctx context.Context, id string) error
}

// PgCaseStudyRepository is the PostgreSQL implementation of CaseStudyRepository.
type PgCaseStudyRepository struct {
	pool *pgxpool.Pool
}

// NewPgCaseStudyRepository creates a PgCaseStudyRepository backed by the given pool.
func NewPgCaseStudyRepository(pool *pgxpool.Pool) *PgCaseStudyRepository {
	return &PgCaseStudyRepository{pool: pool}
}

var _ CaseStudyRepository = (*PgCaseStudyRepository)(nil)

const caseStudyColumns = `id, title, category, subtitle, challenge, position, identity,
	execution, impact, image, featured, display_order, active, created_at, updated_at`

func scanCaseStudy(row pgx.Row) (*model.CaseStudy, error) {
	var c model.CaseStudy
	err := row.Scan(&c.ID, &c.Title, &c.Category, &c.Subtitle, &c.Challenge, &c.Position,
		&c.Identity, &c.Execution, &c.Impact, &c.Image, &c.Featured, &c.Order,
		&c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new case_studies row.
func (r *PgCaseStudyRepository) Create(ctx context.Context, cs *model.CaseStudy) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO case_studies (id, title, category, subtitle, challenge, position,
		 identity, execution, impact, image, featured, display_order, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		cs.ID, cs.Title, cs.Category, cs.Subtitle, cs.Challenge, cs.Position,
		cs.Identity, cs.Execution, cs.Impact, cs.Image, cs.Featured, cs.Order,
		cs.Active, cs.CreatedAt, cs.UpdatedAt,
	)
	return err
}

// GetByID returns a single case study or ErrNotFound.
func (r *PgCaseStudyRepository) GetByID(ctx context.Context, id string) (*model.CaseStudy, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+caseStudyColumns+` FROM case_studies WHERE id = $1`, id)
	return scanCaseStudy(row)
}

// List returns case studies ordered by display_order ascending.
func (r *PgCaseStudyRepository) List(ctx context.Context, opts model.CaseStudyListOptions) ([]*model.CaseStudy, error) {
	var conditions []string
	if opts.ActiveOnly {
		conditions = append(conditions, "active = TRUE")
	}
	if opts.FeaturedOnly {
		conditions = append(conditions, "featured = TRUE")
	}

	query := `SELECT ` + caseStudyColumns + ` FROM case_studies`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY display_order ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var studies []*model.CaseStudy
	for rows.Next() {
		c, err := scanCaseStudy(rows)
		if err != nil {
			return nil, err
		}
		studies = append(studies, c)
	}
	return studies, rows.Err()
}

// Update applies the non-nil fields of upd, refreshes updated_at, and returns
// the updated row. Returns ErrNotFound when the id does not exist.
func (r *PgCaseStudyRepository) Update(ctx context.Context, id string, upd model.CaseStudyUpdate) (*model.CaseStudy, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{id}

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}
	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Category != nil {
		add("category", *upd.Category)
	}
	if upd.Subtitle != nil {
		add("subtitle", *upd.Subtitle)
	}
	if upd.Challenge != nil {
		add("challenge", *upd.Challenge)
	}
	if upd.Position != nil {
		add("position", *upd.Position)
	}
	if upd.Identity != nil {
		add("identity", upd.Identity)
	}
	if upd.Execution != nil {
		add("execution", upd.Execution)
	}
	if upd.Impact != nil {
		add("impact", upd.Impact)
	}
	if upd.Image != nil {
		add("image", *upd.Image)
	}
	if upd.Featured != nil {
		add("featured", *upd.Featured)
	}
	if upd.Order != nil {
		add("display_order", *upd.Order)
	}
	if upd.Active != nil {
		add("active", *upd.Active)
	}

	query := `UPDATE case_studies SET ` + strings.Join(sets, ", ") +
		` WHERE id = $1 RETURNING ` + caseStudyColumns
	return scanCaseStudy(r.pool.QueryRow(ctx, query, args...))
}

// Delete removes a case study. Returns ErrNotFound when no row matched.
func (r *PgCaseStudyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM case_studies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
