package repository

import (
	"context"
	"time"

	"github.com/alaama/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubmissionRepository defines the persistence interface for contact
// submissions. It is defined here (in repository) to avoid an import cycle
// with service.
type SubmissionRepository interface {
	// Save inserts a new submission. The caller assigns the id.
	Save(ctx context.Context, sub *model.ContactSubmission) error

	// MarkEmailSent patches the delivery status of an already-inserted
	// submission. sentAt must be non-nil iff sent is true.
	MarkEmailSent(ctx context.Context, id string, sent bool, sentAt *time.Time) error

	// List returns submissions newest first, plus the total row count.
	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, int, error)
}

// PgSubmissionRepository is the PostgreSQL implementation of SubmissionRepository.
type PgSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubmissionRepository creates a PgSubmissionRepository backed by the given pool.
func NewPgSubmissionRepository(pool *pgxpool.Pool) *PgSubmissionRepository {
	return &PgSubmissionRepository{pool: pool}
}

var _ SubmissionRepository = (*PgSubmissionRepository)(nil)

// Save inserts a new contact_submissions row.
func (r *PgSubmissionRepository) Save(ctx context.Context, sub *model.ContactSubmission) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO contact_submissions
		 (id, name, email, company, message, ip_address, user_agent, submitted_at, email_sent)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE)`,
		sub.ID, sub.Name, sub.Email, sub.Company, sub.Message,
		sub.IPAddress, sub.UserAgent, sub.SubmittedAt,
	)
	return err
}

// MarkEmailSent records the admin-notification outcome for a submission.
func (r *PgSubmissionRepository) MarkEmailSent(ctx context.Context, id string, sent bool, sentAt *time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_submissions SET email_sent = $2, email_sent_at = $3 WHERE id = $1`,
		id, sent, sentAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns submissions newest first with skip/limit pagination and the
// total number of stored submissions.
func (r *PgSubmissionRepository) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, company, message, ip_address, user_agent,
		        submitted_at, email_sent, email_sent_at
		 FROM contact_submissions
		 ORDER BY submitted_at DESC
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Skip,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var subs []*model.ContactSubmission
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Company, &s.Message,
			&s.IPAddress, &s.UserAgent, &s.SubmittedAt, &s.EmailSent, &s.EmailSentAt); err != nil {
			return nil, 0, err
		}
		subs = append(subs, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_submissions`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}
