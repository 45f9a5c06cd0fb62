package contact

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"cafedeslettres/internal/platform/postgres"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) Create(ctx context.Context, m *Message) error {
	const query = `
		INSERT INTO contact_messages (name, email, subject, message, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query, m.Name, m.Email, m.Subject, m.Body, m.UserID).Scan(&m.ID, &m.CreatedAt)
}
