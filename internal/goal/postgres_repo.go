package goal

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
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

func (r *PostgresRepo) Upsert(ctx context.Context, g *Goal) error {
	const query = `
		INSERT INTO reading_goals (user_id, year, target_books)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, year) DO UPDATE SET
			target_books = EXCLUDED.target_books,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query, g.UserID, g.Year, g.TargetBooks).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

func (r *PostgresRepo) Get(ctx context.Context, userID string, year int) (Goal, error) {
	const query = `
		SELECT id, user_id, year, target_books, created_at, updated_at
		FROM reading_goals
		WHERE user_id = $1 AND year = $2`
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	var g Goal
	err := r.db.QueryRow(timeoutCtx, query, userID, year).
		Scan(&g.ID, &g.UserID, &g.Year, &g.TargetBooks, &g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Goal{}, ErrNotFound
	}
	return g, err
}
