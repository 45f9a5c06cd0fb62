package activity

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

func (r *PostgresRepo) Create(ctx context.Context, a *Activity) error {
	const query = `
		INSERT INTO activities (user_id, activity_type, description, reference_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query, a.UserID, a.Type, a.Description, a.ReferenceID).
		Scan(&a.ID, &a.CreatedAt)
}

func (r *PostgresRepo) ListRecent(ctx context.Context, userID string, limit int) ([]Activity, error) {
	const query = `
		SELECT id, user_id, activity_type, description, reference_id, created_at
		FROM activities
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.Description, &a.ReferenceID, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
