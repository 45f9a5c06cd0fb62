package review

import (
	"context"
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

func (r *PostgresRepo) Create(ctx context.Context, rv *Review) error {
	const query = `
		WITH ins AS (
			INSERT INTO reviews (book_id, user_id, content, rating)
			VALUES ($1, $2, $3, $4)
			RETURNING id, book_id, created_at
		)
		SELECT ins.id, ins.created_at, b.title
		FROM ins JOIN books b ON b.id = ins.book_id`
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	err := r.db.QueryRow(timeoutCtx, query, rv.BookID, rv.UserID, rv.Content, rv.Rating).
		Scan(&rv.ID, &rv.CreatedAt, &rv.BookTitle)
	if postgres.IsForeignKeyViolation(err) {
		return ErrBookNotFound
	}
	return err
}

func (r *PostgresRepo) ListByBook(ctx context.Context, bookID string, limit, offset int) ([]Review, int, error) {
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	var total int
	if err := r.db.QueryRow(timeoutCtx, `SELECT COUNT(*) FROM reviews WHERE book_id = $1`, bookID).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
		SELECT id, book_id, user_id, content, rating, created_at
		FROM reviews
		WHERE book_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(timeoutCtx, query, bookID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Review
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.BookID, &rv.UserID, &rv.Content, &rv.Rating, &rv.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, rv)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepo) Delete(ctx context.Context, userID, id string) error {
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM reviews WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) CountByUser(ctx context.Context, userID string, since time.Time) (Counts, error) {
	const query = `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE created_at >= $2)
		FROM reviews
		WHERE user_id = $1`
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	var c Counts
	err := r.db.QueryRow(timeoutCtx, query, userID, since).Scan(&c.Total, &c.Since)
	return c, err
}

func (r *PostgresRepo) DatesSince(ctx context.Context, userID string, since time.Time) ([]time.Time, error) {
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx,
		`SELECT created_at FROM reviews WHERE user_id = $1 AND created_at >= $2 ORDER BY created_at`,
		userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowTo[time.Time])
}
