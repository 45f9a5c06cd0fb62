package readinglist

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

func (r *PostgresRepo) Upsert(ctx context.Context, userID, bookID string, status Status, rating *int) (Entry, bool, error) {
	// xmax is zero only for a freshly inserted row.
	const query = `
		WITH up AS (
			INSERT INTO user_books (user_id, book_id, status, rating, finished_at)
			VALUES ($1, $2, $3::text, $4, CASE WHEN $3::text = 'finished' THEN NOW() END)
			ON CONFLICT (user_id, book_id) DO UPDATE SET
				status = EXCLUDED.status,
				rating = EXCLUDED.rating,
				finished_at = CASE
					WHEN EXCLUDED.status = 'finished' THEN COALESCE(user_books.finished_at, NOW())
					ELSE NULL
				END,
				updated_at = NOW()
			RETURNING book_id, status, rating, finished_at, created_at, updated_at, (xmax = 0) AS inserted
		)
		SELECT up.book_id, b.title, b.author, b.cover_url, up.status, up.rating,
		       up.finished_at, up.created_at, up.updated_at, up.inserted
		FROM up JOIN books b ON b.id = up.book_id`
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	var (
		e        Entry
		inserted bool
	)
	err := r.db.QueryRow(timeoutCtx, query, userID, bookID, string(status), rating).Scan(
		&e.BookID, &e.Title, &e.Author, &e.CoverURL, &e.Status, &e.Rating,
		&e.FinishedAt, &e.CreatedAt, &e.UpdatedAt, &inserted,
	)
	if postgres.IsForeignKeyViolation(err) {
		return Entry{}, false, ErrBookNotFound
	}
	if err != nil {
		return Entry{}, false, err
	}
	return e, inserted, nil
}

func (r *PostgresRepo) List(ctx context.Context, userID string, status Status) ([]Entry, error) {
	const query = `
		SELECT ub.book_id, b.title, b.author, b.cover_url, ub.status, ub.rating,
		       ub.finished_at, ub.created_at, ub.updated_at
		FROM user_books ub
		JOIN books b ON b.id = ub.book_id
		WHERE ub.user_id = $1 AND ($2::text = '' OR ub.status = $2::text)
		ORDER BY ub.updated_at DESC, b.title`
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query, userID, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.BookID, &e.Title, &e.Author, &e.CoverURL, &e.Status, &e.Rating,
			&e.FinishedAt, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Remove(ctx context.Context, userID, bookID string) error {
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM user_books WHERE user_id = $1 AND book_id = $2`, userID, bookID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) FinishedStats(ctx context.Context, userID string, since time.Time) (FinishedStats, error) {
	const query = `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE finished_at >= $2)
		FROM user_books
		WHERE user_id = $1 AND status = 'finished'`
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	var s FinishedStats
	err := r.db.QueryRow(timeoutCtx, query, userID, since).Scan(&s.Total, &s.Since)
	return s, err
}

func (r *PostgresRepo) FinishedDatesSince(ctx context.Context, userID string, since time.Time) ([]time.Time, error) {
	const query = `
		SELECT finished_at
		FROM user_books
		WHERE user_id = $1 AND status = 'finished' AND finished_at >= $2
		ORDER BY finished_at`
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowTo[time.Time])
}
