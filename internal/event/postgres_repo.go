package event

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

const (
	listUpcoming = `
		SELECT id, title, description, event_date, location, meeting_url, event_type, created_at
		FROM events
		WHERE event_date >= $1
		ORDER BY event_date ASC, id
		LIMIT $2`
	listPast = `
		SELECT id, title, description, event_date, location, meeting_url, event_type, created_at
		FROM events
		WHERE event_date < $1
		ORDER BY event_date DESC, id
		LIMIT $2`
)

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Event, error) {
	query := listUpcoming
	if q.When == WhenPast {
		query = listPast
	}

	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query, q.Now, q.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.EventDate, &e.Location, &e.MeetingURL, &e.EventType, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Register(ctx context.Context, eventID, userID string) (string, error) {
	const query = `
		WITH ins AS (
			INSERT INTO event_registrations (event_id, user_id)
			VALUES ($1, $2)
			RETURNING event_id
		)
		SELECT e.title FROM ins JOIN events e ON e.id = ins.event_id`
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	var title string
	err := r.db.QueryRow(timeoutCtx, query, eventID, userID).Scan(&title)
	switch {
	case postgres.IsUniqueViolation(err):
		return "", ErrAlreadyRegistered
	case postgres.IsForeignKeyViolation(err), errors.Is(err, pgx.ErrNoRows):
		return "", ErrNotFound
	case err != nil:
		return "", err
	}
	return title, nil
}

func (r *PostgresRepo) Unregister(ctx context.Context, eventID, userID string) error {
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM event_registrations WHERE event_id = $1 AND user_id = $2`, eventID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotRegistered
	}
	return nil
}
