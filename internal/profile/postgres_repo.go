package profile

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cafedeslettres/internal/platform/postgres"
)

const profileColumns = "id, user_id, display_name, avatar_url, membership_type, created_at, updated_at"

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

// GetOrCreate uses a no-op DO UPDATE so the row is returned even when a
// concurrent request inserted it first.
func (r *PostgresRepo) GetOrCreate(ctx context.Context, userID string) (Profile, error) {
	const query = `
		INSERT INTO profiles (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING ` + profileColumns
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()
	return scanProfile(r.db.QueryRow(timeoutCtx, query, userID))
}

func buildUpdate(userID string, updates map[string]any) sq.UpdateBuilder {
	return postgres.Builder.
		Update("profiles").
		SetMap(updates).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + profileColumns)
}

func (r *PostgresRepo) Update(ctx context.Context, userID string, updates map[string]any) (Profile, error) {
	query, args, err := buildUpdate(userID, updates).ToSql()
	if err != nil {
		return Profile{}, err
	}
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()
	return scanProfile(r.db.QueryRow(timeoutCtx, query, args...))
}

func scanProfile(row pgx.Row) (Profile, error) {
	var p Profile
	err := row.Scan(&p.ID, &p.UserID, &p.DisplayName, &p.AvatarURL, &p.MembershipType, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
