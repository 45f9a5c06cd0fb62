package club

import (
	"context"
	"errors"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
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

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func buildListQuery(f Filter) sq.SelectBuilder {
	q := postgres.Builder.
		Select("c.id", "c.name", "c.abbreviation", "c.description", "c.created_at", "COUNT(m.user_id)::int AS member_count").
		From("reading_clubs c").
		LeftJoin("club_members m ON m.club_id = c.id").
		GroupBy("c.id")

	if f.UserID != "" {
		q = q.Column(sq.Expr("COALESCE(BOOL_OR(m.user_id = ?), false) AS is_member", f.UserID))
	} else {
		q = q.Column("false AS is_member")
	}

	if f.Search != "" {
		pattern := "%" + likeEscaper.Replace(f.Search) + "%"
		q = q.Where(sq.Or{
			sq.ILike{"c.name": pattern},
			sq.ILike{"c.description": pattern},
		})
	}
	if f.Tab == TabMy {
		q = q.Where(sq.Expr("EXISTS (SELECT 1 FROM club_members mm WHERE mm.club_id = c.id AND mm.user_id = ?)", f.UserID))
	}

	if f.Tab == TabTrending {
		return q.OrderBy("member_count DESC", "c.name ASC")
	}
	return q.OrderBy("c.created_at ASC", "c.id ASC")
}

func (r *PostgresRepo) List(ctx context.Context, f Filter) ([]Club, error) {
	query, args, err := buildListQuery(f).ToSql()
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Club
	for rows.Next() {
		var c Club
		if err := rows.Scan(&c.ID, &c.Name, &c.Abbreviation, &c.Description, &c.CreatedAt, &c.MemberCount, &c.IsMember); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Create inserts the club and its creator's membership in one transaction.
func (r *PostgresRepo) Create(ctx context.Context, c *Club, creatorID string) error {
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	return pgx.BeginFunc(timeoutCtx, r.db, func(tx pgx.Tx) error {
		const insertClub = `
			INSERT INTO reading_clubs (name, abbreviation, description)
			VALUES ($1, $2, $3)
			RETURNING id, created_at`
		if err := tx.QueryRow(timeoutCtx, insertClub, c.Name, c.Abbreviation, c.Description).Scan(&c.ID, &c.CreatedAt); err != nil {
			return err
		}
		_, err := tx.Exec(timeoutCtx, `INSERT INTO club_members (club_id, user_id) VALUES ($1, $2)`, c.ID, creatorID)
		return err
	})
}

func (r *PostgresRepo) AddMember(ctx context.Context, clubID, userID string) (string, error) {
	const query = `
		WITH ins AS (
			INSERT INTO club_members (club_id, user_id)
			VALUES ($1, $2)
			RETURNING club_id
		)
		SELECT c.name FROM ins JOIN reading_clubs c ON c.id = ins.club_id`
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	var name string
	err := r.db.QueryRow(timeoutCtx, query, clubID, userID).Scan(&name)
	switch {
	case postgres.IsUniqueViolation(err):
		return "", ErrAlreadyMember
	case postgres.IsForeignKeyViolation(err), errors.Is(err, pgx.ErrNoRows):
		return "", ErrNotFound
	case err != nil:
		return "", err
	}
	return name, nil
}

func (r *PostgresRepo) RemoveMember(ctx context.Context, clubID, userID string) error {
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM club_members WHERE club_id = $1 AND user_id = $2`, clubID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotMember
	}
	return nil
}

func (r *PostgresRepo) ListForUser(ctx context.Context, userID string) ([]Summary, error) {
	const query = `
		SELECT c.id, c.name, c.abbreviation
		FROM club_members m
		JOIN reading_clubs c ON c.id = m.club_id
		WHERE m.user_id = $1
		ORDER BY m.joined_at, c.name`
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByPos[Summary])
}
