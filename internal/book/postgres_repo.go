package book

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

// ratingStats aggregates rated reviews per book.
const ratingStats = `(SELECT book_id, AVG(rating)::float8 AS avg_rating, COUNT(rating)::int AS review_count
	FROM reviews WHERE rating IS NOT NULL GROUP BY book_id) rs ON rs.book_id = b.id`

var bookColumns = []string{
	"b.id", "b.title", "b.author", "b.category", "b.description", "b.cover_url", "b.created_at",
	"COALESCE(rs.avg_rating, 0) AS avg_rating",
	"COALESCE(rs.review_count, 0) AS review_count",
}

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func listFilter(q Query) sq.And {
	where := sq.And{}
	if q.Search != "" {
		pattern := "%" + likeEscaper.Replace(q.Search) + "%"
		where = append(where, sq.Or{
			sq.ILike{"b.title": pattern},
			sq.ILike{"b.author": pattern},
		})
	}
	if len(q.Categories) > 0 {
		where = append(where, sq.Eq{"b.category": q.Categories})
	}
	return where
}

func orderBy(s Sort) []string {
	switch s {
	case SortRating:
		return []string{"avg_rating DESC", "review_count DESC", "b.title ASC"}
	case SortPopular:
		return []string{"review_count DESC", "avg_rating DESC", "b.title ASC"}
	case SortTitle:
		return []string{"b.title ASC", "b.id ASC"}
	default:
		return []string{"b.created_at DESC", "b.id ASC"}
	}
}

// buildListQuery returns the page query and the matching count query.
func buildListQuery(q Query) (sq.SelectBuilder, sq.SelectBuilder) {
	page := postgres.Builder.
		Select(bookColumns...).
		From("books b").
		LeftJoin(ratingStats).
		OrderBy(orderBy(q.Sort)...).
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset))
	count := postgres.Builder.Select("COUNT(*)").From("books b")

	if where := listFilter(q); len(where) > 0 {
		page = page.Where(where)
		count = count.Where(where)
	}
	return page, count
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]BookWithRating, int, error) {
	pageQ, countQ := buildListQuery(q)

	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := r.db.QueryRow(timeoutCtx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageSQL, pageArgs, err := pageQ.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.db.Query(timeoutCtx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []BookWithRating
	for rows.Next() {
		var b BookWithRating
		if err := scanBookWithRating(rows, &b); err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (BookWithRating, error) {
	query, args, err := postgres.Builder.
		Select(bookColumns...).
		From("books b").
		LeftJoin(ratingStats).
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return BookWithRating{}, err
	}

	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	var b BookWithRating
	if err := scanBookWithRating(r.db.QueryRow(timeoutCtx, query, args...), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return BookWithRating{}, ErrNotFound
		}
		return BookWithRating{}, err
	}
	return b, nil
}

func (r *PostgresRepo) ListRecommendations(ctx context.Context, limit int) ([]Book, error) {
	const query = `
		SELECT id, title, author, category, description, cover_url, created_at
		FROM books
		ORDER BY created_at DESC, id
		LIMIT $1`
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Category, &b.Description, &b.CoverURL, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Categories(ctx context.Context) ([]CategoryCount, error) {
	const query = `
		SELECT category, COUNT(*)::int
		FROM books
		WHERE category IS NOT NULL AND category <> ''
		GROUP BY category
		ORDER BY category`
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []CategoryCount{}
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Upsert inserts a book, refreshing the existing row when the external key is already known.
func (r *PostgresRepo) Upsert(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO books (title, author, category, description, cover_url, external_key)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (external_key) DO UPDATE SET
			title = EXCLUDED.title,
			author = EXCLUDED.author,
			category = COALESCE(EXCLUDED.category, books.category),
			description = COALESCE(EXCLUDED.description, books.description),
			cover_url = COALESCE(EXCLUDED.cover_url, books.cover_url)
		RETURNING id, created_at`
	timeoutCtx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.QueryRow(timeoutCtx, query, b.Title, b.Author, b.Category, b.Description, b.CoverURL, b.ExternalKey).
		Scan(&b.ID, &b.CreatedAt)
}

func scanBookWithRating(row pgx.Row, b *BookWithRating) error {
	return row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Category, &b.Description, &b.CoverURL, &b.CreatedAt,
		&b.AvgRating, &b.ReviewCount,
	)
}
