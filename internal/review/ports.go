package review

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, r *Review) error
	ListByBook(ctx context.Context, bookID string, limit, offset int) ([]Review, int, error)
	Delete(ctx context.Context, userID, id string) error
	CountByUser(ctx context.Context, userID string, since time.Time) (Counts, error)
	DatesSince(ctx context.Context, userID string, since time.Time) ([]time.Time, error)
}
