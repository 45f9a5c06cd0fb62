package readinglist

import (
	"context"
	"time"
)

type Repository interface {
	// Upsert reports whether the book was newly added to the shelf.
	Upsert(ctx context.Context, userID, bookID string, status Status, rating *int) (Entry, bool, error)
	List(ctx context.Context, userID string, status Status) ([]Entry, error)
	Remove(ctx context.Context, userID, bookID string) error
	FinishedStats(ctx context.Context, userID string, since time.Time) (FinishedStats, error)
	FinishedDatesSince(ctx context.Context, userID string, since time.Time) ([]time.Time, error)
}
