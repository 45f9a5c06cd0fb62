package dashboard

import (
	"context"
	"time"

	"cafedeslettres/internal/activity"
	"cafedeslettres/internal/book"
	"cafedeslettres/internal/club"
	"cafedeslettres/internal/event"
	"cafedeslettres/internal/goal"
	"cafedeslettres/internal/profile"
	"cafedeslettres/internal/readinglist"
	"cafedeslettres/internal/review"
)

// The dashboard reads from the feature services through these narrow ports.

type ProfileSource interface {
	Get(ctx context.Context, userID string) (profile.Profile, error)
}

type ClubSource interface {
	ListForUser(ctx context.Context, userID string) ([]club.Summary, error)
}

type ActivitySource interface {
	ListRecent(ctx context.Context, userID string, limit int) ([]activity.Activity, error)
}

type EventSource interface {
	Upcoming(ctx context.Context, limit int) ([]event.Event, error)
}

type BookSource interface {
	Recommendations(ctx context.Context, limit int) ([]book.Book, error)
}

type ShelfSource interface {
	FinishedStats(ctx context.Context, userID string, since time.Time) (readinglist.FinishedStats, error)
	FinishedDatesSince(ctx context.Context, userID string, since time.Time) ([]time.Time, error)
}

type ReviewSource interface {
	CountByUser(ctx context.Context, userID string, since time.Time) (review.Counts, error)
	DatesSince(ctx context.Context, userID string, since time.Time) ([]time.Time, error)
}

type GoalSource interface {
	Get(ctx context.Context, userID string, year int) (goal.Goal, error)
}
