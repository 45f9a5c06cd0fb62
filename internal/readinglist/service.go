package readinglist

import (
	"context"
	"time"

	"cafedeslettres/internal/activity"
	"cafedeslettres/internal/platform/logging"
)

type Service struct {
	repo     Repository
	activity activity.Recorder
}

func NewService(repo Repository, recorder activity.Recorder) *Service {
	return &Service{repo: repo, activity: recorder}
}

// Upsert places a book on the shelf or moves it to another status.
func (s *Service) Upsert(ctx context.Context, userID, bookID string, status Status, rating *int) (Entry, error) {
	if !status.Valid() {
		return Entry{}, ErrInvalidStatus
	}
	if rating != nil && (*rating < 1 || *rating > 5) {
		return Entry{}, ErrInvalidRating
	}

	entry, inserted, err := s.repo.Upsert(ctx, userID, bookID, status, rating)
	if err != nil {
		return Entry{}, err
	}
	if inserted {
		desc := "A ajouté « " + entry.Title + " » à sa bibliothèque"
		if err := s.activity.Record(ctx, userID, activity.TypeBookAdded, desc, bookID); err != nil {
			logging.FromContext(ctx).WithError(err).WithField("book_id", bookID).Warn("record shelf activity")
		}
	}
	return entry, nil
}

// List returns the shelf, optionally restricted to one status.
func (s *Service) List(ctx context.Context, userID string, status Status) ([]Entry, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	entries, err := s.repo.List(ctx, userID, status)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

func (s *Service) Remove(ctx context.Context, userID, bookID string) error {
	return s.repo.Remove(ctx, userID, bookID)
}

func (s *Service) FinishedStats(ctx context.Context, userID string, since time.Time) (FinishedStats, error) {
	return s.repo.FinishedStats(ctx, userID, since)
}

// FinishedDatesSince returns when the member finished books after since.
func (s *Service) FinishedDatesSince(ctx context.Context, userID string, since time.Time) ([]time.Time, error) {
	return s.repo.FinishedDatesSince(ctx, userID, since)
}
