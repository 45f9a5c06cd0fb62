package review

import (
	"context"
	"strings"
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

// Create stores a review and logs a "comment" activity for its author.
func (s *Service) Create(ctx context.Context, userID, bookID, content string, rating *int) (*Review, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if rating != nil && (*rating < 1 || *rating > 5) {
		return nil, ErrInvalidRating
	}

	rv := &Review{
		BookID:  bookID,
		UserID:  userID,
		Content: content,
		Rating:  rating,
	}
	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}

	desc := "A publié un avis"
	if rv.BookTitle != "" {
		desc += " sur « " + rv.BookTitle + " »"
	}
	if err := s.activity.Record(ctx, userID, activity.TypeComment, desc, bookID); err != nil {
		logging.FromContext(ctx).WithError(err).WithField("review_id", rv.ID).Warn("record review activity")
	}
	return rv, nil
}

func (s *Service) ListByBook(ctx context.Context, bookID string, limit, offset int) ([]Review, int, error) {
	items, total, err := s.repo.ListByBook(ctx, bookID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []Review{}
	}
	return items, total, nil
}

// Delete removes one of the member's own reviews.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *Service) CountByUser(ctx context.Context, userID string, since time.Time) (Counts, error) {
	return s.repo.CountByUser(ctx, userID, since)
}

// DatesSince returns when the member posted reviews after since.
func (s *Service) DatesSince(ctx context.Context, userID string, since time.Time) ([]time.Time, error) {
	return s.repo.DatesSince(ctx, userID, since)
}
