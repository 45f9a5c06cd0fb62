package event

import (
	"context"
	"errors"
	"time"

	"cafedeslettres/internal/activity"
	"cafedeslettres/internal/platform/logging"
	"cafedeslettres/internal/platform/metrics"
)

const maxListLimit = 100

type Service struct {
	repo     Repository
	activity activity.Recorder
	now      func() time.Time
}

func NewService(repo Repository, recorder activity.Recorder) *Service {
	return &Service{repo: repo, activity: recorder, now: time.Now}
}

// List returns upcoming or past events.
func (s *Service) List(ctx context.Context, when When) ([]Event, error) {
	return s.list(ctx, Query{When: when, Now: s.now(), Limit: maxListLimit})
}

// Upcoming returns the next limit events.
func (s *Service) Upcoming(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	return s.list(ctx, Query{When: WhenUpcoming, Now: s.now(), Limit: limit})
}

func (s *Service) list(ctx context.Context, q Query) ([]Event, error) {
	events, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if events == nil {
		return []Event{}, nil
	}
	for i := range events {
		events[i].derive()
	}
	return events, nil
}

// Register signs the member up for an event.
func (s *Service) Register(ctx context.Context, userID, eventID string) error {
	title, err := s.repo.Register(ctx, eventID, userID)
	switch {
	case errors.Is(err, ErrAlreadyRegistered):
		metrics.EventRegistration("duplicate")
		return err
	case err != nil:
		metrics.EventRegistration("failed")
		return err
	}
	metrics.EventRegistration("registered")

	desc := "S'est inscrit à l'événement « " + title + " »"
	if err := s.activity.Record(ctx, userID, activity.TypeEventRegistered, desc, eventID); err != nil {
		logging.FromContext(ctx).WithError(err).WithField("event_id", eventID).Warn("record registration activity")
	}
	return nil
}

func (s *Service) Unregister(ctx context.Context, userID, eventID string) error {
	return s.repo.Unregister(ctx, eventID, userID)
}
