package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"cafedeslettres/internal/goal"
	"cafedeslettres/internal/readinglist"
	"cafedeslettres/internal/review"
)

// Sources groups the collaborators the dashboard reads from.
type Sources struct {
	Profiles   ProfileSource
	Clubs      ClubSource
	Activities ActivitySource
	Events     EventSource
	Books      BookSource
	Shelf      ShelfSource
	Reviews    ReviewSource
	Goals      GoalSource
}

type Service struct {
	src               Sources
	loc               *time.Location
	defaultGoalTarget int
	now               func() time.Time
}

// NewService builds the aggregator. Month and year boundaries are computed in loc.
func NewService(src Sources, loc *time.Location, defaultGoalTarget int) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{src: src, loc: loc, defaultGoalTarget: defaultGoalTarget, now: time.Now}
}

// Get fetches every dashboard collection in parallel. Any failure fails the whole call.
func (s *Service) Get(ctx context.Context, userID string) (*Dashboard, error) {
	now := s.now().In(s.loc)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc)

	var (
		d            Dashboard
		finished     readinglist.FinishedStats
		reviewCounts review.Counts
		goalTarget   = s.defaultGoalTarget
		finishedOn   []time.Time
		reviewedOn   []time.Time
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Profile, err = s.src.Profiles.Get(gctx, userID)
		return wrap("profile", err)
	})
	g.Go(func() (err error) {
		d.Clubs, err = s.src.Clubs.ListForUser(gctx, userID)
		return wrap("clubs", err)
	})
	g.Go(func() (err error) {
		d.Activities, err = s.src.Activities.ListRecent(gctx, userID, activityLimit)
		return wrap("activities", err)
	})
	g.Go(func() (err error) {
		d.UpcomingEvents, err = s.src.Events.Upcoming(gctx, eventLimit)
		return wrap("events", err)
	})
	g.Go(func() (err error) {
		d.Recommendations, err = s.src.Books.Recommendations(gctx, recommendationLimit)
		return wrap("recommendations", err)
	})
	g.Go(func() (err error) {
		finished, err = s.src.Shelf.FinishedStats(gctx, userID, monthStart)
		return wrap("shelf stats", err)
	})
	g.Go(func() (err error) {
		finishedOn, err = s.src.Shelf.FinishedDatesSince(gctx, userID, monthStart)
		return wrap("shelf dates", err)
	})
	g.Go(func() (err error) {
		reviewCounts, err = s.src.Reviews.CountByUser(gctx, userID, monthStart)
		return wrap("review stats", err)
	})
	g.Go(func() (err error) {
		reviewedOn, err = s.src.Reviews.DatesSince(gctx, userID, monthStart)
		return wrap("review dates", err)
	})
	g.Go(func() error {
		gl, err := s.src.Goals.Get(gctx, userID, now.Year())
		switch {
		case errors.Is(err, goal.ErrNotFound):
			return nil
		case err != nil:
			return wrap("goal", err)
		}
		goalTarget = gl.TargetBooks
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.GreetingName = GreetingName(d.Profile.DisplayName)
	d.Initial = Initial(d.Profile.DisplayName)
	d.Stats = ComputeStats(finished.Total, finished.Since, reviewCounts.Total, reviewCounts.Since, goalTarget)
	d.Quote = QuoteOfTheDay(now)
	d.Calendar = BuildCalendar(now, append(finishedOn, reviewedOn...))
	return &d, nil
}

func wrap(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("dashboard %s: %w", what, err)
}
