package goal

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Set creates or replaces the member's goal for year.
func (s *Service) Set(ctx context.Context, userID string, year, target int) (*Goal, error) {
	if year < 1900 || year > 9999 {
		return nil, ErrInvalidYear
	}
	if target < MinTarget || target > MaxTarget {
		return nil, ErrInvalidTarget
	}
	g := &Goal{UserID: userID, Year: year, TargetBooks: target}
	if err := s.repo.Upsert(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) Get(ctx context.Context, userID string, year int) (Goal, error) {
	return s.repo.Get(ctx, userID, year)
}
