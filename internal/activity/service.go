package activity

import (
	"context"
	"errors"
	"strings"
)

const (
	DefaultLimit = 20
	MaxLimit     = 50
)

var ErrEmptyDescription = errors.New("activity description is required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record appends an entry. An empty referenceID is stored as NULL.
func (s *Service) Record(ctx context.Context, userID string, kind Type, description, referenceID string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return ErrEmptyDescription
	}
	a := &Activity{
		UserID:      userID,
		Type:        kind,
		Description: description,
	}
	if referenceID != "" {
		a.ReferenceID = &referenceID
	}
	return s.repo.Create(ctx, a)
}

// ListRecent returns the newest entries first, clamping limit to [1, MaxLimit].
func (s *Service) ListRecent(ctx context.Context, userID string, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	items, err := s.repo.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Activity{}
	}
	return items, nil
}
