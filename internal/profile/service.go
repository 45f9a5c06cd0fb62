package profile

import (
	"context"
	"net/url"
	"unicode/utf8"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	return s.repo.GetOrCreate(ctx, userID)
}

// Update applies a partial update to the member's profile.
func (s *Service) Update(ctx context.Context, userID string, cmd UpdateCommand) (Profile, error) {
	updates := cmd.ToMap()

	if v, ok := updates["display_name"].(*string); ok && v != nil && utf8.RuneCountInString(*v) > maxDisplayName {
		return Profile{}, ErrInvalidDisplayName
	}
	if v, ok := updates["avatar_url"].(*string); ok && v != nil {
		u, err := url.Parse(*v)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return Profile{}, ErrInvalidAvatarURL
		}
	}
	if v, ok := updates["membership_type"].(string); ok {
		switch v {
		case MembershipStandard, MembershipPremium, MembershipPatron:
		default:
			return Profile{}, ErrInvalidMembership
		}
	}

	// The row must exist before it can be updated.
	p, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil || len(updates) == 0 {
		return p, err
	}
	return s.repo.Update(ctx, userID, updates)
}
