package contact

import (
	"context"
	"strings"

	"cafedeslettres/internal/platform/logging"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit stores a message. userID is empty for anonymous visitors.
func (s *Service) Submit(ctx context.Context, userID string, m *Message) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Body = strings.TrimSpace(m.Body)
	if m.Name == "" || m.Email == "" || m.Body == "" {
		return ErrIncomplete
	}
	if m.Subject != nil {
		if subj := strings.TrimSpace(*m.Subject); subj != "" {
			m.Subject = &subj
		} else {
			m.Subject = nil
		}
	}
	if userID != "" {
		m.UserID = &userID
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return err
	}
	logging.FromContext(ctx).WithField("contact_id", m.ID).Info("contact message received")
	return nil
}
