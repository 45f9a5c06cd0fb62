package contact

import (
	"context"
	"errors"
	"time"
)

var ErrIncomplete = errors.New("name, email and message are required")

// Message is a contact form submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject,omitempty"`
	Body      string    `json:"message"`
	UserID    *string   `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type Repository interface {
	Create(ctx context.Context, m *Message) error
}
