package goal

import (
	"context"
	"errors"
	"time"
)

const (
	MinTarget = 1
	MaxTarget = 1000
)

var (
	ErrNotFound      = errors.New("no reading goal for this year")
	ErrInvalidTarget = errors.New("target must be between 1 and 1000")
	ErrInvalidYear   = errors.New("invalid year")
)

// Goal is the number of books a member wants to read in a calendar year.
type Goal struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Year        int       `json:"year"`
	TargetBooks int       `json:"target_books"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Repository interface {
	Upsert(ctx context.Context, g *Goal) error
	Get(ctx context.Context, userID string, year int) (Goal, error)
}
