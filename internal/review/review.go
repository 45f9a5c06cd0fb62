package review

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("review not found")
	ErrBookNotFound  = errors.New("book not found")
	ErrEmptyContent  = errors.New("review content is required")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// Review is a member's comment on a book, optionally rated.
type Review struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book_id"`
	UserID    string    `json:"user_id"`
	BookTitle string    `json:"book_title,omitempty"`
	Content   string    `json:"content"`
	Rating    *int      `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// Counts is the number of reviews a member wrote, overall and since a point in time.
type Counts struct {
	Total int
	Since int
}
