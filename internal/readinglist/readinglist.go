package readinglist

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("book is not on the shelf")
	ErrBookNotFound  = errors.New("book not found")
	ErrInvalidStatus = errors.New("invalid reading status")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// Status is where a book sits on the member's shelf.
type Status string

const (
	StatusWantToRead Status = "want_to_read"
	StatusReading    Status = "reading"
	StatusFinished   Status = "finished"
)

func (s Status) Valid() bool {
	switch s {
	case StatusWantToRead, StatusReading, StatusFinished:
		return true
	}
	return false
}

// Entry is one book on a member's shelf.
type Entry struct {
	BookID     string     `json:"book_id"`
	Title      string     `json:"title"`
	Author     string     `json:"author"`
	CoverURL   *string    `json:"cover_url,omitempty"`
	Status     Status     `json:"status"`
	Rating     *int       `json:"rating"`
	FinishedAt *time.Time `json:"finished_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// FinishedStats counts finished books, overall and since a point in time.
type FinishedStats struct {
	Total int
	Since int
}
