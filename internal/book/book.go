package book

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Book represents a catalogue entry.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Category    *string   `json:"category,omitempty"`
	Description *string   `json:"description,omitempty"`
	CoverURL    *string   `json:"cover_url,omitempty"`
	ExternalKey *string   `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookWithRating adds the review aggregate. Only reviews that carry a rating count.
type BookWithRating struct {
	Book
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int     `json:"review_count"`
}

// CategoryCount feeds the library filter sidebar.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Sort orders the library listing.
type Sort string

const (
	SortNewest  Sort = "newest"
	SortRating  Sort = "rating"
	SortPopular Sort = "popular"
	SortTitle   Sort = "title"
)

// ParseSort maps a request value to a Sort, defaulting to newest.
func ParseSort(s string) Sort {
	switch Sort(strings.ToLower(strings.TrimSpace(s))) {
	case SortRating:
		return SortRating
	case SortPopular:
		return SortPopular
	case SortTitle:
		return SortTitle
	default:
		return SortNewest
	}
}

// Query defines filters and pagination for listing books.
type Query struct {
	Search     string
	Categories []string
	Sort       Sort
	Limit      int
	Offset     int
}
