package book

import (
	"context"
	"errors"
	"strings"

	"github.com/samber/lo"
)

const maxRecommendations = 24

var ErrInvalidBook = errors.New("title and author are required")

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns a page of books matching the query and the filtered total.
func (s *Service) List(ctx context.Context, q Query) ([]BookWithRating, int, error) {
	q.Search = strings.TrimSpace(q.Search)
	q.Categories = lo.Uniq(lo.Compact(lo.Map(q.Categories, func(c string, _ int) string {
		return strings.TrimSpace(c)
	})))
	if q.Sort == "" {
		q.Sort = SortNewest
	}

	books, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	if books == nil {
		books = []BookWithRating{}
	}
	return books, total, nil
}

// Get returns a book with its rating aggregate.
func (s *Service) Get(ctx context.Context, id string) (BookWithRating, error) {
	return s.repo.GetByID(ctx, id)
}

// Recommendations returns up to limit books for the dashboard.
func (s *Service) Recommendations(ctx context.Context, limit int) ([]Book, error) {
	if limit <= 0 || limit > maxRecommendations {
		limit = maxRecommendations
	}
	books, err := s.repo.ListRecommendations(ctx, limit)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []Book{}
	}
	return books, nil
}

// Categories returns every category with its book count.
func (s *Service) Categories(ctx context.Context) ([]CategoryCount, error) {
	return s.repo.Categories(ctx)
}

// Import inserts or refreshes a catalogue entry coming from an external source.
func (s *Service) Import(ctx context.Context, b *Book) error {
	b.Title = strings.TrimSpace(b.Title)
	b.Author = strings.TrimSpace(b.Author)
	if b.Title == "" || b.Author == "" {
		return ErrInvalidBook
	}
	return s.repo.Upsert(ctx, b)
}
