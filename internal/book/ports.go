package book

import (
	"context"
)

// Repository defines the contract for book data storage.
type Repository interface {
	List(ctx context.Context, q Query) ([]BookWithRating, int, error)
	GetByID(ctx context.Context, id string) (BookWithRating, error)
	ListRecommendations(ctx context.Context, limit int) ([]Book, error)
	Categories(ctx context.Context) ([]CategoryCount, error)
	Upsert(ctx context.Context, b *Book) error
}
