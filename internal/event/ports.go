package event

import "context"

type Repository interface {
	List(ctx context.Context, q Query) ([]Event, error)
	// Register returns the event title.
	Register(ctx context.Context, eventID, userID string) (string, error)
	Unregister(ctx context.Context, eventID, userID string) error
}
