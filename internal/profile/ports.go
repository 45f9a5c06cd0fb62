package profile

import "context"

type Repository interface {
	// GetOrCreate returns the member's profile, inserting an empty one on first access.
	GetOrCreate(ctx context.Context, userID string) (Profile, error)
	Update(ctx context.Context, userID string, updates map[string]any) (Profile, error)
}
