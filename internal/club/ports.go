package club

import "context"

type Repository interface {
	List(ctx context.Context, f Filter) ([]Club, error)
	Create(ctx context.Context, c *Club, creatorID string) error
	// AddMember returns the club name so that callers can describe the join.
	AddMember(ctx context.Context, clubID, userID string) (string, error)
	RemoveMember(ctx context.Context, clubID, userID string) error
	ListForUser(ctx context.Context, userID string) ([]Summary, error)
}
