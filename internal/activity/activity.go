// Package activity keeps the per-member activity log shown on the dashboard.
package activity

import (
	"context"
	"time"
)

// Type classifies an activity entry.
type Type string

const (
	TypeBookAdded       Type = "book_added"
	TypeComment         Type = "comment"
	TypeClubJoined      Type = "club_joined"
	TypeEventRegistered Type = "event_registered"
)

type Activity struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Type        Type      `json:"activity_type"`
	Description string    `json:"description"`
	ReferenceID *string   `json:"reference_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Recorder is what other features use to append to the log.
type Recorder interface {
	Record(ctx context.Context, userID string, kind Type, description, referenceID string) error
}

type Repository interface {
	Create(ctx context.Context, a *Activity) error
	ListRecent(ctx context.Context, userID string, limit int) ([]Activity, error)
}
