package profile

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidDisplayName = errors.New("display_name must be at most 80 characters")
	ErrInvalidAvatarURL   = errors.New("avatar_url must be a valid http(s) URL")
	ErrInvalidMembership  = errors.New("membership_type must be one of: standard premium patron")
)

const (
	MembershipStandard = "standard"
	MembershipPremium  = "premium"
	MembershipPatron   = "patron"

	maxDisplayName = 80
)

type Profile struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	DisplayName    *string   `json:"display_name"`
	AvatarURL      *string   `json:"avatar_url"`
	MembershipType string    `json:"membership_type"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UpdateCommand is a partial update. Nil fields are left untouched and
// blank strings clear the column.
type UpdateCommand struct {
	DisplayName    *string `json:"display_name" validate:"omitempty,max=80"`
	AvatarURL      *string `json:"avatar_url" validate:"omitempty,url"`
	MembershipType *string `json:"membership_type" validate:"omitempty,oneof=standard premium patron"`
}

// ToMap returns the column updates carried by the command.
func (c *UpdateCommand) ToMap() map[string]any {
	updates := make(map[string]any)
	if c.DisplayName != nil {
		updates["display_name"] = nullIfBlank(*c.DisplayName)
	}
	if c.AvatarURL != nil {
		updates["avatar_url"] = nullIfBlank(*c.AvatarURL)
	}
	if c.MembershipType != nil {
		updates["membership_type"] = strings.TrimSpace(*c.MembershipType)
	}
	return updates
}

func nullIfBlank(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
