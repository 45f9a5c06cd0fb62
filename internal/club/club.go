package club

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound      = errors.New("club not found")
	ErrAlreadyMember = errors.New("already a member of this club")
	ErrNotMember     = errors.New("not a member of this club")
)

// Club is a reading club as listed on the clubs page.
type Club struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	Description  *string   `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	MemberCount  int       `json:"member_count"`
	IsMember     bool      `json:"is_member"`
}

// Summary is the compact form shown in the dashboard sidebar.
type Summary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type Tab string

const (
	TabAll      Tab = "all"
	TabMy       Tab = "my"
	TabTrending Tab = "trending"
)

func ParseTab(s string) Tab {
	switch Tab(strings.ToLower(strings.TrimSpace(s))) {
	case TabMy:
		return TabMy
	case TabTrending:
		return TabTrending
	default:
		return TabAll
	}
}

// Filter narrows the club listing. UserID is empty for anonymous callers.
type Filter struct {
	Search string
	Tab    Tab
	UserID string
}
