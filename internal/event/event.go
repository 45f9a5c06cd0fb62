package event

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound          = errors.New("event not found")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrNotRegistered     = errors.New("not registered for this event")
)

// Event is a literary meetup, in person or online.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	EventDate   time.Time `json:"event_date"`
	Location    *string   `json:"location,omitempty"`
	MeetingURL  *string   `json:"meeting_url,omitempty"`
	EventType   *string   `json:"event_type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	IsVirtual   bool      `json:"is_virtual"`
	HasMeeting  bool      `json:"has_meeting"`
}

// IsVirtual reports whether an event happens online: its type says so, it has
// no location, or the location names an online venue.
func IsVirtual(eventType, location *string) bool {
	if eventType != nil {
		switch strings.ToLower(*eventType) {
		case "virtual", "hybrid":
			return true
		}
	}
	if location == nil || strings.TrimSpace(*location) == "" {
		return true
	}
	loc := strings.ToLower(*location)
	return strings.Contains(loc, "virtuel") || strings.Contains(loc, "en ligne")
}

func (e *Event) derive() {
	e.IsVirtual = IsVirtual(e.EventType, e.Location)
	e.HasMeeting = e.MeetingURL != nil && *e.MeetingURL != ""
}

// When selects upcoming or past events.
type When string

const (
	WhenUpcoming When = "upcoming"
	WhenPast     When = "past"
)

func ParseWhen(s string) When {
	if strings.EqualFold(strings.TrimSpace(s), string(WhenPast)) {
		return WhenPast
	}
	return WhenUpcoming
}

// Query lists events relative to Now. Upcoming events come soonest first,
// past events most recent first.
type Query struct {
	When  When
	Now   time.Time
	Limit int
}
