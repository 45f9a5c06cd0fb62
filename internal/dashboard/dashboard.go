package dashboard

import (
	"strings"
	"unicode"

	"cafedeslettres/internal/activity"
	"cafedeslettres/internal/book"
	"cafedeslettres/internal/club"
	"cafedeslettres/internal/event"
	"cafedeslettres/internal/profile"
)

const (
	activityLimit       = 5
	eventLimit          = 3
	recommendationLimit = 6

	defaultGreeting = "Lecteur"
	defaultInitial  = "U"
)

// Dashboard is everything the member home screen shows.
type Dashboard struct {
	GreetingName    string              `json:"greeting_name"`
	Initial         string              `json:"initial"`
	Profile         profile.Profile     `json:"profile"`
	Clubs           []club.Summary      `json:"clubs"`
	Activities      []activity.Activity `json:"activities"`
	UpcomingEvents  []event.Event       `json:"upcoming_events"`
	Recommendations []book.Book         `json:"recommendations"`
	Stats           Stats               `json:"stats"`
	Quote           Quote               `json:"quote"`
	Calendar        Calendar            `json:"calendar"`
}

// GreetingName is the first word of the display name, or "Lecteur".
func GreetingName(displayName *string) string {
	if displayName == nil {
		return defaultGreeting
	}
	fields := strings.Fields(*displayName)
	if len(fields) == 0 {
		return defaultGreeting
	}
	return fields[0]
}

// Initial is the upper-cased first letter of the display name, or "U".
func Initial(displayName *string) string {
	if displayName == nil {
		return defaultInitial
	}
	name := strings.TrimSpace(*displayName)
	if name == "" {
		return defaultInitial
	}
	return string(unicode.ToUpper([]rune(name)[0]))
}
