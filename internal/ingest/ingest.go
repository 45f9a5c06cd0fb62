package ingest

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Subject pairs an Open Library subject with the category shown in the library.
type Subject struct {
	Name     string
	Category string
}

// ParseSubjects reads "subject[:Category],..." as used on the seed command line.
// Without an explicit category the subject name is title-cased.
func ParseSubjects(s string) []Subject {
	var out []Subject
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, category, found := strings.Cut(part, ":")
		name = strings.TrimSpace(name)
		category = strings.TrimSpace(category)
		if name == "" {
			continue
		}
		if !found || category == "" {
			category = capitalize(name)
		}
		out = append(out, Subject{Name: name, Category: category})
	}
	return out
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Result summarises one import run.
type Result struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Fetched    int
	Imported   int
	Skipped    int
	Failed     int
}
