// Package activitytest provides an in-memory activity.Recorder for tests.
package activitytest

import (
	"context"
	"sync"

	"cafedeslettres/internal/activity"
)

// Entry is one recorded call.
type Entry struct {
	UserID      string
	Type        activity.Type
	Description string
	ReferenceID string
}

// Recorder captures Record calls and can be told to fail.
type Recorder struct {
	mu      sync.Mutex
	Entries []Entry
	Err     error
}

func (r *Recorder) Record(_ context.Context, userID string, kind activity.Type, description, referenceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Entries = append(r.Entries, Entry{
		UserID:      userID,
		Type:        kind,
		Description: description,
		ReferenceID: referenceID,
	})
	return nil
}

// Last returns the most recent entry, or the zero Entry.
func (r *Recorder) Last() Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Entries) == 0 {
		return Entry{}
	}
	return r.Entries[len(r.Entries)-1]
}
