// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package votelog

import (
	"sync"

	"github.com/danielhkuo/avatar-vote/models"
)

// MaxEntries bounds the in-memory log; the oldest entry is evicted first.
const MaxEntries = 1000

// Recorder keeps the most recent vote events in memory, newest first.
// It is deliberately not persisted: the log is an admin convenience and
// restarts from empty.
type Recorder struct {
	mu      sync.Mutex
	entries []models.LogEntry
}

func New() *Recorder {
	return &Recorder{}
}

// Record prepends an entry, evicting the oldest once the cap is reached.
func (r *Recorder) Record(entry models.LogEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append([]models.LogEntry{entry}, r.entries...)
	if len(r.entries) > MaxEntries {
		r.entries = r.entries[:MaxEntries]
	}
}

// Len reports the number of recorded entries.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Query returns a page of entries starting at offset, newest first. Titles
// are re-resolved through lookup at query time, so entries track renames;
// when the image is gone the recorded title is kept, falling back to the
// deleted-image placeholder.
func (r *Recorder) Query(offset, limit int, lookup func(imageID string) (string, bool)) (entries []models.LogEntry, total int, hasMore bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total = len(r.entries)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 50
	}

	end := offset + limit
	if offset > total {
		offset = total
	}
	if end > total {
		end = total
	}

	entries = make([]models.LogEntry, end-offset)
	copy(entries, r.entries[offset:end])
	for i := range entries {
		if title, ok := lookup(entries[i].ImageID); ok {
			entries[i].ImageTitle = title
		} else if entries[i].ImageTitle == "" {
			entries[i].ImageTitle = models.DeletedImageTitle
		}
	}

	return entries, total, offset+limit < total
}
