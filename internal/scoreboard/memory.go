// internal/scoreboard/memory.go
//
// In-memory implementation of the Store interface.
// Used when the SQLite database cannot be opened, so the current session
// can still rank its games. State is lost when the process exits.
//
// Characteristics:
//   - Stores entries in a slice; reads sort a filtered copy.
//   - Concurrency-safe via RWMutex.
//   - Applies the same daily one-result-per-date policy as the SQLite
//     store's unique index.

package scoreboard

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memory struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

// Save appends the entry, assigning ID/CreatedAt when unset. A second
// daily result for the same (player, date) is silently dropped.
func (m *memory) Save(ctx context.Context, e *Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if e.Mode == ModeDaily {
		for _, have := range m.entries {
			if have.Mode == ModeDaily && have.PlayerName == e.PlayerName && have.DateKey == e.DateKey {
				return nil
			}
		}
	}
	m.entries = append(m.entries, *e)
	return nil
}

func (m *memory) Top(ctx context.Context, limit int) ([]Entry, error) {
	return m.ranked(nil, limit), nil
}

func (m *memory) TopByMode(ctx context.Context, mode Mode, limit int) ([]Entry, error) {
	return m.ranked(func(e Entry) bool { return e.Mode == mode }, limit), nil
}

func (m *memory) TopForDate(ctx context.Context, dateKey string, limit int) ([]Entry, error) {
	return m.ranked(func(e Entry) bool { return e.Mode == ModeDaily && e.DateKey == dateKey }, limit), nil
}

func (m *memory) RecentForPlayer(ctx context.Context, name string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	m.mu.RLock()
	out := []Entry{}
	for _, e := range m.entries {
		if e.PlayerName == name {
			out = append(out, e)
		}
	}
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memory) AlreadyPlayedDaily(ctx context.Context, name, dateKey string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.entries {
		if e.Mode == ModeDaily && e.PlayerName == name && e.DateKey == dateKey {
			return true, nil
		}
	}
	return false, nil
}

// Close is a no-op for the in-memory store.
func (m *memory) Close() error { return nil }

// ranked returns up to limit entries passing filter, ordered by score
// descending then earliest first (insertion order breaks exact ties).
func (m *memory) ranked(filter func(Entry) bool, limit int) []Entry {
	if limit <= 0 {
		limit = DefaultLimit
	}
	m.mu.RLock()
	out := []Entry{}
	for _, e := range m.entries {
		if filter == nil || filter(e) {
			out = append(out, e)
		}
	}
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
