// internal/scoreboard/scoreboard.go
//
// Ranked results for finished games.
// Responsibilities:
//   - Calculate: the score formula (flat win base plus a bonus per
//     unused attempt; losses score zero).
//   - Entry: one finished game as persisted and ranked.
//   - Store: the persistence interface. SQLite is the primary
//     implementation (sqlite.go); memory.go keeps games rankable for
//     the session when the database cannot be opened.

package scoreboard

import (
	"context"
	"time"
)

// Mode labels how a scored game was played.
type Mode string

const (
	ModePvC   Mode = "pvc"   // secret generated by the program
	ModePvP   Mode = "pvp"   // pass-and-play, secret set by the other player
	ModeDaily Mode = "daily" // shared per-date secret
)

const (
	baseScore         = 100
	bonusPerRemaining = 10
)

// DefaultLimit applies to reads when the caller passes limit <= 0.
const DefaultLimit = 10

// Calculate returns the score for a finished game: a flat base for the
// win plus a bonus for every attempt left unused. Losses score zero.
func Calculate(won bool, attemptsUsed, maxAttempts int) int {
	if !won {
		return 0
	}
	remaining := maxAttempts - attemptsUsed
	if remaining < 0 {
		remaining = 0
	}
	return baseScore + bonusPerRemaining*remaining
}

// Entry is one finished game on the board.
type Entry struct {
	ID          string    `json:"id"`
	PlayerName  string    `json:"playerName"`
	Mode        Mode      `json:"mode"`
	Won         bool      `json:"won"`
	Attempts    int       `json:"attempts"`
	MaxAttempts int       `json:"maxAttempts"`
	Score       int       `json:"score"`
	DateKey     string    `json:"dateKey"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Store defines the persistence interface for the board.
// Implementations may be backed by SQLite (this package's default) or
// memory; both rank identically.
type Store interface {
	// Save persists an entry, assigning ID and CreatedAt when unset.
	// Daily entries are unique per (player, date): saving a second
	// result for the same pair is a silent no-op, so the first result
	// of the day is the one that counts.
	Save(ctx context.Context, e *Entry) error

	// Top returns the best entries across all modes, ordered by score
	// descending, earliest first on ties.
	Top(ctx context.Context, limit int) ([]Entry, error)

	// TopByMode is Top restricted to a single mode.
	TopByMode(ctx context.Context, mode Mode, limit int) ([]Entry, error)

	// TopForDate returns the daily board for one date key.
	TopForDate(ctx context.Context, dateKey string, limit int) ([]Entry, error)

	// RecentForPlayer returns a player's entries, newest first.
	RecentForPlayer(ctx context.Context, name string, limit int) ([]Entry, error)

	// AlreadyPlayedDaily reports whether the player has a daily entry
	// for the given date key.
	AlreadyPlayedDaily(ctx context.Context, name, dateKey string) (bool, error)

	// Close releases any underlying resources.
	Close() error
}
