// internal/players/players.go
//
// Optional registered player profiles.
// Responsibilities:
//   - Name/passphrase validation and bcrypt hashing at registration.
//   - Login verification.
//   - Aggregate stats (games, wins, streaks) bumped as games finish.
//
// A profile is never required to put a score on the board; any free-form
// name can appear there. Registering adds credentials and stats on top.

package players

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidName rejects names outside 3-24 chars of [A-Za-z0-9_].
	ErrInvalidName = errors.New("invalid player name")
	// ErrInvalidPassphrase rejects passphrases outside 8-100 chars.
	ErrInvalidPassphrase = errors.New("invalid passphrase")
	// ErrNameTaken means the name is registered (names are matched
	// case-insensitively).
	ErrNameTaken = errors.New("player name already taken")
	// ErrNotFound means no profile exists under the name.
	ErrNotFound = errors.New("player not found")
	// ErrBadCredentials covers both unknown name and wrong passphrase,
	// so a login prompt cannot be used to probe which names exist.
	ErrBadCredentials = errors.New("bad credentials")
)

// Profile is a registered player.
type Profile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PassHash   string    `json:"-"`
	Games      int       `json:"games"`
	Wins       int       `json:"wins"`
	Streak     int       `json:"streak"`
	BestStreak int       `json:"bestStreak"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Store reads and writes profiles. It shares the scoreboard's database
// handle; the players table ships in the same schema.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open database handle.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func normalize(name string) string {
	return strings.TrimSpace(name)
}

func validateName(name string) error {
	if len(name) < 3 || len(name) > 24 {
		return fmt.Errorf("%w: must be 3-24 chars", ErrInvalidName)
	}
	for _, r := range name {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return fmt.Errorf("%w: letters, numbers, underscore only", ErrInvalidName)
		}
	}
	return nil
}

func validatePassphrase(p string) error {
	if len(p) < 8 || len(p) > 100 {
		return fmt.Errorf("%w: must be 8-100 chars", ErrInvalidPassphrase)
	}
	return nil
}

func hashPassphrase(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
	return string(b), err
}

func checkPassphrase(hash, p string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(p)) == nil
}

// Register validates name and passphrase, hashes the passphrase, and
// creates the profile.
func (s *Store) Register(ctx context.Context, name, passphrase string) (*Profile, error) {
	name = normalize(name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePassphrase(passphrase); err != nil {
		return nil, err
	}

	// Name matching is case-insensitive via the column collation; the
	// unique index backstops this check under concurrent registration.
	var exists int
	_ = s.db.QueryRowContext(ctx, `SELECT 1 FROM players WHERE name = ?`, name).Scan(&exists)
	if exists == 1 {
		return nil, ErrNameTaken
	}

	hash, err := hashPassphrase(passphrase)
	if err != nil {
		return nil, err
	}
	p := &Profile{
		ID:        uuid.NewString(),
		Name:      name,
		PassHash:  hash,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO players (id, name, pass_hash, created_at) VALUES (?, ?, ?, ?)`,
		p.ID, p.Name, p.PassHash, p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return p, nil
}

// Login verifies the passphrase and returns the profile.
func (s *Store) Login(ctx context.Context, name, passphrase string) (*Profile, error) {
	p, err := s.Get(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !checkPassphrase(p.PassHash, passphrase) {
		return nil, ErrBadCredentials
	}
	return p, nil
}

// Get loads a profile by name.
func (s *Store) Get(ctx context.Context, name string) (*Profile, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT id, name, pass_hash, games, wins, streak, best_streak, created_at
        FROM players WHERE name = ?`, normalize(name))
	return scanProfile(row)
}

func scanProfile(row *sql.Row) (*Profile, error) {
	var p Profile
	if err := row.Scan(&p.ID, &p.Name, &p.PassHash, &p.Games, &p.Wins, &p.Streak, &p.BestStreak, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// BumpStats increments games played; updates wins and streaks based on
// the result.
func (s *Store) BumpStats(ctx context.Context, id string, won bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	var games, wins, streak, best int
	row := tx.QueryRowContext(ctx, `SELECT games, wins, streak, best_streak FROM players WHERE id=?`, id)
	if err := row.Scan(&games, &wins, &streak, &best); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	games++
	if won {
		wins++
		streak++
		if streak > best {
			best = streak
		}
	} else {
		streak = 0
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE players SET games=?, wins=?, streak=?, best_streak=? WHERE id=?`,
		games, wins, streak, best, id,
	); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
