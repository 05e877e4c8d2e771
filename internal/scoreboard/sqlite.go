// internal/scoreboard/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout,
//     foreign keys).
//   - Applying the embedded schema migrations (idempotent, recorded in
//     _migrations).
//   - The ranked queries behind the boards.

package scoreboard

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/alivaezii/mastermindgame/assets"
)

// SQLStore persists entries in a SQLite database. Safe for concurrent
// use; database/sql serializes access through its pool.
type SQLStore struct {
	db *sql.DB
}

// Open opens (and creates if missing) the SQLite database at dsn,
// configures pragmas, and brings the schema up to date.
func Open(dsn string) (*SQLStore, error) {
	// Ensure directory exists for ./data/app.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	// Open DB with busy timeout and WAL journaling.
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if dsn == ":memory:" {
		// Every pooled connection would otherwise get its own fresh
		// in-memory database, losing the migrated schema.
		db.SetMaxOpenConns(1)
	}

	// Explicitly enforce foreign keys + WAL.
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}

	s := &SQLStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// migrate applies the embedded sql/*.sql scripts.
//
//   - Uses a _migrations table to track applied files.
//   - Executes each *.sql file in lexical order.
//   - Skips files already applied, so reopening is a no-op.
func (s *SQLStore) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	root, err := assets.Migrations()
	if err != nil {
		return fmt.Errorf("embedded migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(root, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		// Skip if already applied
		var done int
		err := s.db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Info().Str("migration", f).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlText, err := fs.ReadFile(root, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		// Run inside dedicated transaction
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlText)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

const entryColumns = `id, player_name, mode, won, attempts, max_attempts, score, date_key, created_at`

// Save inserts the entry. Daily rows hit the partial unique index on
// (player_name, date_key); INSERT OR IGNORE makes the second save of a
// day a no-op rather than an error.
func (s *SQLStore) Save(ctx context.Context, e *Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		// UTC so the stored text representation orders chronologically.
		e.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO scores
            (`+entryColumns+`)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.PlayerName, string(e.Mode), e.Won, e.Attempts, e.MaxAttempts, e.Score, e.DateKey, e.CreatedAt,
	)
	return err
}

// Top returns the best entries across all modes.
func (s *SQLStore) Top(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.queryEntries(ctx, `
        SELECT `+entryColumns+`
        FROM scores
        ORDER BY score DESC, created_at ASC, id ASC
        LIMIT ?`, limit)
}

// TopByMode returns the best entries for one mode.
func (s *SQLStore) TopByMode(ctx context.Context, mode Mode, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.queryEntries(ctx, `
        SELECT `+entryColumns+`
        FROM scores
        WHERE mode = ?
        ORDER BY score DESC, created_at ASC, id ASC
        LIMIT ?`, string(mode), limit)
}

// TopForDate returns the daily board for one date key.
func (s *SQLStore) TopForDate(ctx context.Context, dateKey string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.queryEntries(ctx, `
        SELECT `+entryColumns+`
        FROM scores
        WHERE mode = ? AND date_key = ?
        ORDER BY score DESC, created_at ASC, id ASC
        LIMIT ?`, string(ModeDaily), dateKey, limit)
}

// RecentForPlayer returns the player's entries, newest first.
func (s *SQLStore) RecentForPlayer(ctx context.Context, name string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.queryEntries(ctx, `
        SELECT `+entryColumns+`
        FROM scores
        WHERE player_name = ?
        ORDER BY created_at DESC, id DESC
        LIMIT ?`, name, limit)
}

// AlreadyPlayedDaily reports whether a daily row exists for the pair.
func (s *SQLStore) AlreadyPlayedDaily(ctx context.Context, name, dateKey string) (bool, error) {
	var cnt int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM scores WHERE mode=? AND player_name=? AND date_key=?`,
		string(ModeDaily), name, dateKey,
	).Scan(&cnt); err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// Close releases the database handle.
func (s *SQLStore) Close() error { return s.db.Close() }

// DB exposes the underlying handle so packages sharing the same database
// file (player profiles) can reuse it.
func (s *SQLStore) DB() *sql.DB { return s.db }

func (s *SQLStore) queryEntries(ctx context.Context, q string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		var (
			e    Entry
			mode string
		)
		if err := rows.Scan(&e.ID, &e.PlayerName, &mode, &e.Won, &e.Attempts, &e.MaxAttempts, &e.Score, &e.DateKey, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Mode = Mode(mode)
		out = append(out, e)
	}
	return out, rows.Err()
}
