// internal/daily/daily.go
//
// Daily challenge: one shared secret per calendar date. The secret is
// derived from HMAC(salt, date), so every player running with the same
// salt plays the same code without any coordination.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/alivaezii/mastermindgame/internal/game"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns a deterministic generator seed for a date using
// HMAC(salt, YYYY-MM-DD).
func Seed(date time.Time, salt string) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes for the seed
	return int64(binary.BigEndian.Uint64(sum[:8]))
}

// NewGame starts the challenge for the given date: classic rules, secret
// seeded from the date and salt.
func NewGame(date time.Time, salt string) (*game.Game, error) {
	return game.New(game.DefaultRules(), rand.New(rand.NewSource(Seed(date, salt))))
}
