package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	at := time.Date(2026, 8, 20, 23, 30, 0, 0, loc)
	assert.Equal(t, "2026-08-21", DateKey(at))

	assert.Equal(t, "2026-08-21", DateKey(time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)))
}

func TestSeedDeterministic(t *testing.T) {
	date := time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC)

	a := Seed(date, "salt_a")
	b := Seed(date, "salt_a")
	assert.Equal(t, a, b)

	// Any time on the same UTC date seeds identically.
	later := time.Date(2026, 8, 21, 22, 45, 0, 0, time.UTC)
	assert.Equal(t, a, Seed(later, "salt_a"))
}

func TestSeedVaries(t *testing.T) {
	date := time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)

	assert.NotEqual(t, Seed(date, "salt_a"), Seed(date, "salt_b"))
	assert.NotEqual(t, Seed(date, "salt_a"), Seed(date.AddDate(0, 0, 1), "salt_a"))
}

func TestNewGameSharedSecret(t *testing.T) {
	date := time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)

	a, err := NewGame(date, "salt_a")
	require.NoError(t, err)
	b, err := NewGame(date, "salt_a")
	require.NoError(t, err)

	// Two players on the same date and salt face the same code.
	assert.Equal(t, a.Secret(), b.Secret())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 4, len(a.Secret()))
}
