package players

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alivaezii/mastermindgame/internal/scoreboard"
)

// testDB opens a migrated in-memory database the way production wiring
// does: profiles ride on the scoreboard's handle.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	s, err := scoreboard.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s.DB()
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	s := NewStore(testDB(t))

	p, err := s.Register(ctx, "alice_1", "correct horse battery")
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "alice_1", p.Name)
	assert.NotEmpty(t, p.PassHash)
	assert.NotContains(t, p.PassHash, "correct horse")
	assert.False(t, p.CreatedAt.IsZero())

	got, err := s.Login(ctx, "alice_1", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestRegisterTrimsName(t *testing.T) {
	ctx := context.Background()
	s := NewStore(testDB(t))

	p, err := s.Register(ctx, "  alice  ", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Name)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		player  string
		pass    string
		wantErr error
	}{
		{name: "name too short", player: "ab", pass: "longenough", wantErr: ErrInvalidName},
		{name: "name too long", player: strings.Repeat("a", 25), pass: "longenough", wantErr: ErrInvalidName},
		{name: "name with space", player: "bad name", pass: "longenough", wantErr: ErrInvalidName},
		{name: "name with punctuation", player: "alice!", pass: "longenough", wantErr: ErrInvalidName},
		{name: "passphrase too short", player: "alice", pass: "short", wantErr: ErrInvalidPassphrase},
		{name: "passphrase too long", player: "alice", pass: strings.Repeat("x", 101), wantErr: ErrInvalidPassphrase},
	}

	ctx := context.Background()
	s := NewStore(testDB(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(ctx, tt.player, tt.pass)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterDuplicateName(t *testing.T) {
	ctx := context.Background()
	s := NewStore(testDB(t))

	_, err := s.Register(ctx, "alice", "longenough")
	require.NoError(t, err)

	_, err = s.Register(ctx, "alice", "different pass")
	assert.ErrorIs(t, err, ErrNameTaken)

	// Matching ignores case.
	_, err = s.Register(ctx, "ALICE", "different pass")
	assert.ErrorIs(t, err, ErrNameTaken)
}

func TestLoginBadCredentials(t *testing.T) {
	ctx := context.Background()
	s := NewStore(testDB(t))

	_, err := s.Register(ctx, "alice", "longenough")
	require.NoError(t, err)

	_, err = s.Login(ctx, "alice", "wrong pass")
	assert.ErrorIs(t, err, ErrBadCredentials)

	// Unknown names report the same error as a wrong passphrase.
	_, err = s.Login(ctx, "nobody", "longenough")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestGetNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewStore(testDB(t))

	_, err := s.Get(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBumpStats(t *testing.T) {
	ctx := context.Background()
	s := NewStore(testDB(t))

	p, err := s.Register(ctx, "alice", "longenough")
	require.NoError(t, err)

	for _, won := range []bool{true, true, false, true} {
		require.NoError(t, s.BumpStats(ctx, p.ID, won))
	}

	got, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Games)
	assert.Equal(t, 3, got.Wins)
	assert.Equal(t, 1, got.Streak)
	assert.Equal(t, 2, got.BestStreak)

	assert.ErrorIs(t, s.BumpStats(ctx, "missing-id", true), ErrNotFound)
}
