package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classicRules(t *testing.T) Rules {
	t.Helper()
	r, err := NewRules(4, "012345", true, 10)
	require.NoError(t, err)
	return r
}

func TestGenerateSecret(t *testing.T) {
	t.Run("with duplicates", func(t *testing.T) {
		rules, err := NewRules(4, "0123", true, 10)
		require.NoError(t, err)

		secret, err := GenerateSecret(rules, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.NoError(t, rules.Check(secret))
	})

	t.Run("without duplicates", func(t *testing.T) {
		rules, err := NewRules(3, "0123", false, 10)
		require.NoError(t, err)

		for seed := int64(0); seed < 20; seed++ {
			secret, err := GenerateSecret(rules, rand.New(rand.NewSource(seed)))
			require.NoError(t, err)
			assert.NoError(t, rules.Check(secret), "seed %d produced %q", seed, secret)
		}
	})

	t.Run("deterministic for a seed", func(t *testing.T) {
		rules := classicRules(t)
		a, err := GenerateSecret(rules, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		b, err := GenerateSecret(rules, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("nil rng still yields a valid secret", func(t *testing.T) {
		rules := classicRules(t)
		secret, err := GenerateSecret(rules, nil)
		require.NoError(t, err)
		assert.NoError(t, rules.Check(secret))
	})

	t.Run("inconsistent rules rejected", func(t *testing.T) {
		bad := Rules{Length: 5, Alphabet: "012", AllowDuplicates: false, MaxAttempts: 10}
		_, err := GenerateSecret(bad, nil)
		assert.ErrorIs(t, err, ErrInvalidRules)
	})
}

func TestNewGame(t *testing.T) {
	rules := classicRules(t)

	g, err := New(rules, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.NotEmpty(t, g.ID())
	assert.Equal(t, rules, g.Rules())
	assert.Equal(t, StatusPlaying, g.Status())
	assert.False(t, g.Finished())
	assert.False(t, g.Won())
	assert.Empty(t, g.History())
	assert.Equal(t, 0, g.AttemptsUsed())
	assert.Equal(t, 10, g.RemainingAttempts())
	assert.NoError(t, rules.Check(g.Secret()))
}

func TestNewGameIDsDiffer(t *testing.T) {
	rules := classicRules(t)
	a, err := New(rules, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	b, err := New(rules, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestNewWithSecret(t *testing.T) {
	rules := classicRules(t)

	t.Run("valid secret accepted", func(t *testing.T) {
		g, err := NewWithSecret(rules, "0123")
		require.NoError(t, err)
		assert.Equal(t, Code("0123"), g.Secret())
		assert.Equal(t, StatusPlaying, g.Status())
	})

	t.Run("invalid secrets rejected with reason", func(t *testing.T) {
		_, err := NewWithSecret(rules, "012")
		assert.ErrorIs(t, err, ErrWrongLength)

		_, err = NewWithSecret(rules, "012X")
		assert.ErrorIs(t, err, ErrSymbolNotAllowed)

		noDup := Rules{Length: 4, Alphabet: "012345", AllowDuplicates: false, MaxAttempts: 10}
		_, err = NewWithSecret(noDup, "1123")
		assert.ErrorIs(t, err, ErrDuplicateSymbol)
	})

	t.Run("inconsistent rules rejected", func(t *testing.T) {
		bad := Rules{Length: 4, Alphabet: "AB", AllowDuplicates: false, MaxAttempts: 5}
		_, err := NewWithSecret(bad, "AB")
		assert.ErrorIs(t, err, ErrInvalidRules)
	})
}

func TestSubmitGuessWin(t *testing.T) {
	g, err := NewWithSecret(classicRules(t), "0123")
	require.NoError(t, err)

	fb, status, err := g.SubmitGuess("0123")
	require.NoError(t, err)
	assert.Equal(t, Feedback{Exact: 4, Partial: 0}, fb)
	assert.Equal(t, StatusWon, status)
	assert.True(t, g.Finished())
	assert.True(t, g.Won())
	assert.Equal(t, 1, g.AttemptsUsed())
	assert.Equal(t, 9, g.RemainingAttempts())
}

func TestSubmitGuessLossAtMaxAttempts(t *testing.T) {
	rules, err := NewRules(4, "012345", true, 3)
	require.NoError(t, err)
	g, err := NewWithSecret(rules, "0123")
	require.NoError(t, err)

	for i, guess := range []Code{"1111", "2222"} {
		_, status, err := g.SubmitGuess(guess)
		require.NoError(t, err, "guess %d", i+1)
		assert.Equal(t, StatusPlaying, status)
	}

	_, status, err := g.SubmitGuess("3333")
	require.NoError(t, err)
	assert.Equal(t, StatusLost, status)
	assert.True(t, g.Finished())
	assert.False(t, g.Won())
	assert.Equal(t, 0, g.RemainingAttempts())
	// The engine keeps the secret available so the caller can reveal it.
	assert.Equal(t, Code("0123"), g.Secret())
}

func TestSubmitGuessWinOnLastAttempt(t *testing.T) {
	rules, err := NewRules(4, "012345", true, 2)
	require.NoError(t, err)
	g, err := NewWithSecret(rules, "0123")
	require.NoError(t, err)

	_, status, err := g.SubmitGuess("1111")
	require.NoError(t, err)
	assert.Equal(t, StatusPlaying, status)

	_, status, err = g.SubmitGuess("0123")
	require.NoError(t, err)
	assert.Equal(t, StatusWon, status)
	assert.Equal(t, 2, g.AttemptsUsed())
}

func TestSubmitGuessRejectionsKeepAttempts(t *testing.T) {
	g, err := NewWithSecret(classicRules(t), "0123")
	require.NoError(t, err)

	for _, guess := range []Code{"012", "01234", "012X", ""} {
		_, status, err := g.SubmitGuess(guess)
		assert.Error(t, err, "guess %q", guess)
		assert.Equal(t, StatusPlaying, status)
	}
	assert.Equal(t, 0, g.AttemptsUsed())
	assert.Empty(t, g.History())

	// A valid guess still goes through after any number of rejections.
	_, _, err = g.SubmitGuess("4455")
	require.NoError(t, err)
	assert.Equal(t, 1, g.AttemptsUsed())
}

func TestSubmitGuessAfterFinished(t *testing.T) {
	g, err := NewWithSecret(classicRules(t), "0123")
	require.NoError(t, err)

	_, _, err = g.SubmitGuess("0123")
	require.NoError(t, err)
	require.True(t, g.Finished())

	_, status, err := g.SubmitGuess("4444")
	assert.ErrorIs(t, err, ErrGameFinished)
	assert.Equal(t, StatusWon, status)
	assert.Equal(t, 1, g.AttemptsUsed())
}

func TestHistoryRecordsAttemptsInOrder(t *testing.T) {
	g, err := NewWithSecret(classicRules(t), "0123")
	require.NoError(t, err)

	guesses := []Code{"1111", "0321", "0123"}
	for _, guess := range guesses {
		_, _, err := g.SubmitGuess(guess)
		require.NoError(t, err)
	}

	history := g.History()
	require.Len(t, history, 3)
	for i, at := range history {
		assert.Equal(t, i+1, at.Index)
		assert.Equal(t, guesses[i], at.Guess)
		assert.Equal(t, Score("0123", guesses[i]), at.Feedback)
	}
}

func TestHistoryIsACopy(t *testing.T) {
	g, err := NewWithSecret(classicRules(t), "0123")
	require.NoError(t, err)
	_, _, err = g.SubmitGuess("1111")
	require.NoError(t, err)

	history := g.History()
	history[0].Guess = "9999"

	assert.Equal(t, Code("1111"), g.History()[0].Guess)
}

// Guessing the generated secret back always wins, for any seed.
func TestPlayComputerRoundTrip(t *testing.T) {
	rules := classicRules(t)
	for seed := int64(0); seed < 10; seed++ {
		g, err := New(rules, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		fb, status, err := g.SubmitGuess(g.Secret())
		require.NoError(t, err)
		assert.Equal(t, rules.Length, fb.Exact, "seed %d", seed)
		assert.Equal(t, StatusWon, status, "seed %d", seed)
	}
}
