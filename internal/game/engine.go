// internal/game/engine.go
//
// Core game engine for a single Mastermind session.
// Responsibilities:
//   - Create new games, generating a secret (player-vs-computer) or
//     accepting one from the other player (pass-and-play).
//   - Validate and apply guesses; rejected guesses never consume an attempt.
//   - Score guesses with the two-pass algorithm in score.go.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - A Game exclusively owns its secret and history; accessors hand out
//     copies. Whether the secret is ever shown is the caller's decision.
//   - The engine performs no I/O and is not safe for concurrent use;
//     callers embedding it in a server must serialize access per game.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Game holds the state of a single Mastermind session.
type Game struct {
	id      string
	rules   Rules
	secret  Code
	history []Attempt
	status  Status
}

// New constructs a player-vs-computer game: the secret is generated
// from rules using rng. A nil rng is seeded from the clock; pass a
// seeded *rand.Rand for reproducible secrets.
func New(rules Rules, rng *rand.Rand) (*Game, error) {
	secret, err := GenerateSecret(rules, rng)
	if err != nil {
		return nil, err
	}
	return &Game{
		id:      uuid.NewString(),
		rules:   rules,
		secret:  secret,
		history: []Attempt{},
		status:  StatusPlaying,
	}, nil
}

// NewWithSecret constructs a pass-and-play game around an externally
// supplied secret, which must pass the same validation as any guess.
func NewWithSecret(rules Rules, secret Code) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if err := rules.Check(secret); err != nil {
		return nil, fmt.Errorf("secret rejected: %w", err)
	}
	return &Game{
		id:      uuid.NewString(),
		rules:   rules,
		secret:  secret,
		history: []Attempt{},
		status:  StatusPlaying,
	}, nil
}

// GenerateSecret produces a valid secret for rules: sampled with
// replacement when duplicates are allowed, as a permutation prefix of
// the alphabet otherwise. The result always passes rules.Check by
// construction. A nil rng falls back to a time-seeded source.
func GenerateSecret(rules Rules, rng *rand.Rand) (Code, error) {
	if err := rules.Validate(); err != nil {
		return "", err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	symbols := []rune(rules.Alphabet)
	out := make([]rune, rules.Length)
	if rules.AllowDuplicates {
		for i := range out {
			out[i] = symbols[rng.Intn(len(symbols))]
		}
	} else {
		for i, j := range rng.Perm(len(symbols))[:rules.Length] {
			out[i] = symbols[j]
		}
	}
	return Code(out), nil
}

// SubmitGuess validates and scores a guess, mutating the game state.
// Returns the feedback and the status after the guess.
//
// Rejections:
//   - A terminal game rejects with ErrGameFinished and no mutation.
//   - A guess failing rules.Check is reported with its specific reason
//     and is NOT recorded; the attempt counter is untouched.
//
// State transitions:
//   - Feedback.Exact == rules.Length → won.
//   - Else, attempts used == rules.MaxAttempts → lost.
//   - Else the game stays in playing.
func (g *Game) SubmitGuess(guess Code) (Feedback, Status, error) {
	if g.status != StatusPlaying {
		return Feedback{}, g.status, fmt.Errorf("no more guesses accepted: %w", ErrGameFinished)
	}
	if err := g.rules.Check(guess); err != nil {
		return Feedback{}, g.status, err
	}

	fb := Score(g.secret, guess)
	g.history = append(g.history, Attempt{
		Index:    len(g.history) + 1,
		Guess:    guess,
		Feedback: fb,
	})

	if fb.Exact == g.rules.Length {
		g.status = StatusWon
	} else if len(g.history) >= g.rules.MaxAttempts {
		g.status = StatusLost
	}
	return fb, g.status, nil
}

// ID returns the game's unique identifier.
func (g *Game) ID() string { return g.id }

// Rules returns the game's configuration.
func (g *Game) Rules() Rules { return g.rules }

// Status reports the current state.
func (g *Game) Status() Status { return g.status }

// Finished reports whether the game reached a terminal state.
func (g *Game) Finished() bool { return g.status != StatusPlaying }

// Won reports whether the game ended in a win.
func (g *Game) Won() bool { return g.status == StatusWon }

// Secret returns the secret code. The engine never prints it; callers
// decide when (and whether) to reveal it.
func (g *Game) Secret() Code { return g.secret }

// History returns a copy of the scored attempts in submission order.
func (g *Game) History() []Attempt {
	out := make([]Attempt, len(g.history))
	copy(out, g.history)
	return out
}

// AttemptsUsed returns how many guesses have been accepted so far.
func (g *Game) AttemptsUsed() int { return len(g.history) }

// RemainingAttempts returns how many guesses are left.
func (g *Game) RemainingAttempts() int {
	if left := g.rules.MaxAttempts - len(g.history); left > 0 {
		return left
	}
	return 0
}
