// internal/game/types.go
//
// Core type definitions for the Mastermind game engine.
// Defines:
//   - Code: an ordered sequence of symbols (secret or guess).
//   - Feedback: result of scoring a guess (exact/partial counts).
//   - Attempt: one scored guess in a game's history.
//   - Status: coarse game state (playing/won/lost).
//   - The sentinel errors every rejection is wrapped with.

package game

import "errors"

// Code is an immutable, ordered sequence of symbols drawn from a Rules
// alphabet. Symbols are runes, so multi-byte alphabets work.
type Code string

// Feedback counts the two kinds of matches for one guess:
// Exact symbols in the right position ("bulls") and Partial symbols
// present elsewhere in the secret ("cows"). Exact+Partial never
// exceeds the code length.
type Feedback struct {
	Exact   int `json:"exact"`
	Partial int `json:"partial"`
}

// Attempt is one accepted guess with its feedback. Index is 1-based and
// matches the attempts-used count at the time the guess was scored.
type Attempt struct {
	Index    int      `json:"index"`
	Guess    Code     `json:"guess"`
	Feedback Feedback `json:"feedback"`
}

// Status represents the coarse state of a game.
// Possible values:
//   - "playing": guesses are still accepted.
//   - "won":     a guess matched the secret exactly.
//   - "lost":    the attempt budget ran out without a win.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

var (
	// ErrInvalidRules marks an internally inconsistent Rules value.
	ErrInvalidRules = errors.New("invalid rules")

	// ErrWrongLength, ErrSymbolNotAllowed and ErrDuplicateSymbol are the
	// distinct validation rejections for a candidate code, in the order
	// the checks run.
	ErrWrongLength      = errors.New("wrong length")
	ErrSymbolNotAllowed = errors.New("symbol not in alphabet")
	ErrDuplicateSymbol  = errors.New("duplicate symbols not allowed")

	// ErrGameFinished rejects guesses submitted after a game reached a
	// terminal state.
	ErrGameFinished = errors.New("game already finished")
)
