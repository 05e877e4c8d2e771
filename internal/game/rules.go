// internal/game/rules.go
//
// Rules: the immutable game configuration, plus the validator applied to
// both secrets (at game construction) and guesses (at submission).

package game

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Rules describes one game's configuration. All other engine components
// depend on it. A zero Rules value is invalid; build one with NewRules
// or start from DefaultRules.
type Rules struct {
	Length          int    `json:"length"`
	Alphabet        string `json:"alphabet"`
	AllowDuplicates bool   `json:"allowDuplicates"`
	MaxAttempts     int    `json:"maxAttempts"`
}

// DefaultRules returns the classic board: four slots, six symbols,
// duplicates allowed, ten attempts.
func DefaultRules() Rules {
	return Rules{Length: 4, Alphabet: "012345", AllowDuplicates: true, MaxAttempts: 10}
}

// NewRules builds a Rules value, rejecting inconsistent configurations
// with an error wrapping ErrInvalidRules.
func NewRules(length int, alphabet string, allowDuplicates bool, maxAttempts int) (Rules, error) {
	r := Rules{Length: length, Alphabet: alphabet, AllowDuplicates: allowDuplicates, MaxAttempts: maxAttempts}
	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

// Validate re-checks the Rules invariants, so hand-assembled values fail
// game construction the same way NewRules would have failed.
func (r Rules) Validate() error {
	if r.Length < 1 {
		return fmt.Errorf("%w: length must be at least 1", ErrInvalidRules)
	}
	if r.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts must be at least 1", ErrInvalidRules)
	}
	size := utf8.RuneCountInString(r.Alphabet)
	if size < 2 {
		return fmt.Errorf("%w: alphabet needs at least 2 symbols", ErrInvalidRules)
	}
	seen := make(map[rune]bool, size)
	for _, ch := range r.Alphabet {
		if seen[ch] {
			return fmt.Errorf("%w: alphabet symbol %q repeats", ErrInvalidRules, ch)
		}
		seen[ch] = true
	}
	// Without duplicates a secret needs Length distinct symbols to exist.
	if !r.AllowDuplicates && r.Length > size {
		return fmt.Errorf("%w: length %d exceeds alphabet size %d with duplicates disallowed",
			ErrInvalidRules, r.Length, size)
	}
	return nil
}

// Check validates a candidate code against the rules. The checks run in
// a fixed order (length, then alphabet membership, then the duplicate
// policy) and the first failure wins, so callers always get one
// specific reason. Check has no side effects and is applied to secrets
// and guesses alike.
func (r Rules) Check(code Code) error {
	symbols := []rune(string(code))
	if len(symbols) != r.Length {
		return fmt.Errorf("%w: need %d symbols, got %d", ErrWrongLength, r.Length, len(symbols))
	}
	for _, ch := range symbols {
		if !strings.ContainsRune(r.Alphabet, ch) {
			return fmt.Errorf("%w: %q is not one of %q", ErrSymbolNotAllowed, ch, r.Alphabet)
		}
	}
	if !r.AllowDuplicates {
		seen := make(map[rune]bool, len(symbols))
		for _, ch := range symbols {
			if seen[ch] {
				return fmt.Errorf("%w: %q appears more than once", ErrDuplicateSymbol, ch)
			}
			seen[ch] = true
		}
	}
	return nil
}
