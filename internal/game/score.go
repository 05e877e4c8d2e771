// internal/game/score.go
//
// Feedback computation: the classic two-pass consumption algorithm.

package game

// Score computes Feedback for a guess against a secret.
//
// Pass 1:
//   - Count exact matches (same symbol, same position) and mark those
//     positions consumed.
//   - Tally the remaining (non-exact) secret symbols by value.
//
// Pass 2:
//   - For each non-exact guess symbol: if the tally still holds that
//     value, count a partial match and decrement the tally.
//
// Consuming positions this way keeps a symbol from being counted both
// exact and partial, and keeps one secret occurrence from satisfying
// several guess occurrences when duplicates are in play. Swapping the
// secret and guess arguments yields the same Feedback.
//
// Both codes are expected to be validated against the same Rules; on a
// length mismatch Score returns zero Feedback.
func Score(secret, guess Code) Feedback {
	s := []rune(string(secret))
	g := []rune(string(guess))
	if len(s) != len(g) {
		return Feedback{}
	}

	var fb Feedback
	remaining := make(map[rune]int, len(s))

	// First pass: exact matches, tally leftover secret symbols.
	for i := range s {
		if s[i] == g[i] {
			fb.Exact++
		} else {
			remaining[s[i]]++
		}
	}

	// Second pass: resolve partial matches against the tally.
	for i := range g {
		if s[i] == g[i] {
			continue
		}
		if remaining[g[i]] > 0 {
			fb.Partial++
			remaining[g[i]]--
		}
	}
	return fb
}
