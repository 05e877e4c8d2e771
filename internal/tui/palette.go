// internal/tui/palette.go
//
// Board colors: the six classic peg colors mapped onto the first six
// alphabet symbols, in order. Rendering degrades to plain symbols when
// colors are off or a symbol has no palette slot.

package tui

import (
	"fmt"
	"strings"

	"github.com/alivaezii/mastermindgame/internal/game"
)

// MaxColors is the palette size and the ceiling for color-count setup.
const MaxColors = 6

// The classic palette, in symbol order.
var paletteNames = [MaxColors]string{"Red", "Blue", "Green", "Yellow", "Purple", "Orange"}

// ANSI foreground codes matching paletteNames. Orange has no slot in the
// basic eight, so it uses a 256-color code.
var paletteANSI = [MaxColors]string{
	"\033[31m",       // Red
	"\033[34m",       // Blue
	"\033[32m",       // Green
	"\033[33m",       // Yellow
	"\033[35m",       // Purple
	"\033[38;5;208m", // Orange
}

const ansiReset = "\033[0m"

// AlphabetForColors returns the digit alphabet for an n-color game,
// e.g. "0123" for four colors.
func AlphabetForColors(n int) (string, error) {
	if n < 2 || n > MaxColors {
		return "", fmt.Errorf("colors must be between 2 and %d", MaxColors)
	}
	return "012345"[:n], nil
}

// Palette renders the symbols of one alphabet in color.
type Palette struct {
	alphabet []rune
	noColor  bool
}

// NewPalette builds a palette over the alphabet of the rules in play.
func NewPalette(alphabet string, noColor bool) *Palette {
	return &Palette{alphabet: []rune(alphabet), noColor: noColor}
}

// Symbol renders one symbol, colored when it has a palette slot.
func (p *Palette) Symbol(r rune) string {
	if p.noColor {
		return string(r)
	}
	for i, a := range p.alphabet {
		if a == r && i < MaxColors {
			return paletteANSI[i] + string(r) + ansiReset
		}
	}
	return string(r)
}

// Code renders a whole code with spaced symbols.
func (p *Palette) Code(c game.Code) string {
	parts := make([]string, 0, len(c))
	for _, r := range c {
		parts = append(parts, p.Symbol(r))
	}
	return strings.Join(parts, " ")
}

// Feedback renders pegs: one ● per exact match, one ○ per partial, and
// a dot for each position left unaccounted.
func (p *Palette) Feedback(fb game.Feedback, length int) string {
	parts := make([]string, 0, length)
	for i := 0; i < fb.Exact; i++ {
		parts = append(parts, "●")
	}
	for i := 0; i < fb.Partial; i++ {
		parts = append(parts, "○")
	}
	for len(parts) < length {
		parts = append(parts, ".")
	}
	return strings.Join(parts, " ")
}

// Legend lists each symbol with its color name, e.g. "0=Red 1=Blue".
func (p *Palette) Legend() string {
	parts := make([]string, 0, len(p.alphabet))
	for i, r := range p.alphabet {
		if i >= MaxColors {
			parts = append(parts, string(r))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%s", p.Symbol(r), paletteNames[i]))
	}
	return strings.Join(parts, " ")
}
