// internal/tui/board.go
//
// The guess loop shared by all modes: prompts, validation feedback, one
// scored row per accepted guess, win/loss banner.

package tui

import (
	"fmt"
	"strings"

	"github.com/alivaezii/mastermindgame/internal/game"
)

// PlayLoop drives one game to its end. Returns false if the player quit
// before finishing; rejected guesses never cost an attempt.
func PlayLoop(g *game.Game, pal *Palette) (bool, error) {
	rules := g.Rules()
	clearScreen()
	fmt.Printf("Legend: %s\n", pal.Legend())
	repeats := "repeats allowed"
	if !rules.AllowDuplicates {
		repeats = "no repeats"
	}
	fmt.Printf("Crack the %d-symbol code (%s). You have %d attempts.\n\n",
		rules.Length, repeats, rules.MaxAttempts)

	for {
		in, err := ReadInput(fmt.Sprintf("Guess %d/%d (q quits): ", g.AttemptsUsed()+1, rules.MaxAttempts))
		if err != nil {
			return false, err
		}
		if strings.EqualFold(in, "q") {
			fmt.Println("Game abandoned.")
			return false, nil
		}

		fb, status, err := g.SubmitGuess(game.Code(in))
		if err != nil {
			fmt.Printf("Invalid guess: %v\n", err)
			continue
		}

		fmt.Printf("%3d. %s   %s   exact %d partial %d\n",
			g.AttemptsUsed(), pal.Code(game.Code(in)), pal.Feedback(fb, rules.Length), fb.Exact, fb.Partial)

		switch status {
		case game.StatusWon:
			fmt.Printf("\nYou cracked the code in %d attempts!\n", g.AttemptsUsed())
			return true, nil
		case game.StatusLost:
			fmt.Printf("\nOut of attempts. The code was: %s\n", pal.Code(g.Secret()))
			return true, nil
		}
	}
}
