// play.go
//
// The play subcommand: one game straight from flags, no menus. -seed
// makes the generated secret reproducible and -secret switches to a
// supplied code, which records the result as a pvp game.

package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/alivaezii/mastermindgame/internal/config"
	"github.com/alivaezii/mastermindgame/internal/daily"
	"github.com/alivaezii/mastermindgame/internal/game"
	"github.com/alivaezii/mastermindgame/internal/scoreboard"
	"github.com/alivaezii/mastermindgame/internal/tui"
)

func runPlay(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	var (
		length   = fs.Int("length", 4, "code length")
		colors   = fs.Int("colors", tui.MaxColors, "number of colors in the palette (2-6)")
		attempts = fs.Int("attempts", 10, "maximum attempts")
		noDups   = fs.Bool("no-duplicates", false, "forbid repeated symbols in the secret")
		seed     = fs.Int64("seed", 0, "seed for a reproducible secret (0 picks one at random)")
		secret   = fs.String("secret", "", "play against this code instead of a generated one")
		name     = fs.String("name", "player", "name recorded on the board")
	)
	_ = fs.Parse(args)

	alphabet, err := tui.AlphabetForColors(*colors)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -colors value")
	}
	rules, err := game.NewRules(*length, alphabet, !*noDups, *attempts)
	if err != nil {
		log.Fatal().Err(err).Msg("these settings do not form a playable game")
	}

	var (
		g    *game.Game
		mode = scoreboard.ModePvC
	)
	if *secret != "" {
		g, err = game.NewWithSecret(rules, game.Code(*secret))
		mode = scoreboard.ModePvP
	} else {
		var rng *rand.Rand
		if *seed != 0 {
			rng = rand.New(rand.NewSource(*seed))
		}
		g, err = game.New(rules, rng)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("cannot start the game")
	}

	finished, err := tui.PlayLoop(g, tui.NewPalette(rules.Alphabet, cfg.NoColor))
	if err != nil {
		log.Fatal().Err(err).Msg("reading input")
	}
	if !finished {
		return
	}

	store := openScores(cfg)
	defer store.Close()

	points := scoreboard.Calculate(g.Won(), g.AttemptsUsed(), rules.MaxAttempts)
	entry := &scoreboard.Entry{
		PlayerName:  *name,
		Mode:        mode,
		Won:         g.Won(),
		Attempts:    g.AttemptsUsed(),
		MaxAttempts: rules.MaxAttempts,
		Score:       points,
		DateKey:     daily.DateKey(time.Now()),
	}
	if err := store.Save(context.Background(), entry); err != nil {
		log.Warn().Err(err).Msg("save score")
	}
	fmt.Printf("Score: %d\n", points)
}
