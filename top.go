// top.go
//
// The top subcommand: print the ranked board and leave.

package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/alivaezii/mastermindgame/internal/config"
	"github.com/alivaezii/mastermindgame/internal/scoreboard"
	"github.com/alivaezii/mastermindgame/internal/tui"
)

func runTop(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("top", flag.ExitOnError)
	var (
		limit = fs.Int("limit", scoreboard.DefaultLimit, "number of entries to print")
		mode  = fs.String("mode", "", "filter by mode: pvc, pvp or daily")
		date  = fs.String("date", "", "daily board for one date (YYYY-MM-DD)")
	)
	_ = fs.Parse(args)

	switch scoreboard.Mode(*mode) {
	case "", scoreboard.ModePvC, scoreboard.ModePvP, scoreboard.ModeDaily:
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode, want pvc, pvp or daily")
	}

	store := openScores(cfg)
	defer store.Close()

	ctx := context.Background()
	var (
		rows []scoreboard.Entry
		err  error
	)
	switch {
	case *date != "":
		fmt.Printf("DAILY BOARD %s\n", *date)
		rows, err = store.TopForDate(ctx, *date, *limit)
	case *mode != "":
		fmt.Printf("HIGH SCORES (%s)\n", *mode)
		rows, err = store.TopByMode(ctx, scoreboard.Mode(*mode), *limit)
	default:
		fmt.Println("HIGH SCORES")
		rows, err = store.Top(ctx, *limit)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("read board")
	}
	tui.PrintEntries(rows)
}
