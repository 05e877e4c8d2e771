// main.go
//
// Entry point for the mastermind terminal game.
//
// Responsibilities:
// - Parse the subcommand (play, top, serve) and fall back to the
//   interactive menus when none is given.
// - Wire shared dependencies: config, zerolog, the score store with its
//   in-memory fallback, and player profiles when the database is up.

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/alivaezii/mastermindgame/internal/config"
	"github.com/alivaezii/mastermindgame/internal/players"
	"github.com/alivaezii/mastermindgame/internal/scoreboard"
	"github.com/alivaezii/mastermindgame/internal/tui"
)

func main() {
	cfg := config.Load()

	// Logs go to stderr; stdout belongs to the board.
	cw := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05", NoColor: cfg.NoColor}
	log.Logger = log.Output(cw)
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var cmd string
	args := os.Args[1:]
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	switch cmd {
	case "":
		runInteractive(cfg)
	case "play":
		runPlay(cfg, args)
	case "top":
		runTop(cfg, args)
	case "serve":
		runServe(cfg, args)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Mastermind: crack the code in your terminal.

Usage: %s [command] [options]

Commands:
  (none)   Interactive menus: play, daily challenge, scores, profiles
  play     One quick game straight from flags
  top      Print the ranked board
  serve    Serve the read-only scores API

Run "%s <command> -h" for the options of a command.

Environment:
  MASTERMIND_DB   SQLite database path (default ./data/mastermind.db)
  LOG_LEVEL       zerolog level (default info)
  PORT            listen port for serve (default 5175)
  DAILY_SALT      salt for the daily challenge secret
  NO_COLOR        disable ANSI colors
`, os.Args[0], os.Args[0])
}

// openScores opens the SQLite store and falls back to a memory store so
// the game stays playable without a database.
func openScores(cfg *config.Config) scoreboard.Store {
	s, err := scoreboard.Open(cfg.DBPath)
	if err != nil {
		log.Warn().Err(err).Str("db", cfg.DBPath).Msg("database unavailable, scores last for this session only")
		return scoreboard.NewMemoryStore()
	}
	return s
}

func runInteractive(cfg *config.Config) {
	store := openScores(cfg)
	defer store.Close()

	// Profiles share the scoreboard database and are skipped on the
	// memory fallback.
	var profiles *players.Store
	if s, ok := store.(*scoreboard.SQLStore); ok {
		profiles = players.NewStore(s.DB())
	}

	if err := tui.NewApp(cfg, store, profiles).Run(); err != nil {
		log.Fatal().Err(err).Msg("session ended unexpectedly")
	}
}
