// serve.go
//
// The serve subcommand: expose the read-only scores API over HTTP.

package main

import (
	"flag"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/alivaezii/mastermindgame/internal/config"
	"github.com/alivaezii/mastermindgame/internal/httpserver"
)

func runServe(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	port := fs.Int("port", cfg.Port, "listen port")
	_ = fs.Parse(args)

	store := openScores(cfg)
	defer store.Close()

	srv := httpserver.New(store)
	addr := fmt.Sprintf(":%d", *port)
	log.Info().Str("addr", addr).Msg("starting scores API")
	if err := srv.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
