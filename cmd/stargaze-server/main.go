package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mkutay/stargaze/internal/engine"
	"github.com/mkutay/stargaze/internal/server/game"
	httpserver "github.com/mkutay/stargaze/internal/server/http"
)

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	webDir := flag.String("web", "", "directory with a static client to serve under /web/")
	ttEntries := flag.Int("tt", engine.DefaultOptions().TTEntries, "transposition table entries per game")
	debug := flag.Bool("debug", false, "log search iterations")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	opts := engine.DefaultOptions()
	opts.TTEntries = *ttEntries
	srv := httpserver.NewServer(game.NewManagerWithOptions(opts), *webDir)

	log.Info().Str("addr", *addr).Str("web", *webDir).Msg("listening")
	hs := &http.Server{
		Addr:              *addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := hs.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
