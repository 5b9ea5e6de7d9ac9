package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mkutay/stargaze/internal/chess"
)

func main() {
	fen := flag.String("fen", chess.StartFEN, "position to count from")
	depth := flag.Int("depth", 4, "perft depth")
	divide := flag.Bool("divide", false, "print node counts per root move")
	prof := flag.String("profile", "", "write a CPU profile to this directory")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	pos, err := chess.DecodePosition(*fen)
	if err != nil {
		log.Fatal().Err(err).Msg("bad position")
	}
	log.Debug().Str("fen", pos.Encode()).Int("pseudo_legal", len(pos.GenerateMoves())).Msg("position")

	if err := run(pos, *depth, *divide, *prof); err != nil {
		log.Fatal().Err(err).Msg("perft")
	}
}

// run counts leaf nodes and reports them. The profiler is stopped before run
// returns, so a failure still leaves a complete profile.
func run(pos *chess.Position, depth int, divide bool, prof string) error {
	if prof != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(prof), profile.NoShutdownHook).Stop()
	}

	start := time.Now()
	var nodes uint64
	if divide {
		entries, err := pos.Divide(context.Background(), depth)
		if err != nil {
			return err
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Move.String() < entries[j].Move.String()
		})
		for _, e := range entries {
			fmt.Printf("%s: %d\n", e.Move, e.Nodes)
			nodes += e.Nodes
		}
		fmt.Println()
	} else {
		nodes = pos.Perft(depth)
	}
	elapsed := time.Since(start)

	fmt.Printf("Nodes searched: %d\n", nodes)
	log.Info().
		Int("depth", depth).
		Uint64("nodes", nodes).
		Dur("elapsed", elapsed).
		Float64("mnps", float64(nodes)/elapsed.Seconds()/1e6).
		Msg("perft")
	return nil
}
