package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	games := flag.Int("games", 2, "number of games to play")
	depthA := flag.Int("depth-a", 4, "search depth of player A")
	depthB := flag.Int("depth-b", 3, "search depth of player B")
	moveTime := flag.Duration("movetime", 0, "time limit per move (0 = depth only)")
	openingPlies := flag.Int("random-plies", 4, "random legal moves played before the engines take over")
	maxPlies := flag.Int("maxplies", 300, "adjudicate a draw after this many plies")
	debug := flag.Bool("debug", false, "log every move and search iteration")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	a := PlayerConfig{Name: fmt.Sprintf("depth %d", *depthA)}
	a.Cfg.MaxDepth, a.Cfg.TimeLimit = *depthA, *moveTime
	b := PlayerConfig{Name: fmt.Sprintf("depth %d", *depthB)}
	b.Cfg.MaxDepth, b.Cfg.TimeLimit = *depthB, *moveTime
	if a.Name == b.Name {
		a.Name += " (A)"
		b.Name += " (B)"
	}

	log.Info().Int("games", *games).Str("a", a.Name).Str("b", b.Name).Msg("selfplay starting")
	start := time.Now()
	score := runMatch(a, b, *games, *openingPlies, *maxPlies)

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("%s: %d\n", a.Name, score.a)
	fmt.Printf("%s: %d\n", b.Name, score.b)
	fmt.Printf("Draws: %d\n", score.draws)
	log.Info().Dur("elapsed", time.Since(start)).Msg("selfplay finished")
}
