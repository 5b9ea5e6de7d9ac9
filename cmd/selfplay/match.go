package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/mkutay/stargaze/internal/chess"
	"github.com/mkutay/stargaze/internal/engine"
)

type PlayerConfig struct {
	Name string
	Cfg  engine.SearchConfig
}

type gameResult int

const (
	resultDraw gameResult = iota
	resultWhite
	resultBlack
)

func (r gameResult) String() string {
	switch r {
	case resultWhite:
		return "1-0"
	case resultBlack:
		return "0-1"
	default:
		return "1/2-1/2"
	}
}

// randomOpening plays n uniformly random legal moves so repeated games do not
// all follow the same line. It stops early if the game ends.
func randomOpening(pos *chess.Position, n int) []chess.Move {
	var played []chess.Move
	for i := 0; i < n; i++ {
		legal := pos.LegalMoves()
		if len(legal) == 0 {
			break
		}
		m := legal[frand.Intn(len(legal))]
		pos.MakeMove(m)
		played = append(played, m)
	}
	return played
}

// playGame runs one engine-vs-engine game. Each side gets its own engine so
// transposition tables are not shared between players.
func playGame(white, black PlayerConfig, openingPlies, maxPlies int) (gameResult, []chess.Move) {
	pos := chess.NewInitialPosition()
	moves := randomOpening(pos, openingPlies)
	engines := [2]*engine.Engine{engine.NewEngine(), engine.NewEngine()}
	players := [2]PlayerConfig{white, black}

	for len(moves) < maxPlies {
		switch pos.Status() {
		case chess.StatusCheckmate:
			if pos.SideToMove == chess.White {
				return resultBlack, moves
			}
			return resultWhite, moves
		case chess.StatusStalemate:
			return resultDraw, moves
		}

		side := pos.SideToMove
		res := engines[side].Search(pos, players[side].Cfg)
		if res.BestMove == chess.NoMove || !pos.IsLegal(res.BestMove) {
			log.Error().Str("fen", pos.Encode()).Str("move", res.BestMove.String()).Msg("engine returned unusable move")
			return resultDraw, moves
		}
		log.Debug().
			Int("ply", len(moves)+1).
			Str("side", side.String()).
			Str("move", res.BestMove.String()).
			Int("score", res.Score).
			Int("depth", res.Depth).
			Int64("nodes", res.Nodes).
			Int64("nps", res.NPS).
			Msg("move")

		pos.MakeMove(res.BestMove)
		moves = append(moves, res.BestMove)
	}
	return resultDraw, moves
}

type matchScore struct {
	a, b, draws int
}

// runMatch alternates colors between a and b over games games.
func runMatch(a, b PlayerConfig, games, openingPlies, maxPlies int) matchScore {
	var score matchScore
	for g := 0; g < games; g++ {
		white, black := a, b
		if g%2 == 1 {
			white, black = b, a
		}
		result, moves := playGame(white, black, openingPlies, maxPlies)
		fmt.Printf("Game %d: %s (white) vs %s (black): %s in %d plies\n", g+1, white.Name, black.Name, result, len(moves))

		switch {
		case result == resultDraw:
			score.draws++
		case (result == resultWhite) == (white.Name == a.Name):
			score.a++
		default:
			score.b++
		}
	}
	return score
}
