package main

import (
	"testing"

	"github.com/mkutay/stargaze/internal/chess"
	"github.com/mkutay/stargaze/internal/engine"
)

func TestRandomOpeningPlaysLegalMoves(t *testing.T) {
	pos := chess.NewInitialPosition()
	moves := randomOpening(pos, 6)
	if len(moves) != 6 || pos.Depth() != 6 {
		t.Fatalf("played %d moves, depth %d", len(moves), pos.Depth())
	}
	replay := chess.NewInitialPosition()
	for _, m := range moves {
		if _, err := replay.Play(m.String()); err != nil {
			t.Fatalf("random move %s not legal: %v", m, err)
		}
	}
	if replay.Hash != pos.Hash {
		t.Fatal("replayed opening reached a different position")
	}
}

func TestPlayGameStopsAtPlyLimit(t *testing.T) {
	p := PlayerConfig{Name: "d1", Cfg: engine.SearchConfig{MaxDepth: 1}}
	result, moves := playGame(p, p, 2, 10)
	if len(moves) > 10 {
		t.Fatalf("game ran %d plies", len(moves))
	}
	if result != resultDraw && len(moves) == 10 {
		t.Fatalf("result %s at the ply limit", result)
	}
}

func TestRunMatchCountsEveryGame(t *testing.T) {
	a := PlayerConfig{Name: "a", Cfg: engine.SearchConfig{MaxDepth: 1}}
	b := PlayerConfig{Name: "b", Cfg: engine.SearchConfig{MaxDepth: 1}}
	s := runMatch(a, b, 2, 0, 6)
	if s.a+s.b+s.draws != 2 {
		t.Fatalf("score %+v does not add up to 2 games", s)
	}
}
