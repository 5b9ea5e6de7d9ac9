package game

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/mkutay/stargaze/internal/chess"
	"github.com/mkutay/stargaze/internal/engine"
)

func TestNewGameAndGet(t *testing.T) {
	m := NewManager()
	g := m.NewGame()
	if _, err := uuid.Parse(g.ID); err != nil {
		t.Fatalf("id %q is not a uuid: %v", g.ID, err)
	}
	got, err := m.Get(g.ID)
	if err != nil || got != g {
		t.Fatalf("Get(%s) = %v, %v", g.ID, got, err)
	}
	s := g.Snapshot()
	if s.FEN != chess.StartFEN || len(s.LegalMoves) != 20 || s.Status != chess.StatusOngoing {
		t.Fatalf("unexpected initial snapshot %+v", s)
	}
}

func TestGetUnknownGame(t *testing.T) {
	m := NewManager()
	if _, err := m.Get("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("err=%v, want ErrGameNotFound", err)
	}
	if err := m.Delete("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("delete err=%v, want ErrGameNotFound", err)
	}
}

func TestNewGameFromFEN(t *testing.T) {
	m := NewManager()
	if _, err := m.NewGameFromFEN("not a fen"); !errors.Is(err, chess.ErrInvalidFEN) {
		t.Fatalf("err=%v, want ErrInvalidFEN", err)
	}
	g, err := m.NewGameFromFEN("R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if s := g.Snapshot(); s.Status != chess.StatusCheckmate {
		t.Fatalf("status %s", s.Status)
	}
	if _, err := g.Play("g8h8"); !errors.Is(err, ErrGameOver) {
		t.Fatalf("play after mate err=%v", err)
	}
	if _, _, err := g.AIMove(engine.SearchConfig{MaxDepth: 2}); !errors.Is(err, ErrGameOver) {
		t.Fatalf("ai move after mate err=%v", err)
	}
}

func TestPlayAndUndo(t *testing.T) {
	g := NewManager().NewGame()
	if _, err := g.Play("e2e5"); !errors.Is(err, chess.ErrInvalidMove) {
		t.Fatalf("err=%v, want ErrInvalidMove", err)
	}
	s, err := g.Play("e2e4")
	if err != nil {
		t.Fatal(err)
	}
	if s.ToMove != chess.Black || len(s.Moves) != 1 || s.Moves[0].String() != "e2e4" {
		t.Fatalf("snapshot after e2e4: %+v", s)
	}
	s, err = g.Undo()
	if err != nil {
		t.Fatal(err)
	}
	if s.FEN != chess.StartFEN || len(s.Moves) != 0 {
		t.Fatalf("undo gave %s", s.FEN)
	}
	if _, err := g.Undo(); err == nil {
		t.Fatal("undo with no moves succeeded")
	}
}

func TestAIMoveFindsMate(t *testing.T) {
	g, err := NewManager().NewGameFromFEN("7k/6pp/8/8/8/8/8/R5K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	res, s, err := g.AIMove(engine.SearchConfig{MaxDepth: 3})
	if err != nil {
		t.Fatal(err)
	}
	if res.BestMove.String() != "a1a8" || s.Status != chess.StatusCheckmate {
		t.Fatalf("played %s, status %s", res.BestMove, s.Status)
	}
}

func TestAIMovePlaysSearchedLegalMove(t *testing.T) {
	g, err := NewManager().NewGameFromFEN("4k3/8/8/8/1b6/8/8/R3K3 w Q - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	res, s, err := g.AIMove(engine.SearchConfig{MaxDepth: 3})
	if err != nil {
		t.Fatal(err)
	}
	if res.BestMove == chess.NoMove || s.Moves[0] != res.BestMove {
		t.Fatalf("searched %s but played %v", res.BestMove, s.Moves)
	}
	if res.BestMove.IsCastle() {
		t.Fatalf("castled out of check with %s", res.BestMove)
	}
}

func TestConcurrentGames(t *testing.T) {
	m := NewManager()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g := m.NewGame()
			if _, err := g.Play("g1f3"); err != nil {
				t.Error(err)
				return
			}
			if _, _, err := g.AIMove(engine.SearchConfig{MaxDepth: 1}); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	if m.Len() != 8 {
		t.Fatalf("len=%d want 8", m.Len())
	}
}
