package chess

import (
	"context"
	"testing"
)

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestPerft(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"start d1", StartFEN, 1, 20},
		{"start d2", StartFEN, 2, 400},
		{"start d3", StartFEN, 3, 8902},
		{"kiwipete d1", kiwipeteFEN, 1, 48},
		{"kiwipete d2", kiwipeteFEN, 2, 2039},
		{"endgame d3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustDecode(t, tc.fen)
			before := pos.Hash
			if got := pos.Perft(tc.depth); got != tc.want {
				t.Fatalf("perft(%d)=%d want %d", tc.depth, got, tc.want)
			}
			if pos.Hash != before || pos.Depth() != 0 {
				t.Fatal("perft left moves applied")
			}
		})
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	pos := mustDecode(t, kiwipeteFEN)
	entries, err := pos.Divide(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 48 {
		t.Fatalf("got %d root moves, want 48", len(entries))
	}
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	if total != 2039 {
		t.Fatalf("divide total %d want 2039", total)
	}
}

func TestDivideCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewInitialPosition().Divide(ctx, 3); err == nil {
		t.Fatal("expected context error")
	}
}
