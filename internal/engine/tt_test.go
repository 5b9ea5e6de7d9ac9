package engine

import (
	"testing"

	"github.com/mkutay/stargaze/internal/chess"
)

func TestTTStoreThenProbe(t *testing.T) {
	tt := NewTranspositionTable(0)
	m := chess.NewMove(12, 28, chess.FlagDoublePush)
	tt.Store(42, m, 17, 5, BoundLower)

	e, ok := tt.Probe(42)
	if !ok {
		t.Fatal("stored entry not found")
	}
	if e.Move != m || e.Score != 17 || e.Depth != 5 || e.Bound != BoundLower {
		t.Fatalf("probe returned %+v", e)
	}
	if _, ok := tt.Probe(43); ok {
		t.Fatal("unseen key reported present")
	}
}

func TestTTReplacement(t *testing.T) {
	tt := NewTranspositionTable(0)
	deep := chess.NewMove(6, 21, chess.FlagQuiet)
	shallow := chess.NewMove(1, 18, chess.FlagQuiet)

	tt.Store(1, deep, 10, 6, BoundExact)
	tt.Store(1, shallow, 20, 3, BoundExact)
	if e, _ := tt.Probe(1); e.Move != deep {
		t.Fatal("shallower entry replaced a deeper one from the same search")
	}

	tt.Store(1, shallow, 30, 6, BoundUpper)
	if e, _ := tt.Probe(1); e.Move != shallow || e.Score != 30 {
		t.Fatal("equal depth did not replace")
	}

	tt.NewSearch()
	tt.Store(1, deep, 40, 2, BoundExact)
	if e, _ := tt.Probe(1); e.Score != 30 {
		t.Fatal("entry from the previous search replaced by a shallower one")
	}

	tt.NewSearch()
	tt.Store(1, deep, 50, 1, BoundExact)
	if e, _ := tt.Probe(1); e.Score != 50 || e.Gen != tt.Generation() {
		t.Fatalf("stale entry kept: %+v", e)
	}
}

func TestTTNewSearchKeepsEntries(t *testing.T) {
	tt := NewTranspositionTable(0)
	tt.Store(7, chess.NoMove, 1, 1, BoundExact)
	tt.NewSearch()
	tt.NewSearch()
	if _, ok := tt.Probe(7); !ok {
		t.Fatal("aging removed an entry from an unbounded table")
	}
}

func TestTTCapPrunesOldGenerations(t *testing.T) {
	tt := NewTranspositionTable(4)
	for key := uint64(0); key < 8; key++ {
		tt.Store(key, chess.NoMove, 0, 1, BoundExact)
	}
	tt.NewSearch()
	if tt.Len() != 8 {
		t.Fatalf("previous generation pruned early: len=%d", tt.Len())
	}
	tt.Store(100, chess.NoMove, 0, 1, BoundExact)
	tt.NewSearch()
	if tt.Len() != 1 {
		t.Fatalf("len=%d after pruning, want 1", tt.Len())
	}
	if _, ok := tt.Probe(100); !ok {
		t.Fatal("recent entry pruned")
	}
}

func TestMateScoreTTAdjustment(t *testing.T) {
	for _, ply := range []int{0, 3, 17} {
		for _, score := range []int{MateScore - 5, -MateScore + 9, 250, -40} {
			if got := scoreFromTT(scoreToTT(score, ply), ply); got != score {
				t.Fatalf("ply %d score %d came back as %d", ply, score, got)
			}
		}
	}
	if scoreToTT(MateScore-5, 3) != MateScore-2 {
		t.Fatal("mate score not made node-relative")
	}
}
