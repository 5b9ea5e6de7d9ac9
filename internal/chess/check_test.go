package chess

import (
	"errors"
	"testing"
)

func TestIsAttacked(t *testing.T) {
	pos := mustDecode(t, "4k3/8/8/3p4/8/5N2/8/R3K3 w - - 0 1")
	sq := func(name string) int {
		s, err := ParseSquare(name)
		if err != nil {
			t.Fatal(err)
		}
		return s
	}
	cases := []struct {
		square string
		by     Color
		want   bool
	}{
		{"a8", White, true},  // rook up the file
		{"d1", White, true},  // rook and king
		{"g5", White, true},  // knight
		{"h8", White, false}, // nothing reaches it
		{"e4", Black, true},  // pawn d5
		{"c4", Black, true},  // pawn d5
		{"d4", Black, false}, // pawns do not attack straight ahead
		{"d7", Black, true},  // king
		{"e1", Black, false},
	}
	for _, tc := range cases {
		if got := pos.IsAttacked(sq(tc.square), tc.by); got != tc.want {
			t.Errorf("IsAttacked(%s, %s)=%v want %v", tc.square, tc.by, got, tc.want)
		}
	}
}

func TestSliderAttackBlocked(t *testing.T) {
	pos := mustDecode(t, "4k3/8/8/8/8/8/4P3/4RK2 w - - 0 1")
	if pos.IsAttacked(E8, White) {
		t.Fatal("rook attacks through its own pawn")
	}
	if pos.InCheck(Black) {
		t.Fatal("black reported in check")
	}
}

func TestPlay(t *testing.T) {
	pos := mustDecode(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	if _, err := pos.Play("e2d3"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("pinned bishop move err=%v, want ErrIllegalMove", err)
	}
	if pos.Depth() != 0 {
		t.Fatal("rejected move left history behind")
	}
	if _, err := pos.Play("e1e3"); !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("impossible move err=%v, want ErrInvalidMove", err)
	}
	m, err := pos.Play("e1d1")
	if err != nil {
		t.Fatal(err)
	}
	if m.String() != "e1d1" || pos.SideToMove != Black || pos.Depth() != 1 {
		t.Fatalf("play did not apply %s", m)
	}
}
