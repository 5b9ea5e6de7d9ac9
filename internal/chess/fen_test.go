package chess

import (
	"errors"
	"testing"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 1",
		"4k3/8/8/8/4Pp2/8/8/4K3 b - e3 0 1",
		"k7/8/8/8/8/8/8/7K w - - 0 1",
	}
	for _, fen := range fens {
		if got := mustDecode(t, fen).Encode(); got != fen {
			t.Errorf("round trip:\n got %s\nwant %s", got, fen)
		}
	}
}

func TestEncodeAfterDoublePush(t *testing.T) {
	pos := NewInitialPosition()
	pos.MakeMove(mustParse(t, pos, "e2e4"))
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	if got := pos.Encode(); got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestDecodeShortFEN(t *testing.T) {
	pos := mustDecode(t, "4k3/8/8/8/8/8/8/4K3 b")
	if pos.SideToMove != Black || pos.Castling != NoCastling || pos.LastMove() != NoMove {
		t.Fatalf("unexpected defaults: %s", pos.Encode())
	}
}

func TestDecodeInvalidFEN(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkx",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e3",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9",
		// en passant target occupied
		"4k3/8/4n3/3Pp3/8/8/8/4K3 w - e6 0 1",
		// en passant square on the wrong rank for the side to move
		"4k3/8/8/8/4N3/3Pp3/8/4K3 w - e4 0 1",
		"4k3/8/8/8/3pP3/8/8/4K3 w - e3 0 1",
		// origin of the double push occupied
		"4k3/4r3/8/3Pp3/8/8/8/4K3 w - e6 0 1",
		// kings
		"8/8/8/8/8/8/8/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/K3K3 w - - 0 1",
		"4k3/8/8/8/8/8/8/2k1K3 b - - 0 1",
	}
	for _, fen := range bad {
		if _, err := DecodePosition(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("DecodePosition(%q) err=%v, want ErrInvalidFEN", fen, err)
		}
	}
}

func TestParseMove(t *testing.T) {
	pos := NewInitialPosition()
	m, err := pos.ParseMove("g1f3")
	if err != nil {
		t.Fatal(err)
	}
	if m.From() != G1 || SquareName(m.To()) != "f3" || m.Flags() != FlagQuiet {
		t.Fatalf("parsed %s flags %04b", m, m.Flags())
	}
	if m, _ := pos.ParseMove("e2e4"); m.Flags() != FlagDoublePush {
		t.Fatalf("e2e4 flags %04b", m.Flags())
	}
	for _, s := range []string{"e2e5", "e7e5", "zz", "e2e4q", ""} {
		if _, err := pos.ParseMove(s); !errors.Is(err, ErrInvalidMove) {
			t.Errorf("ParseMove(%q) err=%v, want ErrInvalidMove", s, err)
		}
	}
}

func TestDecodedEnPassantKeepsPlanesConsistent(t *testing.T) {
	for _, fen := range []string{
		"4k3/8/8/3Pp3/8/8/8/4K3 w - e6 0 1",
		"4k3/8/8/8/4Pp2/8/8/4K3 b - e3 0 1",
	} {
		pos := mustDecode(t, fen)
		found := false
		for _, m := range pos.GenerateMoves() {
			if m.Flags() != FlagEnPassant {
				continue
			}
			found = true
			pos.MakeMove(m)
			if err := pos.Validate(); err != nil {
				t.Errorf("%s after %s: %v", fen, m, err)
			}
			pos.UndoMove()
		}
		if !found {
			t.Errorf("%s: no en passant capture generated", fen)
		}
	}
}
