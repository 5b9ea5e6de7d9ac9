package chess

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	ErrInvalidFEN  = errors.New("invalid FEN")
	ErrInvalidMove = errors.New("invalid move")
)

var letterToPieceType = map[rune]PieceType{
	'p': Pawn,
	'n': Knight,
	'b': Bishop,
	'r': Rook,
	'q': Queen,
	'k': King,
}

// Encode writes p as FEN. Move clocks are not tracked and are always "0 1".
func (p *Position) Encode() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		if rank < 7 {
			sb.WriteByte('/')
		}
		empty := 0
		for file := 0; file < 8; file++ {
			c, pt, ok := p.PieceAt(squareOf(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			ch := pieceLetters[pt]
			if c == White {
				ch = byte(unicode.ToUpper(rune(ch)))
			}
			sb.WriteByte(ch)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.Castling.String())
	sb.WriteByte(' ')
	if last := p.lastMove; last != NoMove && last.Flags() == FlagDoublePush {
		sb.WriteString(SquareName((last.From() + last.To()) / 2))
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(" 0 1")
	return sb.String()
}

func DecodePosition(fen string) (*Position, error) {
	return DecodePositionWithKeys(fen, DefaultZobristKeys())
}

// DecodePositionWithKeys parses placement, side to move and the optional
// castling and en-passant fields. An en-passant square is recorded as the
// double push that produced it. Each side must have exactly one king.
func DecodePositionWithKeys(fen string, keys *ZobristKeys) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: need at least placement and side to move", ErrInvalidFEN)
	}
	p := &Position{keys: keys, history: make([]snapshot, 0, 64)}

	rows := strings.Split(parts[0], "/")
	if len(rows) != 8 {
		return nil, fmt.Errorf("%w: %d ranks", ErrInvalidFEN, len(rows))
	}
	for i, row := range rows {
		rank := 7 - i
		file := 0
		for _, ch := range row {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pt, ok := letterToPieceType[unicode.ToLower(ch)]
			if !ok || file >= 8 {
				return nil, fmt.Errorf("%w: bad rank %q", ErrInvalidFEN, row)
			}
			c := Black
			if unicode.IsUpper(ch) {
				c = White
			}
			bb := squareBB(squareOf(file, rank))
			p.Planes[colorPlane(c)] |= bb
			p.Planes[piecePlane(pt)] |= bb
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("%w: bad rank %q", ErrInvalidFEN, row)
		}
	}

	switch parts[1] {
	case "w":
		p.SideToMove = White
	case "b":
		p.SideToMove = Black
	default:
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, parts[1])
	}

	if len(parts) > 2 && parts[2] != "-" {
		for _, ch := range parts[2] {
			i := strings.IndexRune("KQkq", ch)
			if i < 0 {
				return nil, fmt.Errorf("%w: castling %q", ErrInvalidFEN, parts[2])
			}
			p.Castling |= CastlingRights(1 << i)
		}
	}

	if len(parts) > 3 && parts[3] != "-" {
		ep, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
		}
		// The pushed pawn belongs to the side that just moved.
		epRank, from, to := 5, ep+8, ep-8
		if p.SideToMove == Black {
			epRank, from, to = 2, ep-8, ep+8
		}
		occ := p.Occupied()
		if rankOf(ep) != epRank || occ.Has(ep) || occ.Has(from) ||
			!p.Pieces(p.SideToMove.Other(), Pawn).Has(to) {
			return nil, fmt.Errorf("%w: en passant square %s", ErrInvalidFEN, parts[3])
		}
		p.lastMove = NewMove(from, to, FlagDoublePush)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	for _, c := range [...]Color{White, Black} {
		if n := p.Pieces(c, King).Count(); n != 1 {
			return nil, fmt.Errorf("%w: %s has %d kings", ErrInvalidFEN, c, n)
		}
	}
	p.Hash = p.ComputeFingerprint()
	return p, nil
}

// ParseMove resolves UCI text such as "e2e4" or "a7a8q" against the
// pseudo-legal moves of p.
func (p *Position) ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range p.GenerateMoves() {
		if m.String() == s {
			return m, nil
		}
	}
	return NoMove, fmt.Errorf("%w: %q", ErrInvalidMove, s)
}
