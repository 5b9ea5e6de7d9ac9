package chess

import (
	"errors"
	"fmt"
)

// Position is a board state with a reversible move history. The zero value is
// not usable; build positions with NewInitialPosition or DecodePosition.
type Position struct {
	Planes     [NumPlanes]Bitboard
	SideToMove Color
	Castling   CastlingRights
	Hash       uint64

	lastMove Move
	history  []snapshot
	keys     *ZobristKeys
}

type snapshot struct {
	planes   [NumPlanes]Bitboard
	castling CastlingRights
	hash     uint64
	lastMove Move
}

func NewInitialPosition() *Position {
	return NewInitialPositionWithKeys(DefaultZobristKeys())
}

func NewInitialPositionWithKeys(keys *ZobristKeys) *Position {
	p := &Position{
		SideToMove: White,
		Castling:   AllCastling,
		keys:       keys,
		history:    make([]snapshot, 0, 64),
	}
	p.Planes[PlaneWhite] = rank1 | rank1<<8
	p.Planes[PlaneBlack] = rank8 | rank8>>8
	p.Planes[PlanePawn] = rank1<<8 | rank8>>8
	p.Planes[PlaneKnight] = squareBB(B1) | squareBB(G1) | squareBB(B8) | squareBB(G8)
	p.Planes[PlaneBishop] = squareBB(C1) | squareBB(F1) | squareBB(C8) | squareBB(F8)
	p.Planes[PlaneRook] = squareBB(A1) | squareBB(H1) | squareBB(A8) | squareBB(H8)
	p.Planes[PlaneQueen] = squareBB(D1) | squareBB(D8)
	p.Planes[PlaneKing] = squareBB(E1) | squareBB(E8)
	p.Hash = p.ComputeFingerprint()
	return p
}

// Clone returns an independent copy, history included.
func (p *Position) Clone() *Position {
	np := *p
	np.history = make([]snapshot, len(p.history), cap(p.history))
	copy(np.history, p.history)
	return &np
}

func (p *Position) Keys() *ZobristKeys { return p.keys }

// LastMove is the most recently applied move, or NoMove.
func (p *Position) LastMove() Move { return p.lastMove }

// Depth is the number of moves currently applied and not yet undone.
func (p *Position) Depth() int { return len(p.history) }

func (p *Position) Occupied() Bitboard {
	return p.Planes[PlaneWhite] | p.Planes[PlaneBlack]
}

func (p *Position) Empty() Bitboard { return ^p.Occupied() }

func (p *Position) ColorBB(c Color) Bitboard { return p.Planes[colorPlane(c)] }

func (p *Position) Pieces(c Color, pt PieceType) Bitboard {
	return p.Planes[piecePlane(pt)] & p.Planes[colorPlane(c)]
}

// PieceAt reports the piece on sq; ok is false for an empty square.
func (p *Position) PieceAt(sq int) (c Color, pt PieceType, ok bool) {
	bb := squareBB(sq)
	switch {
	case p.Planes[PlaneWhite]&bb != 0:
		c = White
	case p.Planes[PlaneBlack]&bb != 0:
		c = Black
	default:
		return White, NoPieceType, false
	}
	return c, p.PieceTypeAt(sq), true
}

func (p *Position) PieceTypeAt(sq int) PieceType {
	bb := squareBB(sq)
	for plane := PlanePawn; plane <= PlaneKing; plane++ {
		if p.Planes[plane]&bb != 0 {
			return planePiece(plane)
		}
	}
	return NoPieceType
}

// KingCount counts kings of both colors. Anything but two means a king has
// been captured.
func (p *Position) KingCount() int { return p.Planes[PlaneKing].Count() }

var errBrokenPlanes = errors.New("inconsistent bit-planes")

// Validate checks the bit-plane invariants: color planes are disjoint, every
// occupied square is in exactly one piece-type plane and type planes hold no
// empty squares.
func (p *Position) Validate() error {
	if p.Planes[PlaneWhite]&p.Planes[PlaneBlack] != 0 {
		return fmt.Errorf("%w: color planes overlap", errBrokenPlanes)
	}
	var union Bitboard
	for plane := PlanePawn; plane <= PlaneKing; plane++ {
		if union&p.Planes[plane] != 0 {
			return fmt.Errorf("%w: %s plane overlaps another piece plane", errBrokenPlanes, planePiece(plane))
		}
		union |= p.Planes[plane]
	}
	if union != p.Occupied() {
		return fmt.Errorf("%w: piece planes do not match occupancy", errBrokenPlanes)
	}
	return nil
}
