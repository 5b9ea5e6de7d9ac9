package chess

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

var ErrIllegalMove = errors.New("illegal move")

// IsAttacked reports whether any piece of bySide attacks sq. It runs the
// generator's ray and jump primitives outwards from sq.
func (p *Position) IsAttacked(sq int, bySide Color) bool {
	target := squareBB(sq)

	pawns := p.Pieces(bySide, Pawn)
	if bySide == White {
		if (shift(pawns&notFileA, 7)|shift(pawns&notFileH, 9))&target != 0 {
			return true
		}
	} else if (shift(pawns&notFileA, -9)|shift(pawns&notFileH, -7))&target != 0 {
		return true
	}

	knights := p.Pieces(bySide, Knight)
	for d, delta := range knightDeltas {
		if shift(knights&knightMasks[d], delta)&target != 0 {
			return true
		}
	}

	king := p.Pieces(bySide, King)
	queens := p.Pieces(bySide, Queen)
	diagonal := p.Pieces(bySide, Bishop) | queens
	cardinal := p.Pieces(bySide, Rook) | queens
	occ := p.Occupied()
	for d := 0; d < 4; d++ {
		if shift(king, cardinalDeltas[d])&cardinalMasks[d]&target != 0 ||
			shift(king, diagonalDeltas[d])&diagonalMasks[d]&target != 0 {
			return true
		}
		if rayHits(target, cardinalDeltas[d], cardinalMasks[d], occ, cardinal) ||
			rayHits(target, diagonalDeltas[d], diagonalMasks[d], occ, diagonal) {
			return true
		}
	}
	return false
}

// rayHits walks from origin until the first occupied square and reports whether
// that square holds one of attackers.
func rayHits(origin Bitboard, delta int, mask, occ, attackers Bitboard) bool {
	ray := origin
	for step := 0; step < 7; step++ {
		ray = shift(ray, delta) & mask
		if ray == 0 {
			return false
		}
		if ray&occ != 0 {
			return ray&attackers != 0
		}
	}
	return false
}

// InCheck reports whether side's king is attacked. A side without a king is
// never in check.
func (p *Position) InCheck(side Color) bool {
	king := p.Pieces(side, King)
	if king == 0 {
		return false
	}
	return p.IsAttacked(king.LSB(), side.Other())
}

// LegalMoves filters the pseudo-legal moves down to those that do not leave
// the mover's king attacked and do not castle out of or through check.
func (p *Position) LegalMoves() []Move {
	return lo.Filter(p.GenerateMoves(), func(m Move, _ int) bool {
		return p.IsLegal(m)
	})
}

// IsLegal checks a pseudo-legal move by playing it and looking at the king.
func (p *Position) IsLegal(m Move) bool {
	us := p.SideToMove
	them := us.Other()
	if m.IsCastle() {
		if p.InCheck(us) {
			return false
		}
		if p.IsAttacked((m.From()+m.To())/2, them) {
			return false
		}
	}
	p.MakeMove(m)
	ok := !p.InCheck(us)
	p.UndoMove()
	return ok
}

// Play resolves UCI text, rejects moves that leave the king attacked and
// applies the rest.
func (p *Position) Play(uci string) (Move, error) {
	m, err := p.ParseMove(uci)
	if err != nil {
		return NoMove, err
	}
	if !p.IsLegal(m) {
		return NoMove, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	p.MakeMove(m)
	return m, nil
}

// Status summarises the position for a driver that needs to know whether the
// game is over.
type Status int

const (
	StatusOngoing Status = iota
	StatusCheckmate
	StatusStalemate
)

func (s Status) String() string {
	switch s {
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

func (p *Position) Status() Status {
	if len(p.LegalMoves()) > 0 {
		return StatusOngoing
	}
	if p.InCheck(p.SideToMove) {
		return StatusCheckmate
	}
	return StatusStalemate
}
