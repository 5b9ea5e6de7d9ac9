package chess

import "fmt"

// castlingLoss maps a square to the rights lost when a move starts or ends on
// it: the king and rook home squares.
var castlingLoss = func() [NumSquares]CastlingRights {
	var t [NumSquares]CastlingRights
	t[A1] = WhiteQueenSide
	t[H1] = WhiteKingSide
	t[E1] = WhiteKingSide | WhiteQueenSide
	t[A8] = BlackQueenSide
	t[H8] = BlackKingSide
	t[E8] = BlackKingSide | BlackQueenSide
	return t
}()

func (p *Position) togglePiece(c Color, pt PieceType, sq int) {
	bb := squareBB(sq)
	p.Planes[colorPlane(c)] ^= bb
	p.Planes[piecePlane(pt)] ^= bb
	p.Hash ^= p.keys.piece(c, pt, sq)
}

func (p *Position) movePiece(c Color, pt PieceType, from, to int) {
	p.togglePiece(c, pt, from)
	p.togglePiece(c, pt, to)
}

// removePiece clears whatever stands on sq from every plane.
func (p *Position) removePiece(sq int) {
	if c, pt, ok := p.PieceAt(sq); ok {
		p.togglePiece(c, pt, sq)
	}
}

// MakeMove applies m for the side to move. m must be consistent with the
// position (its origin holds a piece of the side to move); anything else is a
// programming error and panics.
func (p *Position) MakeMove(m Move) {
	from, to, flags := m.From(), m.To(), m.Flags()
	us := p.SideToMove
	c, pt, ok := p.PieceAt(from)
	if !ok || c != us {
		panic(fmt.Sprintf("chess: MakeMove %s: no %s piece on %s", m, us, SquareName(from)))
	}

	p.history = append(p.history, snapshot{
		planes:   p.Planes,
		castling: p.Castling,
		hash:     p.Hash,
		lastMove: p.lastMove,
	})

	switch {
	case m.IsPromotion():
		p.togglePiece(us, pt, from)
		p.removePiece(to)
		p.togglePiece(us, m.PromotedPiece(), to)
	case flags == FlagEnPassant:
		p.movePiece(us, Pawn, from, to)
		// The captured pawn sits one rank behind the destination.
		if us == White {
			p.removePiece(to - 8)
		} else {
			p.removePiece(to + 8)
		}
	case flags == FlagKingCastle:
		p.movePiece(us, King, from, to)
		p.movePiece(us, Rook, to+1, to-1)
	case flags == FlagQueenCastle:
		p.movePiece(us, King, from, to)
		p.movePiece(us, Rook, to-2, to+1)
	default:
		if m.IsCapture() {
			p.removePiece(to)
		}
		p.movePiece(us, pt, from, to)
	}

	rights := p.Castling &^ (castlingLoss[from] | castlingLoss[to])
	if pt == King {
		if us == White {
			rights &^= WhiteKingSide | WhiteQueenSide
		} else {
			rights &^= BlackKingSide | BlackQueenSide
		}
	}
	p.Hash ^= p.keys.castlingKey(p.Castling) ^ p.keys.castlingKey(rights)
	p.Castling = rights

	p.Hash ^= p.keys.enPassantKey(p.lastMove) ^ p.keys.enPassantKey(m)
	p.lastMove = m

	p.SideToMove = us.Other()
	p.Hash ^= p.keys.black
}

// UndoMove restores the position exactly as it was before the last MakeMove.
// Calling it with nothing applied panics.
func (p *Position) UndoMove() {
	n := len(p.history)
	if n == 0 {
		panic("chess: UndoMove with empty history")
	}
	s := p.history[n-1]
	p.history = p.history[:n-1]

	p.Planes = s.planes
	p.Castling = s.castling
	p.Hash = s.hash
	p.lastMove = s.lastMove
	p.SideToMove = p.SideToMove.Other()
}
