package chess

// GenerateMoves returns the pseudo-legal moves for the side to move. Moves that
// leave the mover's own king attacked are included.
func (p *Position) GenerateMoves() []Move {
	return p.AppendMoves(make([]Move, 0, 64))
}

// AppendMoves appends the pseudo-legal moves to moves and returns the result,
// letting callers reuse a buffer.
func (p *Position) AppendMoves(moves []Move) []Move {
	us := p.SideToMove
	genPawnMoves(p, &moves)
	genKnightMoves(p, &moves)
	genSliderMoves(p, p.Pieces(us, Bishop), diagonalDeltas, diagonalMasks, &moves)
	genSliderMoves(p, p.Pieces(us, Rook), cardinalDeltas, cardinalMasks, &moves)
	genSliderMoves(p, p.Pieces(us, Queen), diagonalDeltas, diagonalMasks, &moves)
	genSliderMoves(p, p.Pieces(us, Queen), cardinalDeltas, cardinalMasks, &moves)
	genKingMoves(p, &moves)
	genCastles(p, &moves)
	return moves
}

// emitTargets turns every bit of targets into a move whose origin is delta
// squares behind it. Targets on enemy squares become captures.
func emitTargets(targets Bitboard, delta int, enemy Bitboard, moves *[]Move) {
	for targets != 0 {
		to := targets.PopLSB()
		flags := FlagQuiet
		if enemy.Has(to) {
			flags = FlagCapture
		}
		*moves = append(*moves, NewMove(to-delta, to, flags))
	}
}

func genCastles(p *Position, moves *[]Move) {
	us := p.SideToMove
	occ := p.Occupied()
	king, rooks := p.Pieces(us, King), p.Pieces(us, Rook)

	kingSide, queenSide, home := WhiteKingSide, WhiteQueenSide, E1
	if us == Black {
		kingSide, queenSide, home = BlackKingSide, BlackQueenSide, E8
	}
	if !king.Has(home) {
		return
	}
	if p.Castling.Has(kingSide) && rooks.Has(home+3) &&
		occ&(squareBB(home+1)|squareBB(home+2)) == 0 {
		*moves = append(*moves, NewMove(home, home+2, FlagKingCastle))
	}
	if p.Castling.Has(queenSide) && rooks.Has(home-4) &&
		occ&(squareBB(home-1)|squareBB(home-2)|squareBB(home-3)) == 0 {
		*moves = append(*moves, NewMove(home, home-2, FlagQueenCastle))
	}
}
