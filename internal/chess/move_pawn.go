package chess

var promotionFlags = [4]int{FlagPromoKnight, FlagPromoBishop, FlagPromoRook, FlagPromoQueen}

// Pawns: pushes and captures for all pawns at once via shifts.
func genPawnMoves(p *Position, moves *[]Move) {
	us := p.SideToMove
	pawns := p.Pieces(us, Pawn)
	if pawns == 0 {
		return
	}
	empty := p.Empty()
	enemy := p.ColorBB(us.Other())

	var push1, push2, capLeft, capRight, backRank Bitboard
	var forward, left, right int
	if us == White {
		forward, left, right = 8, 7, 9
		push1 = shift(pawns, forward) & empty
		push2 = shift(push1&rank3, forward) & empty
		capLeft = shift(pawns&notFileA, left) & enemy
		capRight = shift(pawns&notFileH, right) & enemy
		backRank = rank8
	} else {
		forward, left, right = -8, -9, -7
		push1 = shift(pawns, forward) & empty
		push2 = shift(push1&rank6, forward) & empty
		capLeft = shift(pawns&notFileA, left) & enemy
		capRight = shift(pawns&notFileH, right) & enemy
		backRank = rank1
	}

	emitPawnTargets(push1&^backRank, forward, FlagQuiet, moves)
	emitPromotions(push1&backRank, forward, 0, moves)
	emitPawnTargets(push2, 2*forward, FlagDoublePush, moves)
	emitPawnTargets(capLeft&^backRank, left, FlagCapture, moves)
	emitPromotions(capLeft&backRank, left, flagCaptureBit, moves)
	emitPawnTargets(capRight&^backRank, right, FlagCapture, moves)
	emitPromotions(capRight&backRank, right, flagCaptureBit, moves)

	// En passant is only available straight after an enemy double push, from
	// a pawn standing beside the pushed pawn.
	if last := p.lastMove; last != NoMove && last.Flags() == FlagDoublePush {
		to := last.To()
		target := to + forward
		if fileOf(to) != 7 && pawns.Has(to+1) {
			*moves = append(*moves, NewMove(to+1, target, FlagEnPassant))
		}
		if fileOf(to) != 0 && pawns.Has(to-1) {
			*moves = append(*moves, NewMove(to-1, target, FlagEnPassant))
		}
	}
}

func emitPawnTargets(targets Bitboard, delta, flags int, moves *[]Move) {
	for targets != 0 {
		to := targets.PopLSB()
		*moves = append(*moves, NewMove(to-delta, to, flags))
	}
}

func emitPromotions(targets Bitboard, delta, capture int, moves *[]Move) {
	for targets != 0 {
		to := targets.PopLSB()
		for _, f := range promotionFlags {
			*moves = append(*moves, NewMove(to-delta, to, f|capture))
		}
	}
}
