package chess

// Knight jumps. Each mask keeps only origins whose jump stays on the board.
var knightDeltas = [8]int{-10, -6, -17, -15, 6, 10, 15, 17}

var knightMasks = [8]Bitboard{
	0xfcfcfcfcfcfcfc00,
	0x3f3f3f3f3f3f3f00,
	0xfefefefefefe0000,
	0x7f7f7f7f7f7f0000,
	0x00fcfcfcfcfcfcfc,
	0x003f3f3f3f3f3f3f,
	0x0000fefefefefefe,
	0x00007f7f7f7f7f7f,
}

func genKnightMoves(p *Position, moves *[]Move) {
	us := p.SideToMove
	knights := p.Pieces(us, Knight)
	if knights == 0 {
		return
	}
	enemy := p.ColorBB(us.Other())
	targets := p.Empty() | enemy
	for d, delta := range knightDeltas {
		emitTargets(shift(knights&knightMasks[d], delta)&targets, delta, enemy, moves)
	}
}

// King steps: the four cardinal and four diagonal directions, masked by
// destination like the sliders.
func genKingMoves(p *Position, moves *[]Move) {
	us := p.SideToMove
	king := p.Pieces(us, King)
	if king == 0 {
		return
	}
	enemy := p.ColorBB(us.Other())
	targets := p.Empty() | enemy
	for d := 0; d < 4; d++ {
		emitTargets(shift(king, cardinalDeltas[d])&cardinalMasks[d]&targets, cardinalDeltas[d], enemy, moves)
		emitTargets(shift(king, diagonalDeltas[d])&diagonalMasks[d]&targets, diagonalDeltas[d], enemy, moves)
	}
}
