package chess

// Ray directions. A mask applied after a one-step shift drops the squares that
// wrapped around the a/h files or fell off the board.
var (
	diagonalDeltas = [4]int{7, 9, -7, -9}
	diagonalMasks  = [4]Bitboard{
		0x7f7f7f7f7f7f7f00,
		0xfefefefefefefe00,
		0x00fefefefefefefe,
		0x007f7f7f7f7f7f7f,
	}

	cardinalDeltas = [4]int{8, 1, -8, -1}
	cardinalMasks  = [4]Bitboard{
		0xffffffffffffff00,
		0xfefefefefefefefe,
		0x00ffffffffffffff,
		0x7f7f7f7f7f7f7f7f,
	}
)

// genSliderMoves walks every piece in pieces along each direction in parallel.
// After step n a surviving bit at square s came from s - n*delta. Bits that hit
// an occupied square stop there and are kept only as captures.
func genSliderMoves(p *Position, pieces Bitboard, deltas [4]int, masks [4]Bitboard, moves *[]Move) {
	if pieces == 0 {
		return
	}
	empty := p.Empty()
	enemy := p.ColorBB(p.SideToMove.Other())
	for d, delta := range deltas {
		ray := pieces
		for step := 1; step <= 7 && ray != 0; step++ {
			ray = shift(ray, delta) & masks[d]
			captures := ray & enemy
			ray &= empty
			emitTargets(ray, step*delta, 0, moves)
			emitTargets(captures, step*delta, enemy, moves)
		}
	}
}
