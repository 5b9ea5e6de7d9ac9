package engine

import "github.com/mkutay/stargaze/internal/chess"

// pvLine is the best line found below a node. Each frame owns one for its
// children and copies it upwards when a move raises alpha.
type pvLine struct {
	moves [MaxPly]chess.Move
	n     int
}

func (l *pvLine) clear() { l.n = 0 }

func (l *pvLine) update(m chess.Move, child *pvLine) {
	l.moves[0] = m
	n := copy(l.moves[1:], child.moves[:child.n])
	l.n = n + 1
}

// at returns the move at ply, or NoMove past the end of the line.
func (l *pvLine) at(ply int) chess.Move {
	if ply < 0 || ply >= l.n {
		return chess.NoMove
	}
	return l.moves[ply]
}

func (l *pvLine) slice() []chess.Move {
	out := make([]chess.Move, l.n)
	copy(out, l.moves[:l.n])
	return out
}
