package chess

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Perft counts the leaf nodes of the legal move tree to depth.
func (p *Position) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var n uint64
	for _, m := range moves {
		p.MakeMove(m)
		n += p.Perft(depth - 1)
		p.UndoMove()
	}
	return n
}

type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Divide runs Perft(depth-1) below every legal root move, one goroutine per
// move on its own copy of the position.
func (p *Position) Divide(ctx context.Context, depth int) ([]DivideEntry, error) {
	if depth < 1 {
		depth = 1
	}
	moves := p.LegalMoves()
	out := make([]DivideEntry, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, m := range moves {
		i, m := i, m
		child := p.Clone()
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child.MakeMove(m)
			out[i] = DivideEntry{Move: m, Nodes: child.Perft(depth - 1)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
