package engine

import (
	"sync/atomic"
	"time"

	"github.com/mkutay/stargaze/internal/chess"
)

// Evaluator scores a position from the side to move's point of view. It must
// depend on the position contents only.
type Evaluator func(pos *chess.Position) int

type Options struct {
	// TTEntries caps the transposition table between searches; 0 is unbounded.
	TTEntries int
	// QuiescenceDepth limits capture-only plies past the horizon.
	QuiescenceDepth int
	// AspirationMargin is the half-width of the first window around the
	// previous iteration's score; 0 disables aspiration windows.
	AspirationMargin int
	Evaluator        Evaluator
}

func DefaultOptions() Options {
	return Options{
		TTEntries:        1_000_000,
		QuiescenceDepth:  8,
		AspirationMargin: 50,
		Evaluator:        Evaluate,
	}
}

// Engine runs one search at a time. Stop may be called from any goroutine.
type Engine struct {
	opts Options
	tt   *TranspositionTable

	nodes     int64
	stop      atomic.Bool
	deadline  time.Time
	timeCheck bool
	prevPV    pvLine
}

func NewEngine() *Engine {
	return NewEngineWithOptions(DefaultOptions())
}

func NewEngineWithOptions(opts Options) *Engine {
	def := DefaultOptions()
	if opts.Evaluator == nil {
		opts.Evaluator = def.Evaluator
	}
	if opts.QuiescenceDepth < 0 {
		opts.QuiescenceDepth = 0
	}
	return &Engine{
		opts: opts,
		tt:   NewTranspositionTable(opts.TTEntries),
	}
}

// Stop asks the running search to unwind. The result still carries the last
// completed depth. Called while no search runs, it stops the next one after
// its first depth.
func (e *Engine) Stop() { e.stop.Store(true) }

func (e *Engine) TT() *TranspositionTable { return e.tt }

func (e *Engine) Options() Options { return e.opts }

func (e *Engine) evaluate(pos *chess.Position) int {
	return e.opts.Evaluator(pos)
}
