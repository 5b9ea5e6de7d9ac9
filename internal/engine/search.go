package engine

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/mkutay/stargaze/internal/chess"
)

const (
	// Larger than any reachable score; used as an open window bound.
	scoreInf = 1_000_000_000

	// MateScore is the score of a captured king at the root. A loss found
	// n plies deep scores -(MateScore - n).
	MateScore = 1_000_000

	// MaxPly bounds recursion and PV length.
	MaxPly = 128

	defaultMaxDepth    = 6
	maxAspirationWidth = 1000

	timeCheckMask = 2047
)

// IsMateScore reports whether score encodes a forced king capture.
func IsMateScore(score int) bool {
	return score >= MateScore-MaxPly || score <= -MateScore+MaxPly
}

// SearchConfig bounds one search. TimeLimit 0 means no limit, not an
// immediate stop; pass time.Nanosecond for the smallest budget, which still
// completes depth 1.
type SearchConfig struct {
	MaxDepth  int           // plies; <= 0 uses a default
	TimeLimit time.Duration // 0 means no limit
}

type SearchResult struct {
	BestMove chess.Move // NoMove when the position has no moves
	Score    int        // side to move's point of view
	Depth    int        // last completed depth
	Nodes    int64
	TimeUsed time.Duration
	PV       []chess.Move
	Stopped  bool // the time limit or Stop cut the search short
	NPS      int64
}

// Search runs iterative deepening from pos and returns the result of the last
// depth that completed. pos is restored before Search returns.
//
// Neither the clock nor Stop is honoured until depth 1 has completed, so a
// position with moves yields a non-empty PV even under a tiny time limit. A
// Stop issued before Search starts ends it after depth 1. The stop flag is
// cleared when Search returns.
func (e *Engine) Search(pos *chess.Position, cfg SearchConfig) SearchResult {
	defer e.stop.Store(false)

	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = defaultMaxDepth
	}
	if cfg.MaxDepth > MaxPly/2 {
		cfg.MaxDepth = MaxPly / 2
	}

	start := time.Now()
	e.nodes = 0
	e.timeCheck = false
	e.deadline = time.Time{}
	if cfg.TimeLimit > 0 {
		e.deadline = start.Add(cfg.TimeLimit)
	}
	e.tt.NewSearch()
	e.prevPV.clear()

	var res SearchResult
	var line pvLine
	for depth := 1; depth <= cfg.MaxDepth; depth++ {
		if depth > 1 {
			if e.expired() {
				e.stop.Store(true)
			}
			if e.stop.Load() {
				res.Stopped = true
				break
			}
		}

		var score int
		if depth == 1 {
			score = e.alphaBeta(pos, -scoreInf, scoreInf, depth, 0, &line)
		} else {
			score = e.aspiration(pos, depth, res.Score, &line)
		}
		stopped := e.stop.Load()
		if stopped && depth > 1 {
			res.Stopped = true
			break
		}

		e.prevPV = line
		res.Score = score
		res.Depth = depth
		res.PV = line.slice()
		res.BestMove = line.at(0)
		e.timeCheck = true

		log.Debug().
			Int("depth", depth).
			Int("score", score).
			Int64("nodes", e.nodes).
			Strs("pv", lo.Map(res.PV, func(m chess.Move, _ int) string { return m.String() })).
			Dur("elapsed", time.Since(start)).
			Msg("iteration-complete")

		if stopped {
			res.Stopped = true
			break
		}
		if line.n == 0 {
			break
		}
	}

	res.Nodes = e.nodes
	res.TimeUsed = time.Since(start)
	if secs := res.TimeUsed.Seconds(); secs > 0 {
		res.NPS = int64(float64(res.Nodes) / secs)
	}
	return res
}

// aspiration searches depth in a window around prev, widening on failure until
// the score lands inside or the window is fully open.
func (e *Engine) aspiration(pos *chess.Position, depth, prev int, line *pvLine) int {
	margin := e.opts.AspirationMargin
	if margin <= 0 || IsMateScore(prev) {
		return e.alphaBeta(pos, -scoreInf, scoreInf, depth, 0, line)
	}
	for {
		alpha, beta := prev-margin, prev+margin
		score := e.alphaBeta(pos, alpha, beta, depth, 0, line)
		if e.stop.Load() || (score > alpha && score < beta) {
			return score
		}
		margin *= 2
		log.Debug().Int("depth", depth).Int("score", score).Int("margin", margin).Msg("aspiration-fail")
		if margin > maxAspirationWidth {
			return e.alphaBeta(pos, -scoreInf, scoreInf, depth, 0, line)
		}
	}
}

func (e *Engine) expired() bool {
	return !e.deadline.IsZero() && time.Now().After(e.deadline)
}

// aborted reports whether the current iteration is being unwound.
func (e *Engine) aborted() bool { return e.timeCheck && e.stop.Load() }

// shouldStop polls the stop flag, and the clock every timeCheckMask+1 nodes,
// once the first iteration has completed.
func (e *Engine) shouldStop() bool {
	if !e.timeCheck {
		return false
	}
	if e.stop.Load() {
		return true
	}
	if e.nodes&timeCheckMask == 0 && e.expired() {
		e.stop.Store(true)
		return true
	}
	return false
}

// alphaBeta is a fail-soft negamax with principal variation search. Moves are
// pseudo-legal; a side whose king has been captured has lost.
func (e *Engine) alphaBeta(pos *chess.Position, alpha, beta, depth, ply int, line *pvLine) int {
	line.clear()
	if ply > 0 && pos.Pieces(pos.SideToMove, chess.King) == 0 {
		return -MateScore + ply
	}
	if depth <= 0 {
		return e.quiescence(pos, alpha, beta, e.opts.QuiescenceDepth, ply)
	}
	e.nodes++
	if e.shouldStop() {
		return 0
	}
	if ply >= MaxPly-1 {
		return e.evaluate(pos)
	}

	pvNode := beta-alpha > 1
	ttMove := chess.NoMove
	if entry, ok := e.tt.Probe(pos.Hash); ok {
		ttMove = entry.Move
		if !pvNode && ply > 0 && entry.Depth >= depth {
			score := scoreFromTT(entry.Score, ply)
			switch {
			case entry.Bound == BoundExact,
				entry.Bound == BoundLower && score >= beta,
				entry.Bound == BoundUpper && score <= alpha:
				return score
			}
		}
	}

	moves := pos.GenerateMoves()
	if len(moves) == 0 {
		return e.evaluate(pos)
	}
	if ply == 0 {
		// The root only plays legal moves; deeper, an illegal move loses the
		// king on the next ply.
		moves = lo.Filter(moves, func(m chess.Move, _ int) bool { return pos.IsLegal(m) })
		if len(moves) == 0 {
			if pos.InCheck(pos.SideToMove) {
				return -MateScore
			}
			return 0
		}
	}
	e.orderMoves(pos, moves, ttMove, e.prevPV.at(ply))

	origAlpha := alpha
	best := -scoreInf
	bestMove := chess.NoMove
	var child pvLine
	for i, m := range moves {
		pos.MakeMove(m)
		var score int
		if i == 0 {
			score = -e.alphaBeta(pos, -beta, -alpha, depth-1, ply+1, &child)
		} else {
			score = -e.alphaBeta(pos, -alpha-1, -alpha, depth-1, ply+1, &child)
			if score > alpha && score < beta {
				score = -e.alphaBeta(pos, -beta, -alpha, depth-1, ply+1, &child)
			}
		}
		pos.UndoMove()

		if e.aborted() {
			return 0
		}
		if score > best {
			best = score
			if score > alpha {
				alpha = score
				bestMove = m
				line.update(m, &child)
			}
		}
		if alpha >= beta {
			break
		}
	}

	var bound Bound
	switch {
	case best >= beta:
		bound = BoundLower
	case alpha > origAlpha:
		bound = BoundExact
	default:
		bound = BoundUpper
	}
	if bestMove == chess.NoMove {
		bestMove = moves[0]
	}
	e.tt.Store(pos.Hash, bestMove, scoreToTT(best, ply), depth, bound)
	return best
}

// quiescence extends the search along captures only until the position is
// quiet or depth runs out.
func (e *Engine) quiescence(pos *chess.Position, alpha, beta, depth, ply int) int {
	if ply > 0 && pos.Pieces(pos.SideToMove, chess.King) == 0 {
		return -MateScore + ply
	}
	e.nodes++
	if e.shouldStop() {
		return 0
	}

	standPat := e.evaluate(pos)
	if depth <= 0 || standPat >= beta || ply >= MaxPly-1 {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := lo.Filter(pos.GenerateMoves(), func(m chess.Move, _ int) bool {
		return m.IsCapture()
	})
	e.orderMoves(pos, captures, chess.NoMove, chess.NoMove)

	best := standPat
	for _, m := range captures {
		pos.MakeMove(m)
		score := -e.quiescence(pos, -beta, -alpha, depth-1, ply+1)
		pos.UndoMove()

		if e.aborted() {
			return 0
		}
		if score > best {
			best = score
			if score > alpha {
				alpha = score
			}
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

const (
	orderTT        = 1 << 24
	orderPV        = 1 << 23
	orderPromotion = 1 << 22
	orderCastle    = 1 << 21
	orderCapture   = 1 << 20
)

// orderMoves sorts moves in place: hash move, previous PV move, promotions,
// castles, captures by MVV-LVA, then the rest in generation order.
func (e *Engine) orderMoves(pos *chess.Position, moves []chess.Move, ttMove, pvMove chess.Move) {
	if len(moves) < 2 {
		return
	}
	keys := make([]int, len(moves))
	for i, m := range moves {
		keys[i] = moveOrderKey(pos, m, ttMove, pvMove)
	}
	sort.Stable(byOrderKey{moves, keys})
}

func moveOrderKey(pos *chess.Position, m, ttMove, pvMove chess.Move) int {
	switch {
	case m == ttMove:
		return orderTT
	case m == pvMove:
		return orderPV
	case m.IsPromotion():
		return orderPromotion + pieceValue[m.PromotedPiece()]
	case m.IsCastle():
		return orderCastle
	case m.IsCapture():
		victim := pos.PieceTypeAt(m.To())
		if victim == chess.NoPieceType {
			victim = chess.Pawn // en passant
		}
		attacker := pos.PieceTypeAt(m.From())
		return orderCapture + int(victim)*16 - int(attacker)
	}
	return 0
}

type byOrderKey struct {
	moves []chess.Move
	keys  []int
}

func (b byOrderKey) Len() int           { return len(b.moves) }
func (b byOrderKey) Less(i, j int) bool { return b.keys[i] > b.keys[j] }
func (b byOrderKey) Swap(i, j int) {
	b.moves[i], b.moves[j] = b.moves[j], b.moves[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}
