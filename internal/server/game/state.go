package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mkutay/stargaze/internal/chess"
	"github.com/mkutay/stargaze/internal/engine"
)

var ErrGameOver = errors.New("game is over")

// GameState is one game: the authoritative position, the moves played and the
// engine that answers for it. All methods are safe for concurrent use.
type GameState struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	pos       *chess.Position
	moves     []chess.Move
	engine    *engine.Engine
	updatedAt time.Time
}

// Snapshot is a read-only copy of a game.
type Snapshot struct {
	ID         string
	FEN        string
	ToMove     chess.Color
	LegalMoves []chess.Move
	Moves      []chess.Move
	Status     chess.Status
	UpdatedAt  time.Time
}

func (g *GameState) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *GameState) snapshotLocked() Snapshot {
	moves := make([]chess.Move, len(g.moves))
	copy(moves, g.moves)
	return Snapshot{
		ID:         g.ID,
		FEN:        g.pos.Encode(),
		ToMove:     g.pos.SideToMove,
		LegalMoves: g.pos.LegalMoves(),
		Moves:      moves,
		Status:     g.pos.Status(),
		UpdatedAt:  g.updatedAt,
	}
}

// Play applies a move given in UCI notation.
func (g *GameState) Play(uci string) (Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pos.Status() != chess.StatusOngoing {
		return Snapshot{}, ErrGameOver
	}
	m, err := g.pos.Play(uci)
	if err != nil {
		return Snapshot{}, err
	}
	g.record(m)
	return g.snapshotLocked(), nil
}

// AIMove searches the current position and plays the first move of the
// principal variation.
func (g *GameState) AIMove(cfg engine.SearchConfig) (engine.SearchResult, Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	legal := g.pos.LegalMoves()
	if len(legal) == 0 {
		return engine.SearchResult{}, Snapshot{}, ErrGameOver
	}

	res := g.engine.Search(g.pos, cfg)
	best := res.BestMove
	if best == chess.NoMove || !g.pos.IsLegal(best) {
		// The root is filtered to legal moves, so this only guards against a
		// search that returned nothing.
		log.Warn().Str("game", g.ID).Str("move", best.String()).Msg("engine move rejected, playing first legal move")
		best = legal[0]
	}
	g.pos.MakeMove(best)
	g.record(best)

	log.Info().
		Str("game", g.ID).
		Str("move", best.String()).
		Int("score", res.Score).
		Int("depth", res.Depth).
		Int64("nodes", res.Nodes).
		Bool("stopped", res.Stopped).
		Msg("ai-move")
	return res, g.snapshotLocked(), nil
}

// Undo takes back the last move.
func (g *GameState) Undo() (Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.moves) == 0 || g.pos.Depth() == 0 {
		return Snapshot{}, fmt.Errorf("%w: nothing to undo", chess.ErrInvalidMove)
	}
	g.pos.UndoMove()
	g.moves = g.moves[:len(g.moves)-1]
	g.updatedAt = time.Now()
	return g.snapshotLocked(), nil
}

func (g *GameState) record(m chess.Move) {
	g.moves = append(g.moves, m)
	g.updatedAt = time.Now()
}
