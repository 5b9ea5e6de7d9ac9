package httpserver

import (
	"github.com/samber/lo"

	"github.com/mkutay/stargaze/internal/chess"
	"github.com/mkutay/stargaze/internal/engine"
	"github.com/mkutay/stargaze/internal/server/game"
)

// NewGameRequest may carry a starting FEN; an empty body starts from the
// initial position.
type NewGameRequest struct {
	FEN string `json:"fen,omitempty"`
}

type PlayRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"` // UCI, e.g. "e2e4" or "e7e8q"
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

type AiMoveRequest struct {
	GameID   string `json:"game_id"`
	MaxDepth int    `json:"max_depth"`
	TimeMs   int64  `json:"time_ms"`
}

// StateResponse is returned by every endpoint that changes or reads a game.
type StateResponse struct {
	GameID     string   `json:"game_id"`
	Position   string   `json:"position"` // FEN
	ToMove     string   `json:"to_move"`  // "w" or "b"
	LegalMoves []string `json:"legal_moves"`
	Moves      []string `json:"moves"`
	Status     string   `json:"status"` // "ongoing" / "checkmate" / "stalemate"
}

type AiMoveResponse struct {
	BestMove string        `json:"best_move"`
	Score    int           `json:"score"`
	Mate     bool          `json:"mate"`
	Depth    int           `json:"depth"`
	Nodes    int64         `json:"nodes"`
	NPS      int64         `json:"nps"`
	TimeMs   int64         `json:"time_ms"`
	PV       []string      `json:"pv"`
	Stopped  bool          `json:"stopped"`
	State    StateResponse `json:"state"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func movesToUCI(ms []chess.Move) []string {
	return lo.Map(ms, func(m chess.Move, _ int) string { return m.String() })
}

func colorToString(c chess.Color) string {
	if c == chess.Black {
		return "b"
	}
	return "w"
}

func stateToDTO(s game.Snapshot) StateResponse {
	return StateResponse{
		GameID:     s.ID,
		Position:   s.FEN,
		ToMove:     colorToString(s.ToMove),
		LegalMoves: movesToUCI(s.LegalMoves),
		Moves:      movesToUCI(s.Moves),
		Status:     s.Status.String(),
	}
}

func aiMoveToDTO(res engine.SearchResult, s game.Snapshot) AiMoveResponse {
	var best string
	if len(s.Moves) > 0 {
		best = s.Moves[len(s.Moves)-1].String()
	}
	return AiMoveResponse{
		BestMove: best,
		Score:    res.Score,
		Mate:     engine.IsMateScore(res.Score),
		Depth:    res.Depth,
		Nodes:    res.Nodes,
		NPS:      res.NPS,
		TimeMs:   res.TimeUsed.Milliseconds(),
		PV:       movesToUCI(res.PV),
		Stopped:  res.Stopped,
		State:    stateToDTO(s),
	}
}
