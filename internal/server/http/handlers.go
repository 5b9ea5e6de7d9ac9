package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mkutay/stargaze/internal/chess"
	"github.com/mkutay/stargaze/internal/engine"
	"github.com/mkutay/stargaze/internal/server/game"
)

const (
	defaultAiDepth = 6
	maxAiDepth     = 20
	maxAiTime      = 30 * time.Second
)

// Handler serves the /api/* routes.
type Handler struct {
	games *game.Manager
}

func NewHandler(games *game.Manager) *Handler {
	if games == nil {
		games = game.NewManager()
	}
	return &Handler{games: games}
}

func (h *Handler) Games() *game.Manager { return h.games }

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}
	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/undo":
		h.handleUndo(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/ai_move":
		h.handleAiMove(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, errors.New("bad json"))
		return
	}

	var g *game.GameState
	if req.FEN == "" {
		g = h.games.NewGame()
	} else {
		var err error
		if g, err = h.games.NewGameFromFEN(req.FEN); err != nil {
			writeError(w, statusFor(err), err)
			return
		}
	}
	log.Info().Str("game", g.ID).Msg("new-game")
	writeJSON(w, stateToDTO(g.Snapshot()))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	g, ok := h.decodeGame(w, r, &req, func() string { return req.GameID })
	if !ok {
		return
	}
	s, err := g.Play(req.Move)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	log.Info().Str("game", g.ID).Str("move", req.Move).Msg("play")
	writeJSON(w, stateToDTO(s))
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	g, ok := h.decodeGame(w, r, &req, func() string { return req.GameID })
	if !ok {
		return
	}
	s, err := g.Undo()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, stateToDTO(s))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	g, ok := h.decodeGame(w, r, &req, func() string { return req.GameID })
	if !ok {
		return
	}
	writeJSON(w, stateToDTO(g.Snapshot()))
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	g, ok := h.decodeGame(w, r, &req, func() string { return req.GameID })
	if !ok {
		return
	}

	cfg := engine.SearchConfig{MaxDepth: req.MaxDepth}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = defaultAiDepth
	}
	if cfg.MaxDepth > maxAiDepth {
		cfg.MaxDepth = maxAiDepth
	}
	if req.TimeMs > 0 {
		cfg.TimeLimit = min(time.Duration(req.TimeMs)*time.Millisecond, maxAiTime)
	}

	res, s, err := g.AIMove(cfg)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, aiMoveToDTO(res, s))
}

// decodeGame reads the JSON body into req and looks up the game it names.
func (h *Handler) decodeGame(w http.ResponseWriter, r *http.Request, req any, id func() string) (*game.GameState, bool) {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("bad json"))
		return nil, false
	}
	g, err := h.games.Get(id())
	if err != nil {
		writeError(w, statusFor(err), err)
		return nil, false
	}
	return g, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, chess.ErrInvalidFEN),
		errors.Is(err, chess.ErrInvalidMove),
		errors.Is(err, chess.ErrIllegalMove):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("writeJSON")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()}); err != nil {
		log.Error().Err(err).Msg("writeError")
	}
}
