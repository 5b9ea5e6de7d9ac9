package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mkutay/stargaze/internal/chess"
	"github.com/mkutay/stargaze/internal/engine"
)

var ErrGameNotFound = errors.New("game not found")

// Manager keeps games in memory, keyed by a random UUID.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
	opts  engine.Options
}

func NewManager() *Manager {
	return NewManagerWithOptions(engine.DefaultOptions())
}

// NewManagerWithOptions gives every new game an engine built from opts.
func NewManagerWithOptions(opts engine.Options) *Manager {
	return &Manager{
		games: make(map[string]*GameState),
		opts:  opts,
	}
}

func (m *Manager) NewGame() *GameState {
	return m.add(chess.NewInitialPosition())
}

// NewGameFromFEN starts a game from an arbitrary position.
func (m *Manager) NewGameFromFEN(fen string) (*GameState, error) {
	pos, err := chess.DecodePosition(fen)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	return m.add(pos), nil
}

func (m *Manager) add(pos *chess.Position) *GameState {
	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		CreatedAt: now,
		pos:       pos,
		engine:    engine.NewEngineWithOptions(m.opts),
		updatedAt: now,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return g
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(m.games, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
