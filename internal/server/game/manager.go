package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"alex/internal/alex"
)

var ErrGameNotFound = errors.New("game not found")

// Manager is the authoritative in-memory game store. The game created with the
// manager is the default one, used when a request names no game.
type Manager struct {
	mu        sync.RWMutex
	games     map[string]*GameState
	start     *alex.Position
	defaultID string
}

// NewManager creates the store and its default game, both starting from start
// (the regular opening when nil).
func NewManager(start *alex.Position) *Manager {
	if start == nil {
		start = alex.NewInitialPosition()
	}
	m := &Manager{
		games: make(map[string]*GameState),
		start: start.Clone(),
	}
	m.defaultID = m.NewGame().ID
	return m
}

func (m *Manager) DefaultID() string { return m.defaultID }

func (m *Manager) resolve(id string) string {
	if id == "" {
		return m.defaultID
	}
	return id
}

func (m *Manager) NewGame() GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Pos:       m.start.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[g.ID] = g
	return g.snapshot()
}

// Get returns the game with id; the empty id selects the default game.
func (m *Manager) Get(id string) (GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[m.resolve(id)]
	if !ok {
		return GameState{}, ErrGameNotFound
	}
	return g.snapshot(), nil
}

// Update replaces the position of a game and clears its history.
func (m *Manager) Update(id string, pos *alex.Position) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[m.resolve(id)]
	if !ok {
		return ErrGameNotFound
	}
	pos.EnsureHash()
	g.Pos = pos
	g.History = nil
	g.UpdatedAt = time.Now()
	return nil
}

// Apply plays mv on the game's current position. Nothing changes on error.
func (m *Manager) Apply(id string, mv alex.Move) (GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[m.resolve(id)]
	if !ok {
		return GameState{}, ErrGameNotFound
	}
	next, err := g.Pos.ApplyMove(mv)
	if err != nil {
		return GameState{}, err
	}
	g.Pos = next
	g.History = append(g.History, mv.String())
	g.UpdatedAt = time.Now()
	return g.snapshot(), nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
