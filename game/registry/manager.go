package registry

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/tecz/grid-game/game/engine"
	"github.com/tecz/grid-game/game/service"
)

var ErrGameNotFound = errors.New("game not found")

// Manager handles the lifecycle of running games.
//
// IDs are the stringified count of games created so far ("0", "1", ...) and
// are never reused. Games are never removed: the registry grows for the
// life of the process, which is an accepted property of the game's
// in-memory design.
type Manager struct {
	games   map[string]*service.GameEntry
	created int
	mu      sync.RWMutex
}

// NewManager creates a new game registry
func NewManager() *Manager {
	return &Manager{
		games: make(map[string]*service.GameEntry),
	}
}

// Create registers a game under the next sequential ID
func (m *Manager) Create(game *engine.Game, configName string) (*service.GameEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := &service.GameEntry{
		ID:             strconv.Itoa(m.created),
		ConfigName:     configName,
		Game:           game,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	m.games[entry.ID] = entry
	m.created++

	return entry, nil
}

// Get retrieves a game by ID
func (m *Manager) Get(id string) (*service.GameEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, exists := m.games[id]
	if !exists {
		return nil, ErrGameNotFound
	}
	return entry, nil
}

// List returns all registered games
func (m *Manager) List() []*service.GameEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*service.GameEntry, 0, len(m.games))
	for _, entry := range m.games {
		result = append(result, entry)
	}
	return result
}

// Count returns the number of games created so far
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.created
}

// UpdateLastAccessed updates the last accessed time for a game
func (m *Manager) UpdateLastAccessed(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.games[id]
	if !exists {
		return ErrGameNotFound
	}

	entry.LastAccessedAt = time.Now()
	return nil
}
