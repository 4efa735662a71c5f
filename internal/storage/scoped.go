package storage

import (
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// GameStore is a Store view bound to one game ID.
type GameStore struct {
	store  *Store
	gameID string
}

// Scoped returns a view of the store for gameID.
func (s *Store) Scoped(gameID string) *GameStore {
	return &GameStore{store: s, gameID: gameID}
}

// BestScore implements flappy.ScoreStore.
func (g *GameStore) BestScore() (int, error) {
	return g.store.BestScore(g.gameID)
}

// SetBestScore implements flappy.ScoreStore.
func (g *GameStore) SetBestScore(score int) error {
	return g.store.SetBestScore(g.gameID, score)
}

// RecordScore appends a finished round to the history.
func (g *GameStore) RecordScore(score int) error {
	_, err := g.store.SaveScore(g.gameID, score)
	return err
}

// TopScores returns the best rounds for this game.
func (g *GameStore) TopScores(limit int) ([]ScoreEntry, error) {
	return g.store.TopScores(g.gameID, limit)
}

// MemoryStore keeps the best score and round history in process memory.
// Used when the database is unavailable; safe for concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	best    int
	history []int
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// BestScore implements flappy.ScoreStore.
func (m *MemoryStore) BestScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

// SetBestScore implements flappy.ScoreStore. Like the sqlite store it
// keeps the maximum, so a session holding a stale best cannot lower it.
func (m *MemoryStore) SetBestScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.best {
		m.best = score
	}
	return nil
}

// RecordScore appends a finished round to the history.
func (m *MemoryStore) RecordScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append(m.history, score)
	return nil
}

// History returns a copy of the recorded rounds in play order.
func (m *MemoryStore) History() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]int, len(m.history))
	copy(out, m.history)
	return out
}

// Ensure both stores satisfy the simulation's persistence contract
var (
	_ flappy.ScoreStore = (*GameStore)(nil)
	_ flappy.ScoreStore = (*MemoryStore)(nil)
)
