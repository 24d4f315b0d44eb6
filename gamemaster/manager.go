package gamemaster

import (
	"errors"
	"sync"

	"smarthorses/game"
)

var ErrSessionNotFound = errors.New("session not found")

// Manager keeps the sessions of a running process in memory.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	options  []game.Option
}

func NewManager(options ...game.Option) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		options:  options,
	}
}

func (m *Manager) NewSession(difficulty int, human game.Color) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	// options may share a random source, which is not safe for concurrent use
	s := NewSession(difficulty, human, m.options...)
	m.sessions[s.ID] = s
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
