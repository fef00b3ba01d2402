package flow

import (
	"sort"
	"sync"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github/chapool/go-receive/internal/receive"
)

var ErrSessionNotFound = errors.New("receive session not found")

// ManagerConfig holds the dependencies shared by all sessions.
type ManagerConfig struct {
	Bridge         receive.CommandBridge
	Devices        receive.DeviceSource
	Clock          time2.Clock
	Metrics        receive.MetricsRecorder
	Statuses       StatusLookup
	RequestTimeout time.Duration
}

// Manager keeps the open receive sessions in memory.
type Manager struct {
	cfg ManagerConfig

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewManager(cfg ManagerConfig) *Manager {
	return &Manager{
		cfg:      cfg,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create opens a session for account.
func (m *Manager) Create(account receive.Account) (*Session, error) {
	session, err := NewSession(SessionConfig{
		Account:        account,
		Bridge:         m.cfg.Bridge,
		Devices:        m.cfg.Devices,
		Clock:          m.cfg.Clock,
		Metrics:        m.cfg.Metrics,
		RequestTimeout: m.cfg.RequestTimeout,
		Statuses:       m.cfg.Statuses,
	})
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[session.ID()] = session
	m.mu.Unlock()

	return session, nil
}

// Get returns the session with id.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, errors.Wrapf(ErrSessionNotFound, "id %s", id)
	}

	return session, nil
}

// List returns the open sessions, oldest first.
func (m *Manager) List() []*Session {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		sessions = append(sessions, session)
	}
	m.mu.RUnlock()

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].createdAt.Before(sessions[j].createdAt)
	})

	return sessions
}

// Count returns the number of open sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

// Close closes and forgets the session with id.
func (m *Manager) Close(id uuid.UUID) error {
	m.mu.Lock()
	session, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return errors.Wrapf(ErrSessionNotFound, "id %s", id)
	}

	session.Close()

	return nil
}

// CloseAll closes every session.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[uuid.UUID]*Session)
	m.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}
}
