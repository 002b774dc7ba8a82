package nutrition

import (
	"sync"

	"github.com/arnold/nutritrack-api/internal/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Manager hands out one Tracker per user, loading persisted state on first
// access.
type Manager struct {
	mu       sync.Mutex
	store    store.Store
	clock    Clock
	notifier Notifier
	log      zerolog.Logger
	sessions map[uuid.UUID]*Tracker
}

func NewManager(st store.Store, clock Clock, notifier Notifier, log zerolog.Logger) *Manager {
	return &Manager{
		store:    st,
		clock:    clock,
		notifier: notifier,
		log:      log,
		sessions: make(map[uuid.UUID]*Tracker),
	}
}

// Session returns the user's tracker, creating it from persisted state the
// first time.
func (m *Manager) Session(userID uuid.UUID) (*Tracker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if tracker, ok := m.sessions[userID]; ok {
		return tracker, nil
	}

	tracker, err := NewTracker(m.store, userID, m.clock, m.notifier, m.log)
	if err != nil {
		return nil, err
	}
	m.sessions[userID] = tracker
	return tracker, nil
}
