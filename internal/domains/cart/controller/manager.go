package controller

import (
	"context"
	"sync"
)

// Manager owns one Controller per session scope. It replaces the original
// module-level store pattern with an explicitly owned, constructor-injected
// object: controllers are created on first use, hydrated from the persisted
// snapshot, and dropped on Evict.
type Manager struct {
	gw    Gateway
	store SnapshotStore

	mu          sync.Mutex
	controllers map[string]*Controller
}

func NewManager(gw Gateway, store SnapshotStore) *Manager {
	return &Manager{
		gw:          gw,
		store:       store,
		controllers: make(map[string]*Controller),
	}
}

// Get returns the controller for a session, creating and hydrating it on
// first use.
func (m *Manager) Get(ctx context.Context, sessionID string) *Controller {
	m.mu.Lock()
	ctrl, ok := m.controllers[sessionID]
	if !ok {
		ctrl = New(sessionID, m.gw, m.store)
		m.controllers[sessionID] = ctrl
		m.mu.Unlock()

		// Hydration happens outside the manager lock; it only touches the
		// controller's own state.
		ctrl.Hydrate(ctx)
		return ctrl
	}
	m.mu.Unlock()
	return ctrl
}

// Evict drops a session's controller. The persisted snapshot survives.
func (m *Manager) Evict(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.controllers, sessionID)
}

// Len reports the number of live controllers.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.controllers)
}
