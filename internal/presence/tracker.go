// Package presence tracks which users currently hold live connections.
// State is transient and process-local; a restart empties the registry.
package presence

import "sync"

type Tracker struct {
	mu          sync.RWMutex
	connections map[string]map[string]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{connections: make(map[string]map[string]struct{})}
}

// Connect registers a connection for the user. A user may hold several
// connections at once, one per open client.
func (t *Tracker) Connect(userID, connectionID string) {
	if userID == "" || connectionID == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	set, ok := t.connections[userID]
	if !ok {
		set = make(map[string]struct{})
		t.connections[userID] = set
	}
	set[connectionID] = struct{}{}
}

// Disconnect drops one connection. The user goes offline only when the
// last connection is gone.
func (t *Tracker) Disconnect(userID, connectionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	set, ok := t.connections[userID]
	if !ok {
		return
	}
	delete(set, connectionID)
	if len(set) == 0 {
		delete(t.connections, userID)
	}
}

func (t *Tracker) IsOnline(userID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.connections[userID]) > 0
}

func (t *Tracker) OnlineCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.connections)
}
