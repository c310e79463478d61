// Package presence tracks which actors currently hold a live real-time
// connection, and through which channel.
//
// A Registry is created at server startup, shared by the websocket hub and
// the notification dispatcher, and closed on shutdown. Each actor has at most
// one entry; registering again replaces the previous channel.
package presence

import (
	"sync"
)

// Registry maps actor identifiers to channel handles
type Registry struct {
	mu      sync.RWMutex
	entries map[string]string // key: actorID -> value: channel handle
	closed  bool
}

// New creates an empty registry
func New() *Registry {
	return &Registry{entries: make(map[string]string)}
}

// Register records channel as the live connection of actorID, replacing any
// earlier entry for that actor. It reports false once the registry is closed.
func (r *Registry) Register(actorID, channel string) bool {
	if actorID == "" || channel == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false
	}
	r.entries[actorID] = channel
	return true
}

// Unregister removes every entry whose current channel is the given handle and
// returns the affected actors. An actor that has since reconnected on another
// channel is left alone.
func (r *Registry) Unregister(channel string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []string
	for actorID, ch := range r.entries {
		if ch == channel {
			delete(r.entries, actorID)
			removed = append(removed, actorID)
		}
	}
	return removed
}

// Lookup returns the live channel of actorID, if any
func (r *Registry) Lookup(actorID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ch, ok := r.entries[actorID]
	return ch, ok
}

// Len returns the number of actors currently online
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Close drops every entry and rejects further registrations
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	r.entries = make(map[string]string)
}
