package cart

import (
	"sync"
	"time"
)

const (
	// DefaultSessionTTL is how long an idle cart survives before the
	// cleanup loop drops it.
	DefaultSessionTTL = 2 * time.Hour

	// cleanupInterval is how often the background cleanup runs
	cleanupInterval = time.Minute
)

type sessionEntry struct {
	cart     *Cart
	lastSeen time.Time
}

// Sessions maps session IDs to carts. Each shopping session gets exactly one
// cart, created on first access and dropped after the session has been idle
// for the TTL.
type Sessions struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
	ttl     time.Duration

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

// NewSessions creates the session registry and starts its cleanup goroutine.
func NewSessions(ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	s := &Sessions{
		entries:     make(map[string]*sessionEntry),
		ttl:         ttl,
		stopCleanup: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.cleanupLoop()

	return s
}

// Get returns the cart for the given session, creating it if this is the
// session's first cart access. Access refreshes the idle timer.
func (s *Sessions) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok {
		entry = &sessionEntry{cart: New()}
		s.entries[sessionID] = entry
	}
	entry.lastSeen = time.Now()
	return entry.cart
}

// Len reports the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close stops the cleanup goroutine and waits for it to exit.
func (s *Sessions) Close() {
	close(s.stopCleanup)
	s.wg.Wait()
}

func (s *Sessions) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.expireSessions()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *Sessions) expireSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	for id, entry := range s.entries {
		if entry.lastSeen.Before(cutoff) {
			delete(s.entries, id)
		}
	}
}
