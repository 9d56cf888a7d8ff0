package session

import (
	"sync"
	"time"

	"castle-rentals/internal/pkg/clock"
	"castle-rentals/internal/usecase/shared"

	"github.com/google/uuid"
)

// Registry holds the per-visitor sessions in memory with idle-TTL eviction.
// Sessions carry no cross-visit state worth persisting; an evicted visitor
// simply starts with an empty cart.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*shared.Session
	ttl      time.Duration
	clock    clock.Clock
}

func NewRegistry(ttl time.Duration, clock clock.Clock) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*shared.Session),
		ttl:      ttl,
		clock:    clock,
	}
}

// Resolve returns the live session for id, or a fresh one when the id is
// unknown, expired, or nil. The returned session's LastSeen is refreshed.
func (r *Registry) Resolve(id uuid.UUID) *shared.Session {
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if id != uuid.Nil {
		if sess, ok := r.sessions[id]; ok && !sess.ExpiredAt(now, r.ttl) {
			sess.Touch(now)
			return sess
		}
	}

	sess := shared.NewSession(uuid.New(), now)
	r.sessions[sess.ID] = sess
	return sess
}

// Sweep evicts idle sessions and reports how many were dropped.
func (r *Registry) Sweep() int {
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, sess := range r.sessions {
		if sess.ExpiredAt(now, r.ttl) {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
