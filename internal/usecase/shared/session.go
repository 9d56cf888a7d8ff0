package shared

import (
	"sync"
	"time"

	"castle-rentals/internal/domain/quote"
	"castle-rentals/internal/domain/selection"

	"github.com/google/uuid"
)

// Session is the per-visitor state handle. It replaces the ambient global
// cart of the old storefront: whichever surface needs the cart or the wizard
// receives this object explicitly.
//
// gin may serve concurrent requests for one cookie, so callers hold the
// session lock for the duration of a mutation.
type Session struct {
	ID       uuid.UUID
	Store    *selection.Store
	Draft    *quote.Draft
	LastSeen time.Time

	mu sync.Mutex
}

func NewSession(id uuid.UUID, now time.Time) *Session {
	return &Session{
		ID:       id,
		Store:    selection.NewStore(),
		LastSeen: now,
	}
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// EnsureDraft lazily builds the wizard, seeding it from the cart on first
// view.
func (s *Session) EnsureDraft() *quote.Draft {
	if s.Draft == nil {
		s.Draft = quote.NewDraft(s.Store)
	}
	return s.Draft
}

// ResetDraft discards the wizard so the next view starts over at step one.
func (s *Session) ResetDraft() {
	s.Draft = nil
}

func (s *Session) Touch(now time.Time) {
	s.LastSeen = now
}

func (s *Session) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LastSeen) > ttl
}
