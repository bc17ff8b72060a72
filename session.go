package wikidoc

import (
	"context"
	"time"
)

// DefaultSessionTTL bounds how long a result set stays selectable.
const DefaultSessionTTL = 600 * time.Second

// Session is a time-bounded, owner-scoped handle over one user's
// filtered search results. Sessions are immutable after creation; they
// are only ever deleted.
type Session struct {
	ID        string        `json:"id"`
	OwnerID   string        `json:"ownerId"`
	Hits      []SearchHit   `json:"hits"`
	CreatedAt time.Time     `json:"createdAt"`
	TTL       time.Duration `json:"ttl"`
}

// ExpiresAt returns the moment the session stops being retrievable.
func (s *Session) ExpiresAt() time.Time {
	return s.CreatedAt.Add(s.TTL)
}

// Expired reports whether the session has outlived its TTL at now.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt())
}

// Validate returns an error if the session contains invalid fields.
func (s *Session) Validate() error {
	if s.OwnerID == "" {
		return Errorf(EINVALID, "session owner required")
	}
	if len(s.Hits) == 0 {
		return Errorf(EINVALID, "session requires at least one hit")
	}
	return nil
}

// SessionService is a pure store for search sessions. Expiry is checked
// lazily on every lookup and additionally enforced by a periodic sweep;
// ownership is enforced by the navigation controller, not the store.
type SessionService interface {
	// CreateSession stores a fresh session for ownerID over hits and
	// assigns it a collision-resistant id.
	CreateSession(ctx context.Context, ownerID string, hits []SearchHit) (*Session, error)

	// FindSessionByID retrieves a session by id.
	// Returns ENOTFOUND if the session does not exist or has expired;
	// an expired-but-not-yet-swept session is deleted on lookup.
	FindSessionByID(ctx context.Context, id string) (*Session, error)

	// DeleteExpiredSessions removes every session past its TTL and
	// reports how many were removed.
	DeleteExpiredSessions(ctx context.Context) (int, error)
}
