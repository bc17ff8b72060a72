// Package mem provides an in-memory implementation of the session
// store. Sessions are short-lived working state, so there is no reason
// to persist them across restarts.
package mem

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ompkit/wikidoc"
)

// Ensure SessionService implements wikidoc.SessionService at compile time.
var _ wikidoc.SessionService = (*SessionService)(nil)

// SessionService stores sessions in a mutex-guarded map. Expiry is
// checked lazily on lookup; Sweep removes leftovers in the background.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]*wikidoc.Session

	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a SessionService.
type Option func(*SessionService)

// WithTTL sets the lifetime assigned to new sessions.
// Defaults to wikidoc.DefaultSessionTTL (10m) if not specified.
func WithTTL(ttl time.Duration) Option {
	return func(s *SessionService) {
		s.ttl = ttl
	}
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(s *SessionService) {
		s.now = now
	}
}

// WithLogger sets the logger used by the background sweep.
func WithLogger(logger *slog.Logger) Option {
	return func(s *SessionService) {
		s.logger = logger
	}
}

// NewSessionService creates a new in-memory SessionService.
func NewSessionService(opts ...Option) *SessionService {
	s := &SessionService{
		sessions: make(map[string]*wikidoc.Session),
		ttl:      wikidoc.DefaultSessionTTL,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSession stores a fresh session for ownerID over hits.
func (s *SessionService) CreateSession(_ context.Context, ownerID string, hits []wikidoc.SearchHit) (*wikidoc.Session, error) {
	session := &wikidoc.Session{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Hits:      hits,
		CreatedAt: s.now(),
		TTL:       s.ttl,
	}
	if err := session.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session, nil
}

// FindSessionByID retrieves a session by id. Expired sessions are
// deleted on lookup and reported as ENOTFOUND.
func (s *SessionService) FindSessionByID(_ context.Context, id string) (*wikidoc.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, wikidoc.Errorf(wikidoc.ENOTFOUND, "session not found")
	}
	if session.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, wikidoc.Errorf(wikidoc.ENOTFOUND, "session not found")
	}
	return session, nil
}

// DeleteExpiredSessions removes every session past its TTL.
func (s *SessionService) DeleteExpiredSessions(_ context.Context) (int, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
			deleted++
		}
	}
	return deleted, nil
}

// Sweep deletes expired sessions every interval until the context is
// canceled. Lazy expiry on lookup keeps correctness; the sweep keeps
// abandoned sessions from accumulating.
func (s *SessionService) Sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := s.DeleteExpiredSessions(ctx)
			if err != nil {
				s.logger.Error("sweeping sessions", "err", err)
				continue
			}
			if deleted > 0 {
				s.logger.Info("swept expired sessions", "deleted", deleted)
			}
		}
	}
}

// Len reports how many sessions are currently stored, expired or not.
func (s *SessionService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
