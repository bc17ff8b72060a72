package mock

import (
	"context"

	"github.com/ompkit/wikidoc"
)

var _ wikidoc.SessionService = (*SessionService)(nil)

// SessionService is a mock implementation of wikidoc.SessionService.
type SessionService struct {
	CreateSessionFn         func(ctx context.Context, ownerID string, hits []wikidoc.SearchHit) (*wikidoc.Session, error)
	FindSessionByIDFn       func(ctx context.Context, id string) (*wikidoc.Session, error)
	DeleteExpiredSessionsFn func(ctx context.Context) (int, error)
}

func (s *SessionService) CreateSession(ctx context.Context, ownerID string, hits []wikidoc.SearchHit) (*wikidoc.Session, error) {
	return s.CreateSessionFn(ctx, ownerID, hits)
}

func (s *SessionService) FindSessionByID(ctx context.Context, id string) (*wikidoc.Session, error) {
	return s.FindSessionByIDFn(ctx, id)
}

func (s *SessionService) DeleteExpiredSessions(ctx context.Context) (int, error) {
	return s.DeleteExpiredSessionsFn(ctx)
}
