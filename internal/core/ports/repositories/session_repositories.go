package repositories

import (
	"context"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
)

// SessionReader defines read operations for till sessions
type SessionReader interface {
	// ListSessions returns every persisted session.
	ListSessions(ctx context.Context) ([]domain.Session, error)

	// FindSessionByID returns the session or apperrors.ErrNotFound.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error)
}

// SessionWriter defines write operations for till sessions
type SessionWriter interface {
	// CreateSession persists a new session and returns its generated id.
	CreateSession(ctx context.Context, session domain.Session) (string, error)

	// SaveClosedSession writes the closing status, totals and timestamp of a session.
	SaveClosedSession(ctx context.Context, session domain.Session) error
}

// SessionRepositoryFacade combines all session-related repository interfaces
type SessionRepositoryFacade interface {
	SessionReader
	SessionWriter
}
