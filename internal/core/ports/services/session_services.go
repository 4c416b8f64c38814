package services

import (
	"context"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	"github.com/SscSPs/bureau_de_change/internal/dto"
)

// SessionReaderSvc defines read operations on till sessions
type SessionReaderSvc interface {
	// GetActiveSession returns the session open for today's calendar date,
	// or apperrors.ErrNotFound when the till has not been opened today.
	GetActiveSession(ctx context.Context) (*domain.Session, error)

	// GetSession retrieves a session by id.
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)

	// ListSessions returns the session history, newest first.
	ListSessions(ctx context.Context) ([]domain.Session, error)
}

// SessionWriterSvc defines the lifecycle operations of the till
type SessionWriterSvc interface {
	// OpenSession opens the till for today with the declared opening float.
	OpenSession(ctx context.Context, req dto.OpenSessionRequest, operator string) (*domain.Session, error)

	// CloseSession reconciles and closes the session, then publishes its closing report.
	CloseSession(ctx context.Context, sessionID string, operator string) (*domain.SessionClosure, error)
}

// SessionSvcFacade combines all session-related service interfaces
type SessionSvcFacade interface {
	SessionReaderSvc
	SessionWriterSvc
}
