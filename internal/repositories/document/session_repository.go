package document

import (
	"context"
	"fmt"

	"github.com/SscSPs/bureau_de_change/internal/apperrors"
	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	portsrepo "github.com/SscSPs/bureau_de_change/internal/core/ports/repositories"
)

// SessionRepository maps sessions onto the sessions collection.
type SessionRepository struct {
	gateway portsrepo.DocumentGateway
}

func NewSessionRepository(gateway portsrepo.DocumentGateway) *SessionRepository {
	return &SessionRepository{gateway: gateway}
}

var _ portsrepo.SessionRepositoryFacade = (*SessionRepository)(nil)

func (r *SessionRepository) ListSessions(ctx context.Context) ([]domain.Session, error) {
	docs, err := r.gateway.ListAll(ctx, portsrepo.CollectionSessions)
	if err != nil {
		return nil, err
	}
	sessions := make([]domain.Session, 0, len(docs))
	for _, doc := range docs {
		s, err := decodeSession(doc)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func (r *SessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	sessions, err := r.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		if sessions[i].SessionID == sessionID {
			return &sessions[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("session %s", sessionID))
}

func (r *SessionRepository) CreateSession(ctx context.Context, session domain.Session) (string, error) {
	return r.gateway.Create(ctx, portsrepo.CollectionSessions, toSessionRecord(session))
}

// SaveClosedSession writes only the fields that change at close.
func (r *SessionRepository) SaveClosedSession(ctx context.Context, session domain.Session) error {
	return r.gateway.Update(ctx, portsrepo.CollectionSessions, session.SessionID, map[string]any{
		"status":                  string(session.Status),
		"transactionCount":        session.TransactionCount,
		"totalPurchasesLocal":     session.TotalPurchasesLocal,
		"totalSalesLocal":         session.TotalSalesLocal,
		"projectedClosingBalance": session.ProjectedClosingBalance,
		"closedAt":                session.ClosedAt,
		"closedBy":                session.ClosedBy,
	})
}
