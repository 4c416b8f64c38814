package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/bureau_de_change/internal/apperrors"
	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	portsrepo "github.com/SscSPs/bureau_de_change/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bureau_de_change/internal/core/ports/services"
	"github.com/SscSPs/bureau_de_change/internal/dto"
	"github.com/SscSPs/bureau_de_change/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// sessionService implements the till session ledger
type sessionService struct {
	BaseService
	sessionRepo     portsrepo.SessionRepositoryFacade
	transactionRepo portsrepo.TransactionReader
	currencyRepo    portsrepo.CurrencyReader
	publisher       portssvc.ReportPublisher
}

// NewSessionService creates a session service. publisher may be nil, in which case
// closing a session does not generate a report document.
func NewSessionService(
	sessionRepo portsrepo.SessionRepositoryFacade,
	transactionRepo portsrepo.TransactionReader,
	currencyRepo portsrepo.CurrencyReader,
	publisher portssvc.ReportPublisher,
	options ...ServiceOption,
) portssvc.SessionSvcFacade {
	return &sessionService{
		BaseService:     newBaseService(options),
		sessionRepo:     sessionRepo,
		transactionRepo: transactionRepo,
		currencyRepo:    currencyRepo,
		publisher:       publisher,
	}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

// OpenSession opens the till for the current calendar date.
// The one-open-session-per-day check reads then writes and is not atomic.
func (s *sessionService) OpenSession(ctx context.Context, req dto.OpenSessionRequest, operator string) (*domain.Session, error) {
	if !req.OpeningFloat.IsPositive() {
		return nil, apperrors.NewValidationError("opening float must be greater than zero")
	}

	today := s.today()
	sessions, err := s.sessionRepo.ListSessions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sessions before opening")
		return nil, fmt.Errorf("failed to open session: %w", err)
	}
	for _, existing := range sessions {
		if existing.IsOpenOn(today) {
			s.LogInfo(ctx, "Session already open for today",
				slog.String("session_id", existing.SessionID),
				slog.String("calendar_date", today))
			return nil, apperrors.NewConflictError(fmt.Sprintf("a session is already open for %s", today))
		}
	}

	session := domain.Session{
		OpenedAt:                s.now(),
		CalendarDate:            today,
		OpeningFloat:            req.OpeningFloat,
		Status:                  domain.SessionOpen,
		TotalPurchasesLocal:     decimal.Zero,
		TotalSalesLocal:         decimal.Zero,
		ProjectedClosingBalance: req.OpeningFloat,
		OpenedBy:                operator,
	}

	id, err := s.sessionRepo.CreateSession(ctx, session)
	if err != nil {
		s.LogError(ctx, err, "Failed to persist new session")
		return nil, fmt.Errorf("failed to open session: %w", err)
	}
	session.SessionID = id

	s.LogInfo(ctx, "Session opened",
		slog.String("session_id", id),
		slog.String("calendar_date", today),
		slog.String("opening_float", req.OpeningFloat.String()))
	return &session, nil
}

// CloseSession recomputes totals from the persisted transactions, stores the session as
// closed and publishes the closing report. A failed publication does not undo the close.
func (s *sessionService) CloseSession(ctx context.Context, sessionID string, operator string) (*domain.SessionClosure, error) {
	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to close session %s: %w", sessionID, err)
	}
	if !session.IsOpen() {
		return nil, apperrors.NewConflictError(fmt.Sprintf("session %s is already closed", sessionID))
	}

	txns, err := s.transactionRepo.ListTransactionsBySession(ctx, sessionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list session transactions for close", slog.String("session_id", sessionID))
		return nil, fmt.Errorf("failed to close session %s: %w", sessionID, err)
	}

	purchases, sales := accounting.SessionTotals(txns)
	closedAt := s.now()

	closed := *session
	closed.Status = domain.SessionClosed
	closed.TransactionCount = len(txns)
	closed.TotalPurchasesLocal = purchases
	closed.TotalSalesLocal = sales
	closed.ProjectedClosingBalance = accounting.ProjectedClosingBalance(closed.OpeningFloat, sales, purchases)
	closed.ClosedAt = &closedAt
	closed.ClosedBy = operator

	if err := s.sessionRepo.SaveClosedSession(ctx, closed); err != nil {
		s.LogError(ctx, err, "Failed to persist closed session", slog.String("session_id", sessionID))
		return nil, fmt.Errorf("failed to close session %s: %w", sessionID, err)
	}

	report := accounting.Aggregate(closed, txns)
	s.LogInfo(ctx, "Session closed",
		slog.String("session_id", sessionID),
		slog.Int("transaction_count", closed.TransactionCount),
		slog.String("projected_closing_balance", closed.ProjectedClosingBalance.String()))

	return &domain.SessionClosure{
		Session:        closed,
		Report:         report,
		ReportLocation: s.publish(ctx, closed, report, txns),
	}, nil
}

func (s *sessionService) publish(ctx context.Context, session domain.Session, report domain.SessionReport, txns []domain.Transaction) string {
	if s.publisher == nil {
		return ""
	}

	closing := buildClosingReport(ctx, &s.BaseService, s.currencyRepo, session, report, txns)
	location, err := s.publisher.Publish(ctx, closing)
	if err != nil {
		s.LogError(ctx, err, "Failed to publish closing report", slog.String("session_id", session.SessionID))
		return ""
	}
	s.LogInfo(ctx, "Closing report published",
		slog.String("session_id", session.SessionID),
		slog.String("location", location))
	return location
}

// GetActiveSession returns the session open for today, resuming an in-progress till.
func (s *sessionService) GetActiveSession(ctx context.Context) (*domain.Session, error) {
	sessions, err := s.sessionRepo.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active session: %w", err)
	}

	today := s.today()
	for i := len(sessions) - 1; i >= 0; i-- {
		if sessions[i].IsOpenOn(today) {
			active := sessions[i]
			return &active, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("no session open for %s", today))
}

func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session %s: %w", sessionID, err)
	}
	return session, nil
}

// ListSessions returns the session history, newest first.
func (s *sessionService) ListSessions(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.sessionRepo.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	if sessions == nil {
		return []domain.Session{}, nil
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].OpenedAt.After(sessions[j].OpenedAt)
	})
	return sessions, nil
}
