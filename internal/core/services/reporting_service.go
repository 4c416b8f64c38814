package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	portsrepo "github.com/SscSPs/bureau_de_change/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bureau_de_change/internal/core/ports/services"
	"github.com/SscSPs/bureau_de_change/internal/utils/accounting"
)

var errNoRenderer = errors.New("no report renderer configured")

// reportingService implements the ReportingSvc interface
type reportingService struct {
	BaseService
	sessionRepo     portsrepo.SessionReader
	transactionRepo portsrepo.TransactionReader
	currencyRepo    portsrepo.CurrencyReader
	renderer        portssvc.ReportRenderer
}

// NewReportingService creates a new reporting service
func NewReportingService(
	sessionRepo portsrepo.SessionReader,
	transactionRepo portsrepo.TransactionReader,
	currencyRepo portsrepo.CurrencyReader,
	renderer portssvc.ReportRenderer,
	options ...ServiceOption,
) portssvc.ReportingSvc {
	return &reportingService{
		BaseService:     newBaseService(options),
		sessionRepo:     sessionRepo,
		transactionRepo: transactionRepo,
		currencyRepo:    currencyRepo,
		renderer:        renderer,
	}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// GetSessionReport aggregates the session's transactions. For an open session the
// totals are live, for a closed one they match the figures stored at close.
func (s *reportingService) GetSessionReport(ctx context.Context, sessionID string) (*domain.SessionReport, error) {
	session, txns, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	report := accounting.Aggregate(*session, txns)
	return &report, nil
}

func (s *reportingService) ExportSessionReport(ctx context.Context, sessionID string) ([]byte, string, error) {
	if s.renderer == nil {
		return nil, "", errNoRenderer
	}

	session, txns, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}
	closing := buildClosingReport(ctx, &s.BaseService, s.currencyRepo, *session, accounting.Aggregate(*session, txns), txns)

	content, err := s.renderer.Render(closing)
	if err != nil {
		s.LogError(ctx, err, "Failed to render session report", slog.String("session_id", sessionID))
		return nil, "", fmt.Errorf("failed to export report for session %s: %w", sessionID, err)
	}
	return content, s.renderer.FileName(closing), nil
}

func (s *reportingService) load(ctx context.Context, sessionID string) (*domain.Session, []domain.Transaction, error) {
	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	txns, err := s.transactionRepo.ListTransactionsBySession(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load transactions of session %s: %w", sessionID, err)
	}
	return session, txns, nil
}

// buildClosingReport gathers what the report generator consumes. The rate table is
// informational here, so a failure to read it leaves Rates empty.
func buildClosingReport(
	ctx context.Context,
	base *BaseService,
	currencyRepo portsrepo.CurrencyReader,
	session domain.Session,
	summary domain.SessionReport,
	txns []domain.Transaction,
) domain.ClosingReport {
	var rates []domain.CurrencyDefinition
	if currencyRepo != nil {
		var err error
		rates, err = currencyRepo.ListCurrencies(ctx)
		if err != nil {
			base.LogError(ctx, err, "Failed to read rate table for report", slog.String("session_id", session.SessionID))
			rates = nil
		}
	}
	return domain.ClosingReport{
		Session:      session,
		Summary:      summary,
		Transactions: txns,
		Rates:        rates,
		GeneratedAt:  base.now(),
	}
}
