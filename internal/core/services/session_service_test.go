package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bureau_de_change/internal/apperrors"
	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	portssvc "github.com/SscSPs/bureau_de_change/internal/core/ports/services"
	"github.com/SscSPs/bureau_de_change/internal/core/services"
	"github.com/SscSPs/bureau_de_change/internal/dto"
	"github.com/SscSPs/bureau_de_change/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

const today = "2026-10-15"

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func recorded(id, sessionID string, kind domain.TransactionKind, code, foreign, rate string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		SessionID:     sessionID,
		Kind:          kind,
		CurrencyCode:  code,
		ForeignAmount: dec(foreign),
		AppliedRate:   dec(rate),
		LocalAmount:   accounting.LocalAmount(dec(foreign), dec(rate)),
		ClientName:    "client " + id,
		CreatedAt:     fixedNow,
	}
}

type SessionServiceTestSuite struct {
	suite.Suite
	sessions     *MockSessionRepository
	transactions *MockTransactionRepository
	currencies   *MockCurrencyRepository
	publisher    *MockReportPublisher
	service      portssvc.SessionSvcFacade
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.sessions = new(MockSessionRepository)
	suite.transactions = new(MockTransactionRepository)
	suite.currencies = new(MockCurrencyRepository)
	suite.publisher = new(MockReportPublisher)
	suite.service = services.NewSessionService(
		suite.sessions, suite.transactions, suite.currencies, suite.publisher,
		services.WithClock(func() time.Time { return fixedNow }),
	)
}

func (suite *SessionServiceTestSuite) openSession(id, date string, float string) domain.Session {
	return domain.Session{
		SessionID:               id,
		CalendarDate:            date,
		OpeningFloat:            dec(float),
		Status:                  domain.SessionOpen,
		TotalPurchasesLocal:     decimal.Zero,
		TotalSalesLocal:         decimal.Zero,
		ProjectedClosingBalance: dec(float),
	}
}

func (suite *SessionServiceTestSuite) TestOpenSession_Success() {
	ctx := context.Background()
	yesterday := suite.openSession("s-0", "2026-10-14", "500")

	suite.sessions.On("ListSessions", ctx).Return([]domain.Session{yesterday}, nil).Once()
	suite.sessions.On("CreateSession", ctx, mock.MatchedBy(func(s domain.Session) bool {
		return s.Status == domain.SessionOpen &&
			s.CalendarDate == today &&
			s.OpeningFloat.Equal(dec("100000")) &&
			s.TotalPurchasesLocal.IsZero() &&
			s.TotalSalesLocal.IsZero() &&
			s.TransactionCount == 0 &&
			s.OpenedBy == "caissier"
	})).Return("s-1", nil).Once()

	session, err := suite.service.OpenSession(ctx, dto.OpenSessionRequest{OpeningFloat: dec("100000")}, "caissier")

	suite.Require().NoError(err)
	suite.Equal("s-1", session.SessionID)
	suite.True(session.ProjectedClosingBalance.Equal(dec("100000")))
	suite.Equal(fixedNow, session.OpenedAt)
	suite.sessions.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestOpenSession_InvalidFloat() {
	ctx := context.Background()
	for _, float := range []string{"0", "-10"} {
		_, err := suite.service.OpenSession(ctx, dto.OpenSessionRequest{OpeningFloat: dec(float)}, "caissier")
		suite.ErrorIs(err, apperrors.ErrValidation, float)
	}
	suite.sessions.AssertNotCalled(suite.T(), "ListSessions", mock.Anything)
	suite.sessions.AssertNotCalled(suite.T(), "CreateSession", mock.Anything, mock.Anything)
}

func (suite *SessionServiceTestSuite) TestOpenSession_AlreadyOpenToday() {
	ctx := context.Background()
	existing := suite.openSession("s-1", today, "100000")
	suite.sessions.On("ListSessions", ctx).Return([]domain.Session{existing}, nil).Once()

	session, err := suite.service.OpenSession(ctx, dto.OpenSessionRequest{OpeningFloat: dec("50")}, "caissier")

	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.sessions.AssertNotCalled(suite.T(), "CreateSession", mock.Anything, mock.Anything)
}

func (suite *SessionServiceTestSuite) TestOpenSession_ClosedTodayAllowsReopen() {
	ctx := context.Background()
	closed := suite.openSession("s-1", today, "100000")
	closed.Status = domain.SessionClosed
	suite.sessions.On("ListSessions", ctx).Return([]domain.Session{closed}, nil).Once()
	suite.sessions.On("CreateSession", ctx, mock.AnythingOfType("domain.Session")).Return("s-2", nil).Once()

	session, err := suite.service.OpenSession(ctx, dto.OpenSessionRequest{OpeningFloat: dec("10")}, "caissier")

	suite.Require().NoError(err)
	suite.Equal("s-2", session.SessionID)
}

func (suite *SessionServiceTestSuite) TestOpenSession_TransportError() {
	ctx := context.Background()
	suite.sessions.On("ListSessions", ctx).Return(nil, apperrors.NewTransportError("list", assert.AnError)).Once()

	_, err := suite.service.OpenSession(ctx, dto.OpenSessionRequest{OpeningFloat: dec("10")}, "caissier")

	suite.ErrorIs(err, apperrors.ErrTransport)
	suite.Equal(apperrors.KindConnectionProblem, apperrors.KindOf(err))
}

func (suite *SessionServiceTestSuite) TestGetActiveSession() {
	ctx := context.Background()
	old := suite.openSession("s-0", "2026-10-14", "1")
	current := suite.openSession("s-1", today, "100000")
	suite.sessions.On("ListSessions", ctx).Return([]domain.Session{old, current}, nil).Once()

	session, err := suite.service.GetActiveSession(ctx)

	suite.Require().NoError(err)
	suite.Equal("s-1", session.SessionID)
	suite.Equal(domain.SessionOpen, session.Status)
	suite.True(session.OpeningFloat.Equal(dec("100000")))
}

func (suite *SessionServiceTestSuite) TestGetActiveSession_None() {
	ctx := context.Background()
	stale := suite.openSession("s-0", "2026-10-14", "1")
	suite.sessions.On("ListSessions", ctx).Return([]domain.Session{stale}, nil).Once()

	session, err := suite.service.GetActiveSession(ctx)

	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SessionServiceTestSuite) TestCloseSession_Scenario() {
	ctx := context.Background()
	open := suite.openSession("s-1", today, "100000")
	txns := []domain.Transaction{
		recorded("t-1", "s-1", domain.Purchase, "USD", "50", "2500"),
		recorded("t-2", "s-1", domain.Sale, "USD", "20", "2550"),
	}
	rates := []domain.CurrencyDefinition{{CurrencyCode: "USD", BuyRate: dec("2500"), SellRate: dec("2550"), Symbol: "$"}}

	suite.sessions.On("FindSessionByID", ctx, "s-1").Return(&open, nil).Once()
	suite.transactions.On("ListTransactionsBySession", ctx, "s-1").Return(txns, nil).Once()
	suite.sessions.On("SaveClosedSession", ctx, mock.MatchedBy(func(s domain.Session) bool {
		return s.Status == domain.SessionClosed &&
			s.TransactionCount == 2 &&
			s.TotalPurchasesLocal.Equal(dec("125000")) &&
			s.TotalSalesLocal.Equal(dec("51000")) &&
			s.ProjectedClosingBalance.Equal(dec("26000")) &&
			s.ClosedAt != nil && s.ClosedAt.Equal(fixedNow) &&
			s.ClosedBy == "caissier"
	})).Return(nil).Once()
	suite.currencies.On("ListCurrencies", ctx).Return(rates, nil).Once()
	suite.publisher.On("Publish", ctx, mock.MatchedBy(func(r domain.ClosingReport) bool {
		return r.Session.SessionID == "s-1" && len(r.Transactions) == 2 && len(r.Rates) == 1 &&
			r.Summary.ProjectedClosingBalance.Equal(dec("26000"))
	})).Return("reports/2026-10-15.xlsx", nil).Once()

	closure, err := suite.service.CloseSession(ctx, "s-1", "caissier")

	suite.Require().NoError(err)
	suite.Equal(domain.SessionClosed, closure.Session.Status)
	suite.True(closure.Report.TotalPurchasesLocal.Equal(dec("125000")))
	suite.True(closure.Report.TotalSalesLocal.Equal(dec("51000")))
	suite.True(closure.Report.Balance.Equal(dec("-74000")))
	suite.Equal(domain.SessionClosed, closure.Report.Status)
	suite.Equal("reports/2026-10-15.xlsx", closure.ReportLocation)
	suite.sessions.AssertExpectations(suite.T())
	suite.transactions.AssertExpectations(suite.T())
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestCloseSession_AlreadyClosed() {
	ctx := context.Background()
	closed := suite.openSession("s-1", today, "100000")
	closed.Status = domain.SessionClosed
	closed.TotalSalesLocal = dec("51000")
	suite.sessions.On("FindSessionByID", ctx, "s-1").Return(&closed, nil).Once()

	closure, err := suite.service.CloseSession(ctx, "s-1", "caissier")

	suite.Nil(closure)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.sessions.AssertNotCalled(suite.T(), "SaveClosedSession", mock.Anything, mock.Anything)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *SessionServiceTestSuite) TestCloseSession_NotFound() {
	ctx := context.Background()
	suite.sessions.On("FindSessionByID", ctx, "nope").Return(nil, apperrors.NewNotFoundError("session nope")).Once()

	_, err := suite.service.CloseSession(ctx, "nope", "caissier")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SessionServiceTestSuite) TestCloseSession_PublishFailureKeepsClose() {
	ctx := context.Background()
	open := suite.openSession("s-1", today, "10")
	suite.sessions.On("FindSessionByID", ctx, "s-1").Return(&open, nil).Once()
	suite.transactions.On("ListTransactionsBySession", ctx, "s-1").Return([]domain.Transaction{}, nil).Once()
	suite.sessions.On("SaveClosedSession", ctx, mock.AnythingOfType("domain.Session")).Return(nil).Once()
	suite.currencies.On("ListCurrencies", ctx).Return(nil, assert.AnError).Once()
	suite.publisher.On("Publish", ctx, mock.AnythingOfType("domain.ClosingReport")).Return("", assert.AnError).Once()

	closure, err := suite.service.CloseSession(ctx, "s-1", "caissier")

	suite.Require().NoError(err)
	suite.Equal(domain.SessionClosed, closure.Session.Status)
	suite.True(closure.Session.ProjectedClosingBalance.Equal(dec("10")))
	suite.Empty(closure.ReportLocation)
}

func (suite *SessionServiceTestSuite) TestCloseSession_SaveFailure() {
	ctx := context.Background()
	open := suite.openSession("s-1", today, "10")
	suite.sessions.On("FindSessionByID", ctx, "s-1").Return(&open, nil).Once()
	suite.transactions.On("ListTransactionsBySession", ctx, "s-1").Return([]domain.Transaction{}, nil).Once()
	suite.sessions.On("SaveClosedSession", ctx, mock.AnythingOfType("domain.Session")).
		Return(apperrors.NewTransportError("update", assert.AnError)).Once()

	_, err := suite.service.CloseSession(ctx, "s-1", "caissier")

	suite.ErrorIs(err, apperrors.ErrTransport)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *SessionServiceTestSuite) TestListSessions_NewestFirst() {
	ctx := context.Background()
	a := suite.openSession("a", "2026-10-13", "1")
	a.OpenedAt = fixedNow.Add(-48 * time.Hour)
	b := suite.openSession("b", "2026-10-15", "1")
	b.OpenedAt = fixedNow
	c := suite.openSession("c", "2026-10-14", "1")
	c.OpenedAt = fixedNow.Add(-24 * time.Hour)
	suite.sessions.On("ListSessions", ctx).Return([]domain.Session{a, b, c}, nil).Once()

	sessions, err := suite.service.ListSessions(ctx)

	suite.Require().NoError(err)
	ids := []string{sessions[0].SessionID, sessions[1].SessionID, sessions[2].SessionID}
	suite.Equal([]string{"b", "c", "a"}, ids)
}

func (suite *SessionServiceTestSuite) TestListSessions_EmptyIsNotNil() {
	ctx := context.Background()
	suite.sessions.On("ListSessions", ctx).Return(nil, nil).Once()

	sessions, err := suite.service.ListSessions(ctx)

	suite.Require().NoError(err)
	suite.NotNil(sessions)
	suite.Empty(sessions)
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func TestSessionService_NoPublisher(t *testing.T) {
	ctx := context.Background()
	sessions := new(MockSessionRepository)
	transactions := new(MockTransactionRepository)
	svc := services.NewSessionService(sessions, transactions, nil, nil,
		services.WithClock(func() time.Time { return fixedNow }))

	open := domain.Session{SessionID: "s-1", CalendarDate: today, Status: domain.SessionOpen, OpeningFloat: dec("5")}
	sessions.On("FindSessionByID", ctx, "s-1").Return(&open, nil).Once()
	transactions.On("ListTransactionsBySession", ctx, "s-1").Return([]domain.Transaction{}, nil).Once()
	sessions.On("SaveClosedSession", ctx, mock.AnythingOfType("domain.Session")).Return(nil).Once()

	closure, err := svc.CloseSession(ctx, "s-1", "caissier")

	assert.NoError(t, err)
	assert.Empty(t, closure.ReportLocation)
}

func TestSessionService_CalendarDateUsesTillTimezone(t *testing.T) {
	ctx := context.Background()
	sessions := new(MockSessionRepository)
	kinshasa := time.FixedZone("WAT", 3600)
	lateEvening := time.Date(2026, 10, 15, 23, 30, 0, 0, time.UTC)
	svc := services.NewSessionService(sessions, new(MockTransactionRepository), nil, nil,
		services.WithClock(func() time.Time { return lateEvening }),
		services.WithLocation(kinshasa))

	sessions.On("ListSessions", ctx).Return([]domain.Session{}, nil).Once()
	sessions.On("CreateSession", ctx, mock.MatchedBy(func(s domain.Session) bool {
		return s.CalendarDate == "2026-10-16"
	})).Return("s-1", nil).Once()

	_, err := svc.OpenSession(ctx, dto.OpenSessionRequest{OpeningFloat: dec("1")}, "caissier")

	assert.NoError(t, err)
	sessions.AssertExpectations(t)
}
