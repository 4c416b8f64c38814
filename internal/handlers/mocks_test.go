package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	portssvc "github.com/SscSPs/bureau_de_change/internal/core/ports/services"
	"github.com/SscSPs/bureau_de_change/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock SessionService ---
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) GetActiveSession(ctx context.Context) (*domain.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockSessionService) ListSessions(ctx context.Context) ([]domain.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Session), args.Error(1)
}
func (m *MockSessionService) OpenSession(ctx context.Context, req dto.OpenSessionRequest, operator string) (*domain.Session, error) {
	args := m.Called(ctx, req, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockSessionService) CloseSession(ctx context.Context, sessionID string, operator string) (*domain.SessionClosure, error) {
	args := m.Called(ctx, sessionID, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionClosure), args.Error(1)
}

var _ portssvc.SessionSvcFacade = (*MockSessionService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListSessionTransactions(ctx context.Context, sessionID, query string) ([]domain.Transaction, error) {
	args := m.Called(ctx, sessionID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) GetReceipt(ctx context.Context, transactionID string) (*domain.Receipt, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}
func (m *MockTransactionService) RecordTransaction(ctx context.Context, sessionID string, req dto.RecordTransactionRequest, operator string) (*domain.Transaction, error) {
	args := m.Called(ctx, sessionID, req, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrency(ctx context.Context, currencyCode string) (*domain.CurrencyDefinition, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyDefinition), args.Error(1)
}
func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.CurrencyDefinition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyDefinition), args.Error(1)
}
func (m *MockCurrencyService) RateTable(ctx context.Context) (*domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}
func (m *MockCurrencyService) IsCurrencyReferenced(ctx context.Context, currencyCode string) (bool, error) {
	args := m.Called(ctx, currencyCode)
	return args.Bool(0), args.Error(1)
}
func (m *MockCurrencyService) AddCurrency(ctx context.Context, req dto.CreateCurrencyRequest, operator string) (*domain.CurrencyDefinition, error) {
	args := m.Called(ctx, req, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyDefinition), args.Error(1)
}
func (m *MockCurrencyService) UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest, operator string) (*domain.CurrencyDefinition, error) {
	args := m.Called(ctx, currencyCode, req, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyDefinition), args.Error(1)
}
func (m *MockCurrencyService) RemoveCurrency(ctx context.Context, currencyCode string) error {
	args := m.Called(ctx, currencyCode)
	return args.Error(0)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GetSessionReport(ctx context.Context, sessionID string) (*domain.SessionReport, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionReport), args.Error(1)
}
func (m *MockReportingService) ExportSessionReport(ctx context.Context, sessionID string) ([]byte, string, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

var _ portssvc.ReportingSvc = (*MockReportingService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)

// --- Mock PreferenceService ---
type MockPreferenceService struct {
	mock.Mock
}

func (m *MockPreferenceService) GetTheme(ctx context.Context) (domain.ThemeMode, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ThemeMode), args.Error(1)
}
func (m *MockPreferenceService) SetTheme(ctx context.Context, mode domain.ThemeMode) error {
	args := m.Called(ctx, mode)
	return args.Error(0)
}

var _ portssvc.PreferenceSvc = (*MockPreferenceService)(nil)
