package services_test

import (
	"context"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock SessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) ListSessions(ctx context.Context) ([]domain.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Session), args.Error(1)
}

func (m *MockSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) CreateSession(ctx context.Context, session domain.Session) (string, error) {
	args := m.Called(ctx, session)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) SaveClosedSession(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsBySession(ctx context.Context, sessionID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (string, error) {
	args := m.Called(ctx, txn)
	return args.String(0), args.Error(1)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyDefinition, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyDefinition), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.CurrencyDefinition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyDefinition), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.CurrencyDefinition) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.CurrencyDefinition) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) DeleteCurrency(ctx context.Context, currencyCode string) error {
	args := m.Called(ctx, currencyCode)
	return args.Error(0)
}

// --- Mock PreferenceRepository ---
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) GetTheme(ctx context.Context) (domain.ThemeMode, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ThemeMode), args.Error(1)
}

func (m *MockPreferenceRepository) SaveTheme(ctx context.Context, mode domain.ThemeMode) error {
	args := m.Called(ctx, mode)
	return args.Error(0)
}

// --- Mock report collaborators ---
type MockReportPublisher struct {
	mock.Mock
}

func (m *MockReportPublisher) Publish(ctx context.Context, report domain.ClosingReport) (string, error) {
	args := m.Called(ctx, report)
	return args.String(0), args.Error(1)
}

type MockReportRenderer struct {
	mock.Mock
}

func (m *MockReportRenderer) Render(report domain.ClosingReport) ([]byte, error) {
	args := m.Called(report)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockReportRenderer) FileName(report domain.ClosingReport) string {
	args := m.Called(report)
	return args.String(0)
}
