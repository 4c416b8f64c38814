package document_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bureau_de_change/internal/apperrors"
	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	"github.com/SscSPs/bureau_de_change/internal/core/services"
	"github.com/SscSPs/bureau_de_change/internal/dto"
	"github.com/SscSPs/bureau_de_change/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTillDay runs a full day on the in-memory store: open, trade, remove a
// currency, close, and attempt a second close.
func TestTillDay(t *testing.T) {
	ctx := context.Background()
	repos, err := memory.NewRepositoryProvider()
	require.NoError(t, err)

	now := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	clock := services.WithClock(func() time.Time { return now })
	sessions := services.NewSessionService(repos.SessionRepo, repos.TransactionRepo, repos.CurrencyRepo, nil, clock)
	transactions := services.NewTransactionService(repos.SessionRepo, repos.TransactionRepo, repos.CurrencyRepo, clock)
	currencies := services.NewCurrencyService(repos.CurrencyRepo, repos.TransactionRepo, clock)
	reporting := services.NewReportingService(repos.SessionRepo, repos.TransactionRepo, repos.CurrencyRepo, nil, clock)

	opened, err := sessions.OpenSession(ctx, dto.OpenSessionRequest{OpeningFloat: decimal.NewFromInt(100000)}, "caissier")
	require.NoError(t, err)

	active, err := sessions.GetActiveSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, opened.SessionID, active.SessionID)
	assert.Equal(t, domain.SessionOpen, active.Status)
	assert.True(t, active.OpeningFloat.Equal(decimal.NewFromInt(100000)))

	_, err = sessions.OpenSession(ctx, dto.OpenSessionRequest{OpeningFloat: decimal.NewFromInt(1)}, "caissier")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	all, err := sessions.ListSessions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	purchase, err := transactions.RecordTransaction(ctx, opened.SessionID, dto.RecordTransactionRequest{
		Kind: "PURCHASE", CurrencyCode: "USD", ForeignAmount: decimal.NewFromInt(50), ClientName: "Jean",
	}, "caissier")
	require.NoError(t, err)
	assert.True(t, purchase.LocalAmount.Equal(decimal.NewFromInt(125000)))

	sale, err := transactions.RecordTransaction(ctx, opened.SessionID, dto.RecordTransactionRequest{
		Kind: "SALE", CurrencyCode: "USD", ForeignAmount: decimal.NewFromInt(20), ClientName: "Marie",
	}, "caissier")
	require.NoError(t, err)
	assert.True(t, sale.LocalAmount.Equal(decimal.NewFromInt(51000)))

	live, err := reporting.GetSessionReport(ctx, opened.SessionID)
	require.NoError(t, err)
	assert.True(t, live.ProjectedClosingBalance.Equal(decimal.NewFromInt(26000)))

	used, err := currencies.IsCurrencyReferenced(ctx, "USD")
	require.NoError(t, err)
	assert.True(t, used)
	require.NoError(t, currencies.RemoveCurrency(ctx, "USD"))

	stored, err := transactions.GetTransaction(ctx, purchase.TransactionID)
	require.NoError(t, err)
	assert.True(t, stored.AppliedRate.Equal(decimal.NewFromInt(2500)))
	assert.True(t, stored.LocalAmount.Equal(decimal.NewFromInt(125000)))

	now = now.Add(9 * time.Hour)
	closure, err := sessions.CloseSession(ctx, opened.SessionID, "caissier")
	require.NoError(t, err)
	assert.True(t, closure.Session.TotalPurchasesLocal.Equal(decimal.NewFromInt(125000)))
	assert.True(t, closure.Session.TotalSalesLocal.Equal(decimal.NewFromInt(51000)))
	assert.True(t, closure.Session.ProjectedClosingBalance.Equal(decimal.NewFromInt(26000)))
	assert.Equal(t, 2, closure.Session.TransactionCount)

	_, err = sessions.CloseSession(ctx, opened.SessionID, "caissier")
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	persisted, err := sessions.GetSession(ctx, opened.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionClosed, persisted.Status)
	assert.True(t, persisted.ProjectedClosingBalance.Equal(decimal.NewFromInt(26000)))
	require.NotNil(t, persisted.ClosedAt)
	assert.True(t, persisted.ClosedAt.Equal(now))

	_, err = sessions.GetActiveSession(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = transactions.RecordTransaction(ctx, opened.SessionID, dto.RecordTransactionRequest{
		Kind: "SALE", CurrencyCode: "EUR", ForeignAmount: decimal.NewFromInt(1), ClientName: "Late",
	}, "caissier")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
