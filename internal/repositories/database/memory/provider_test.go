package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	"github.com/SscSPs/bureau_de_change/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepositoryProvider(t *testing.T) {
	ctx := context.Background()
	provider, err := memory.NewRepositoryProvider()
	require.NoError(t, err)
	require.NotNil(t, provider.CurrencyRepo)
	require.NotNil(t, provider.SessionRepo)
	require.NotNil(t, provider.TransactionRepo)
	require.NotNil(t, provider.PreferenceRepo)

	usd, err := provider.CurrencyRepo.FindCurrencyByCode(ctx, "USD")
	require.NoError(t, err)
	assert.Equal(t, "$", usd.Symbol)

	id, err := provider.SessionRepo.CreateSession(ctx, domain.Session{
		OpenedAt:                time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC),
		CalendarDate:            "2026-10-15",
		OpeningFloat:            decimal.NewFromInt(1000),
		Status:                  domain.SessionOpen,
		TotalPurchasesLocal:     decimal.Zero,
		TotalSalesLocal:         decimal.Zero,
		ProjectedClosingBalance: decimal.NewFromInt(1000),
		OpenedBy:                "caissier",
	})
	require.NoError(t, err)

	got, err := provider.SessionRepo.FindSessionByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.SessionID)
}
