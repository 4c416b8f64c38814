package reports_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/bureau_de_change/internal/adapters/reports"
	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	"github.com/SscSPs/bureau_de_change/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func closingReport() domain.ClosingReport {
	opened := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	closed := opened.Add(9 * time.Hour)
	session := domain.Session{
		SessionID:    "3F2A9C1E-77aa-4b0c-9d2e-000000000000",
		CalendarDate: "2026-10-15",
		OpenedAt:     opened,
		ClosedAt:     &closed,
		Status:       domain.SessionClosed,
		OpeningFloat: decimal.NewFromInt(100000),
	}
	txns := []domain.Transaction{
		{TransactionID: "aaaaaaaa-1", SessionID: session.SessionID, Kind: domain.Purchase, CurrencyCode: "USD",
			ForeignAmount: decimal.NewFromInt(50), AppliedRate: decimal.NewFromInt(2500), LocalAmount: decimal.NewFromInt(125000),
			ClientName: "Jean", CreatedAt: opened.Add(time.Hour)},
		{TransactionID: "bbbbbbbb-2", SessionID: session.SessionID, Kind: domain.Sale, CurrencyCode: "USD",
			ForeignAmount: decimal.NewFromInt(20), AppliedRate: decimal.NewFromInt(2550), LocalAmount: decimal.NewFromInt(51000),
			ClientName: "Marie", ClientPhone: "+243 81", CreatedAt: opened.Add(2 * time.Hour)},
	}
	return domain.ClosingReport{
		Session:      session,
		Summary:      accounting.Aggregate(session, txns),
		Transactions: txns,
		Rates:        domain.DefaultCurrencies(),
		GeneratedAt:  closed,
	}
}

func rowValue(rows [][]string, label string) string {
	for _, row := range rows {
		if len(row) > 1 && row[0] == label {
			return row[1]
		}
	}
	return ""
}

func TestWorkbookRenderer_Render(t *testing.T) {
	report := closingReport()
	data, err := reports.NewWorkbookRenderer("FC").Render(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{reports.SheetSummary, reports.SheetCurrencies, reports.SheetTransactions}, f.GetSheetList())

	summary, err := f.GetRows(reports.SheetSummary)
	require.NoError(t, err)
	assert.Equal(t, "RAPPORT DE CAISSE", summary[0][0])
	assert.Equal(t, "2026-10-15", rowValue(summary, "Date"))
	assert.Equal(t, "17:00:00", rowValue(summary, "Fermeture"))
	assert.Equal(t, "2", rowValue(summary, "Nombre de transactions"))
	assert.Equal(t, "26000", rowValue(summary, "Solde théorique final (FC)"))

	currencies, err := f.GetRows(reports.SheetCurrencies)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(currencies), 3)
	assert.Equal(t, []string{"USD", "$", "Achats", "1", "50", "125000"}, currencies[1])
	assert.Equal(t, []string{"USD", "$", "Ventes", "1", "20", "51000"}, currencies[2])

	txns, err := f.GetRows(reports.SheetTransactions)
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, "AAAAAAAA", txns[1][0])
	assert.Equal(t, "Achat", txns[1][2])
	assert.Equal(t, "Vente", txns[2][2])
	assert.Equal(t, "+243 81", txns[2][8])
}

func TestWorkbookRenderer_RemovedCurrencyShowsCode(t *testing.T) {
	report := closingReport()
	report.Rates = []domain.CurrencyDefinition{{CurrencyCode: "EUR", Name: "Euro", Symbol: "€",
		BuyRate: decimal.NewFromInt(2700), SellRate: decimal.NewFromInt(2750)}}

	data, err := reports.NewWorkbookRenderer("FC").Render(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	currencies, err := f.GetRows(reports.SheetCurrencies)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(currencies), 3)
	assert.Equal(t, []string{"USD", "USD", "Achats", "1", "50", "125000"}, currencies[1])
}

func TestWorkbookRenderer_FileName(t *testing.T) {
	r := reports.NewWorkbookRenderer("")
	assert.Equal(t, "caisse-2026-10-15-3f2a9c1e.xlsx", r.FileName(closingReport()))

	short := closingReport()
	short.Session.SessionID = "s1"
	assert.Equal(t, "caisse-2026-10-15-s1.xlsx", r.FileName(short))
}

func TestLocalArchive_Store(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	archive := reports.NewLocalArchive(dir)

	location, err := archive.Store(context.Background(), "caisse.xlsx", []byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "caisse.xlsx"), location)

	got, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

type mockArchive struct {
	mock.Mock
}

func (m *mockArchive) Store(ctx context.Context, name string, data []byte) (string, error) {
	args := m.Called(ctx, name, data)
	return args.String(0), args.Error(1)
}

func TestPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	renderer := reports.NewWorkbookRenderer("FC")
	archive := new(mockArchive)
	archive.On("Store", ctx, "caisse-2026-10-15-3f2a9c1e.xlsx", mock.AnythingOfType("[]uint8")).
		Return("reports/caisse-2026-10-15-3f2a9c1e.xlsx", nil).Once()

	location, err := reports.NewPublisher(renderer, archive).Publish(ctx, closingReport())
	require.NoError(t, err)
	assert.Equal(t, "reports/caisse-2026-10-15-3f2a9c1e.xlsx", location)
	archive.AssertExpectations(t)
}

func TestPublisher_ArchiveFailure(t *testing.T) {
	ctx := context.Background()
	archive := new(mockArchive)
	archive.On("Store", ctx, mock.Anything, mock.Anything).Return("", errors.New("disk full")).Once()

	location, err := reports.NewPublisher(reports.NewWorkbookRenderer("FC"), archive).Publish(ctx, closingReport())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Empty(t, location)
}
