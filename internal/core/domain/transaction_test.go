package domain_test

import (
	"testing"

	"github.com/SscSPs/bureau_de_change/internal/apperrors"
	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.TransactionKind
		wantErr bool
	}{
		{name: "canonical purchase", input: "PURCHASE", want: domain.Purchase},
		{name: "canonical sale lower case", input: "sale", want: domain.Sale},
		{name: "french achat", input: "achat", want: domain.Purchase},
		{name: "french vente padded", input: " Vente ", want: domain.Sale},
		{name: "unknown", input: "swap", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseTransactionKind(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransaction_ReceiptNumber(t *testing.T) {
	txn := domain.Transaction{TransactionID: "3f2a9c1e-77aa-4b0c-9d2e-000000000000"}
	assert.Equal(t, "3F2A9C1E", txn.ReceiptNumber())

	short := domain.Transaction{TransactionID: "ab12"}
	assert.Equal(t, "AB12", short.ReceiptNumber())
}

func TestTransaction_MatchesQuery(t *testing.T) {
	txn := domain.Transaction{
		ClientName:    "Jean Mukendi",
		CurrencyCode:  "USD",
		ForeignAmount: decimal.NewFromInt(50),
		LocalAmount:   decimal.NewFromInt(125000),
	}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "empty query", query: "", want: true},
		{name: "blank query", query: "   ", want: true},
		{name: "client name any case", query: "mukENDI", want: true},
		{name: "currency code lower case", query: "usd", want: true},
		{name: "foreign amount substring", query: "50", want: true},
		{name: "local amount substring", query: "1250", want: true},
		{name: "no match", query: "EUR", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, txn.MatchesQuery(tt.query))
		})
	}
}

func TestCurrencyDefinition_RateFor(t *testing.T) {
	usd := domain.CurrencyDefinition{
		CurrencyCode: "USD",
		BuyRate:      decimal.NewFromInt(2500),
		SellRate:     decimal.NewFromInt(2550),
	}

	assert.True(t, usd.RateFor(domain.Purchase).Equal(decimal.NewFromInt(2500)))
	assert.True(t, usd.RateFor(domain.Sale).Equal(decimal.NewFromInt(2550)))
}

func TestCurrencyDefinition_Validate(t *testing.T) {
	valid := domain.CurrencyDefinition{
		CurrencyCode: "EUR",
		Name:         "Euro",
		Symbol:       "€",
		BuyRate:      decimal.NewFromInt(2700),
		SellRate:     decimal.NewFromInt(2750),
	}
	assert.NoError(t, valid.Validate())

	zeroBuy := valid
	zeroBuy.BuyRate = decimal.Zero
	assert.ErrorIs(t, zeroBuy.Validate(), apperrors.ErrValidation)

	negativeSell := valid
	negativeSell.SellRate = decimal.NewFromInt(-1)
	assert.ErrorIs(t, negativeSell.Validate(), apperrors.ErrValidation)

	noCode := valid
	noCode.CurrencyCode = "  "
	assert.ErrorIs(t, noCode.Validate(), apperrors.ErrValidation)

	noName := valid
	noName.Name = ""
	assert.ErrorIs(t, noName.Validate(), apperrors.ErrValidation)

	finest := valid
	finest.BuyRate = decimal.RequireFromString("2700.12345678")
	assert.NoError(t, finest.Validate())

	trailingZeros := valid
	trailingZeros.SellRate = decimal.RequireFromString("2750.1234567800")
	assert.NoError(t, trailingZeros.Validate())

	tooPrecise := valid
	tooPrecise.BuyRate = decimal.RequireFromString("2700.123456789")
	assert.ErrorIs(t, tooPrecise.Validate(), apperrors.ErrValidation)

	tooLarge := valid
	tooLarge.SellRate = decimal.RequireFromString("1000000000000")
	assert.ErrorIs(t, tooLarge.Validate(), apperrors.ErrValidation)
}

func TestSession_IsOpenOn(t *testing.T) {
	s := domain.Session{Status: domain.SessionOpen, CalendarDate: "2026-10-15"}
	assert.True(t, s.IsOpenOn("2026-10-15"))
	assert.False(t, s.IsOpenOn("2026-10-14"))

	s.Status = domain.SessionClosed
	assert.False(t, s.IsOpenOn("2026-10-15"))
}
