package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/bureau_de_change/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CurrencyDefinition is one row of the rate table: a foreign currency the till trades.
type CurrencyDefinition struct {
	CurrencyCode string          `json:"currencyCode"` // Unique within the rate table (e.g., "USD")
	Name         string          `json:"name"`         // e.g., "US Dollar"
	BuyRate      decimal.Decimal `json:"buyRate"`      // Local units paid per foreign unit bought from a client
	SellRate     decimal.Decimal `json:"sellRate"`     // Local units received per foreign unit sold to a client
	Symbol       string          `json:"symbol"`       // e.g., "$"
	AuditFields
}

// Rates are stored as NUMERIC(20, 8): at most 8 decimals and 12 integer digits.
const (
	RateScale         = 8
	rateIntegerDigits = 12
)

var maxRate = decimal.New(1, rateIntegerDigits)

// NormalizeCurrencyCode trims and upper-cases a currency code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate checks the invariants of a single definition.
func (c CurrencyDefinition) Validate() error {
	if NormalizeCurrencyCode(c.CurrencyCode) == "" {
		return apperrors.NewValidationError("currency code is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return apperrors.NewValidationError("currency name is required")
	}
	if strings.TrimSpace(c.Symbol) == "" {
		return apperrors.NewValidationError("currency symbol is required")
	}
	if !c.BuyRate.IsPositive() {
		return apperrors.NewValidationError("buy rate must be greater than zero")
	}
	if !c.SellRate.IsPositive() {
		return apperrors.NewValidationError("sell rate must be greater than zero")
	}
	if err := validateRateRange("buy", c.BuyRate); err != nil {
		return err
	}
	return validateRateRange("sell", c.SellRate)
}

func validateRateRange(side string, rate decimal.Decimal) error {
	if !rate.Equal(rate.Truncate(RateScale)) {
		return apperrors.NewValidationError(fmt.Sprintf("%s rate has more than %d decimals", side, RateScale))
	}
	if rate.GreaterThanOrEqual(maxRate) {
		return apperrors.NewValidationError(fmt.Sprintf("%s rate is too large", side))
	}
	return nil
}

// RateFor returns the rate applied for a transaction kind, seen from the till:
// buying foreign currency from a client uses the buy rate, selling uses the sell rate.
func (c CurrencyDefinition) RateFor(kind TransactionKind) decimal.Decimal {
	if kind == Sale {
		return c.SellRate
	}
	return c.BuyRate
}

// DefaultCurrencies is the rate table a new till starts with.
func DefaultCurrencies() []CurrencyDefinition {
	return []CurrencyDefinition{
		{CurrencyCode: "USD", Name: "Dollar américain", BuyRate: decimal.NewFromInt(2500), SellRate: decimal.NewFromInt(2550), Symbol: "$"},
		{CurrencyCode: "EUR", Name: "Euro", BuyRate: decimal.NewFromInt(2700), SellRate: decimal.NewFromInt(2750), Symbol: "€"},
		{CurrencyCode: "GBP", Name: "Livre sterling", BuyRate: decimal.NewFromInt(3200), SellRate: decimal.NewFromInt(3250), Symbol: "£"},
		{CurrencyCode: "AOA", Name: "Kwanza angolais", BuyRate: decimal.RequireFromString("3.0"), SellRate: decimal.RequireFromString("3.2"), Symbol: "Kz"},
		{CurrencyCode: "ZAR", Name: "Rand sud-africain", BuyRate: decimal.NewFromInt(140), SellRate: decimal.NewFromInt(145), Symbol: "R"},
	}
}
