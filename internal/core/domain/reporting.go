package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SideTotals aggregates one side (purchases or sales) of a currency.
type SideTotals struct {
	Count        int             `json:"count"`
	ForeignTotal decimal.Decimal `json:"foreignTotal"`
	LocalTotal   decimal.Decimal `json:"localTotal"`
}

// CurrencyBreakdown holds purchase and sale totals for one currency code.
type CurrencyBreakdown struct {
	CurrencyCode string     `json:"currencyCode"`
	Purchases    SideTotals `json:"purchases"`
	Sales        SideTotals `json:"sales"`
}

// SessionReport summarizes a session's transactions.
// Currencies are listed in the order they first appear among the transactions.
type SessionReport struct {
	SessionID               string              `json:"sessionID"`
	CalendarDate            string              `json:"calendarDate"`
	Status                  SessionStatus       `json:"status"`
	OpeningFloat            decimal.Decimal     `json:"openingFloat"`
	TransactionCount        int                 `json:"transactionCount"`
	TotalPurchasesLocal     decimal.Decimal     `json:"totalPurchasesLocal"`
	TotalSalesLocal         decimal.Decimal     `json:"totalSalesLocal"`
	Balance                 decimal.Decimal     `json:"balance"` // sales - purchases
	ProjectedClosingBalance decimal.Decimal     `json:"projectedClosingBalance"`
	Currencies              []CurrencyBreakdown `json:"currencies"`
}

// Receipt is the data handed to the receipt renderer for one transaction.
type Receipt struct {
	Number         string          `json:"number"`
	TransactionID  string          `json:"transactionID"`
	Kind           TransactionKind `json:"kind"`
	KindLabel      string          `json:"kindLabel"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	IssuedAt       time.Time       `json:"issuedAt"`
	ClientName     string          `json:"clientName"`
	ClientPhone    string          `json:"clientPhone,omitempty"`
	CurrencyCode   string          `json:"currencyCode"`
	CurrencySymbol string          `json:"currencySymbol"`
	ForeignAmount  decimal.Decimal `json:"foreignAmount"`
	AppliedRate    decimal.Decimal `json:"appliedRate"`
	LocalAmount    decimal.Decimal `json:"localAmount"`
	ForeignDisplay string          `json:"foreignDisplay"`
	LocalDisplay   string          `json:"localDisplay"`
}

// ThemeMode is the operator's display preference.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// Valid reports whether the mode is a known theme.
func (m ThemeMode) Valid() bool {
	return m == ThemeLight || m == ThemeDark
}

// ClosingReport is everything the report generator needs for a session:
// the session, its aggregate, its transactions and the rate table at generation time.
type ClosingReport struct {
	Session      Session
	Summary      SessionReport
	Transactions []Transaction
	Rates        []CurrencyDefinition
	GeneratedAt  time.Time
}

// SessionClosure is the outcome of closing the till.
// ReportLocation is empty when the report could not be published.
type SessionClosure struct {
	Session        Session
	Report         SessionReport
	ReportLocation string
}
