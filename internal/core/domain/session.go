package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionStatus indicates where a till session is in its lifecycle.
type SessionStatus string

const (
	SessionOpen   SessionStatus = "OPEN"
	SessionClosed SessionStatus = "CLOSED"
)

// Session is one open-to-close cycle of the till.
// Totals are derived from the session's transactions and written when it closes.
type Session struct {
	SessionID               string          `json:"sessionID"`
	OpenedAt                time.Time       `json:"openedAt"`
	CalendarDate            string          `json:"calendarDate"` // YYYY-MM-DD in the till timezone
	OpeningFloat            decimal.Decimal `json:"openingFloat"`
	Status                  SessionStatus   `json:"status"`
	TransactionCount        int             `json:"transactionCount"`
	TotalPurchasesLocal     decimal.Decimal `json:"totalPurchasesLocal"`
	TotalSalesLocal         decimal.Decimal `json:"totalSalesLocal"`
	ProjectedClosingBalance decimal.Decimal `json:"projectedClosingBalance"`
	ClosedAt                *time.Time      `json:"closedAt,omitempty"`
	OpenedBy                string          `json:"openedBy"`
	ClosedBy                string          `json:"closedBy,omitempty"`
}

// IsOpen reports whether the session still accepts transactions.
func (s Session) IsOpen() bool {
	return s.Status == SessionOpen
}

// IsOpenOn reports whether the session is open for the given calendar date.
func (s Session) IsOpenOn(calendarDate string) bool {
	return s.IsOpen() && s.CalendarDate == calendarDate
}
