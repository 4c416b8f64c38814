package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bureau_de_change/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether the till bought or sold foreign currency.
type TransactionKind string

const (
	Purchase TransactionKind = "PURCHASE" // till buys foreign currency from the client
	Sale     TransactionKind = "SALE"     // till sells foreign currency to the client
)

// ParseTransactionKind accepts the canonical names and the French labels used on the counter.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PURCHASE", "ACHAT":
		return Purchase, nil
	case "SALE", "VENTE":
		return Sale, nil
	default:
		return "", apperrors.NewValidationError(fmt.Sprintf("unknown transaction kind '%s'", s))
	}
}

// Transaction is a single buy/sell entry of a session. Immutable once created.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	SessionID     string          `json:"sessionID"`
	Kind          TransactionKind `json:"kind"`
	CurrencyCode  string          `json:"currencyCode"`
	ForeignAmount decimal.Decimal `json:"foreignAmount"`
	AppliedRate   decimal.Decimal `json:"appliedRate"` // Snapshot of the rate table at creation
	LocalAmount   decimal.Decimal `json:"localAmount"` // ForeignAmount * AppliedRate, unrounded
	ClientName    string          `json:"clientName"`
	ClientPhone   string          `json:"clientPhone,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ReceiptNumber is the short number printed on the client's ticket.
func (t Transaction) ReceiptNumber() string {
	id := t.TransactionID
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

// MatchesQuery reports whether the transaction matches a free-text search on client name,
// currency code or amount. Text comparisons ignore case; an empty query matches everything.
func (t Transaction) MatchesQuery(query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	lq := strings.ToLower(q)
	return strings.Contains(strings.ToLower(t.ClientName), lq) ||
		strings.Contains(strings.ToLower(t.CurrencyCode), lq) ||
		strings.Contains(t.ForeignAmount.String(), q) ||
		strings.Contains(t.LocalAmount.String(), q)
}
