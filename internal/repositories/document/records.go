package document

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	portsrepo "github.com/SscSPs/bureau_de_change/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// sessionRecord is the stored shape of a session. The id is the document id.
type sessionRecord struct {
	OpenedAt                time.Time       `json:"openedAt"`
	CalendarDate            string          `json:"calendarDate"`
	OpeningFloat            decimal.Decimal `json:"openingFloat"`
	Status                  string          `json:"status"`
	TransactionCount        int             `json:"transactionCount"`
	TotalPurchasesLocal     decimal.Decimal `json:"totalPurchasesLocal"`
	TotalSalesLocal         decimal.Decimal `json:"totalSalesLocal"`
	ProjectedClosingBalance decimal.Decimal `json:"projectedClosingBalance"`
	ClosedAt                *time.Time      `json:"closedAt,omitempty"`
	OpenedBy                string          `json:"openedBy"`
	ClosedBy                string          `json:"closedBy,omitempty"`
}

func toSessionRecord(s domain.Session) sessionRecord {
	return sessionRecord{
		OpenedAt:                s.OpenedAt,
		CalendarDate:            s.CalendarDate,
		OpeningFloat:            s.OpeningFloat,
		Status:                  string(s.Status),
		TransactionCount:        s.TransactionCount,
		TotalPurchasesLocal:     s.TotalPurchasesLocal,
		TotalSalesLocal:         s.TotalSalesLocal,
		ProjectedClosingBalance: s.ProjectedClosingBalance,
		ClosedAt:                s.ClosedAt,
		OpenedBy:                s.OpenedBy,
		ClosedBy:                s.ClosedBy,
	}
}

func decodeSession(doc portsrepo.Document) (domain.Session, error) {
	var rec sessionRecord
	if err := json.Unmarshal(doc.Data, &rec); err != nil {
		return domain.Session{}, fmt.Errorf("failed to decode session %s: %w", doc.ID, err)
	}
	return domain.Session{
		SessionID:               doc.ID,
		OpenedAt:                rec.OpenedAt,
		CalendarDate:            rec.CalendarDate,
		OpeningFloat:            rec.OpeningFloat,
		Status:                  domain.SessionStatus(rec.Status),
		TransactionCount:        rec.TransactionCount,
		TotalPurchasesLocal:     rec.TotalPurchasesLocal,
		TotalSalesLocal:         rec.TotalSalesLocal,
		ProjectedClosingBalance: rec.ProjectedClosingBalance,
		ClosedAt:                rec.ClosedAt,
		OpenedBy:                rec.OpenedBy,
		ClosedBy:                rec.ClosedBy,
	}, nil
}

// transactionRecord is the stored shape of a transaction.
type transactionRecord struct {
	SessionID     string          `json:"sessionId"`
	Kind          string          `json:"kind"`
	CurrencyCode  string          `json:"currencyCode"`
	ForeignAmount decimal.Decimal `json:"foreignAmount"`
	AppliedRate   decimal.Decimal `json:"appliedRate"`
	LocalAmount   decimal.Decimal `json:"localAmount"`
	ClientName    string          `json:"clientName"`
	ClientPhone   string          `json:"clientPhone,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

func toTransactionRecord(t domain.Transaction) transactionRecord {
	return transactionRecord{
		SessionID:     t.SessionID,
		Kind:          string(t.Kind),
		CurrencyCode:  t.CurrencyCode,
		ForeignAmount: t.ForeignAmount,
		AppliedRate:   t.AppliedRate,
		LocalAmount:   t.LocalAmount,
		ClientName:    t.ClientName,
		ClientPhone:   t.ClientPhone,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
	}
}

func decodeTransaction(doc portsrepo.Document) (domain.Transaction, error) {
	var rec transactionRecord
	if err := json.Unmarshal(doc.Data, &rec); err != nil {
		return domain.Transaction{}, fmt.Errorf("failed to decode transaction %s: %w", doc.ID, err)
	}
	return domain.Transaction{
		TransactionID: doc.ID,
		SessionID:     rec.SessionID,
		Kind:          domain.TransactionKind(rec.Kind),
		CurrencyCode:  rec.CurrencyCode,
		ForeignAmount: rec.ForeignAmount,
		AppliedRate:   rec.AppliedRate,
		LocalAmount:   rec.LocalAmount,
		ClientName:    rec.ClientName,
		ClientPhone:   rec.ClientPhone,
		CreatedAt:     rec.CreatedAt,
		CreatedBy:     rec.CreatedBy,
	}, nil
}

type preferenceRecord struct {
	Theme string `json:"theme"`
}
