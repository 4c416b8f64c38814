package dto

import (
	"time"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenSessionRequest defines the data needed to open the till for the day.
type OpenSessionRequest struct {
	OpeningFloat decimal.Decimal `json:"openingFloat" binding:"decimal_gt0"`
}

// SessionResponse defines the data returned for a till session.
type SessionResponse struct {
	SessionID               string               `json:"sessionID"`
	CalendarDate            string               `json:"calendarDate"`
	Status                  domain.SessionStatus `json:"status"`
	OpeningFloat            decimal.Decimal      `json:"openingFloat"`
	TransactionCount        int                  `json:"transactionCount"`
	TotalPurchasesLocal     decimal.Decimal      `json:"totalPurchasesLocal"`
	TotalSalesLocal         decimal.Decimal      `json:"totalSalesLocal"`
	ProjectedClosingBalance decimal.Decimal      `json:"projectedClosingBalance"`
	OpenedAt                time.Time            `json:"openedAt"`
	OpenedBy                string               `json:"openedBy"`
	ClosedAt                *time.Time           `json:"closedAt,omitempty"`
	ClosedBy                string               `json:"closedBy,omitempty"`
}

// CloseSessionResponse is returned when the till is closed.
// ReportLocation is empty when the closing report could not be archived.
type CloseSessionResponse struct {
	Session        SessionResponse `json:"session"`
	Report         ReportResponse  `json:"report"`
	ReportLocation string          `json:"reportLocation"`
}

// ToSessionResponse converts a domain.Session to SessionResponse DTO
func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		SessionID:               s.SessionID,
		CalendarDate:            s.CalendarDate,
		Status:                  s.Status,
		OpeningFloat:            s.OpeningFloat,
		TransactionCount:        s.TransactionCount,
		TotalPurchasesLocal:     s.TotalPurchasesLocal,
		TotalSalesLocal:         s.TotalSalesLocal,
		ProjectedClosingBalance: s.ProjectedClosingBalance,
		OpenedAt:                s.OpenedAt,
		OpenedBy:                s.OpenedBy,
		ClosedAt:                s.ClosedAt,
		ClosedBy:                s.ClosedBy,
	}
}

// ToListSessionResponse converts a slice of domain.Session to SessionResponse DTOs
func ToListSessionResponse(sessions []domain.Session) []SessionResponse {
	res := make([]SessionResponse, len(sessions))
	for i := range sessions {
		res[i] = ToSessionResponse(&sessions[i])
	}
	return res
}
