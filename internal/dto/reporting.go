package dto

import (
	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	"github.com/SscSPs/bureau_de_change/internal/utils"
	"github.com/shopspring/decimal"
)

// SideTotalsResponse is one side (purchases or sales) of a currency line.
type SideTotalsResponse struct {
	Count        int             `json:"count"`
	ForeignTotal decimal.Decimal `json:"foreignTotal"`
	LocalTotal   decimal.Decimal `json:"localTotal"`
}

// CurrencyBreakdownResponse represents a row of the per-currency statistics
type CurrencyBreakdownResponse struct {
	CurrencyCode string             `json:"currencyCode"`
	Purchases    SideTotalsResponse `json:"purchases"`
	Sales        SideTotalsResponse `json:"sales"`
}

// ReportResponse represents the session report.
// The *Display fields are rounded for presentation only.
type ReportResponse struct {
	SessionID                      string                      `json:"sessionID"`
	CalendarDate                   string                      `json:"calendarDate"`
	Status                         domain.SessionStatus        `json:"status"`
	OpeningFloat                   decimal.Decimal             `json:"openingFloat"`
	TransactionCount               int                         `json:"transactionCount"`
	TotalPurchasesLocal            decimal.Decimal             `json:"totalPurchasesLocal"`
	TotalSalesLocal                decimal.Decimal             `json:"totalSalesLocal"`
	Balance                        decimal.Decimal             `json:"balance"`
	ProjectedClosingBalance        decimal.Decimal             `json:"projectedClosingBalance"`
	Currencies                     []CurrencyBreakdownResponse `json:"currencies"`
	TotalPurchasesDisplay          string                      `json:"totalPurchasesDisplay"`
	TotalSalesDisplay              string                      `json:"totalSalesDisplay"`
	ProjectedClosingBalanceDisplay string                      `json:"projectedClosingBalanceDisplay"`
}

// ToReportResponse converts a domain.SessionReport to ReportResponse DTO.
// localSymbol is appended to the display strings.
func ToReportResponse(r *domain.SessionReport, localSymbol string) ReportResponse {
	currencies := make([]CurrencyBreakdownResponse, len(r.Currencies))
	for i, c := range r.Currencies {
		currencies[i] = CurrencyBreakdownResponse{
			CurrencyCode: c.CurrencyCode,
			Purchases:    SideTotalsResponse(c.Purchases),
			Sales:        SideTotalsResponse(c.Sales),
		}
	}
	return ReportResponse{
		SessionID:                      r.SessionID,
		CalendarDate:                   r.CalendarDate,
		Status:                         r.Status,
		OpeningFloat:                   r.OpeningFloat,
		TransactionCount:               r.TransactionCount,
		TotalPurchasesLocal:            r.TotalPurchasesLocal,
		TotalSalesLocal:                r.TotalSalesLocal,
		Balance:                        r.Balance,
		ProjectedClosingBalance:        r.ProjectedClosingBalance,
		Currencies:                     currencies,
		TotalPurchasesDisplay:          utils.FormatAmount(r.TotalPurchasesLocal, localSymbol),
		TotalSalesDisplay:              utils.FormatAmount(r.TotalSalesLocal, localSymbol),
		ProjectedClosingBalanceDisplay: utils.FormatAmount(r.ProjectedClosingBalance, localSymbol),
	}
}
