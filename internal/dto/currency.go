package dto

import (
	"time"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrencyRequest defines the data needed to add a currency to the rate table.
type CreateCurrencyRequest struct {
	CurrencyCode string          `json:"currencyCode" binding:"required,currency_code"`
	Name         string          `json:"name" binding:"required"`
	Symbol       string          `json:"symbol" binding:"required"`
	BuyRate      decimal.Decimal `json:"buyRate" binding:"decimal_gt0"`
	SellRate     decimal.Decimal `json:"sellRate" binding:"decimal_gt0"`
}

// UpdateCurrencyRequest replaces the rates and labels of an existing code.
type UpdateCurrencyRequest struct {
	Name     string          `json:"name" binding:"required"`
	Symbol   string          `json:"symbol" binding:"required"`
	BuyRate  decimal.Decimal `json:"buyRate" binding:"decimal_gt0"`
	SellRate decimal.Decimal `json:"sellRate" binding:"decimal_gt0"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode  string          `json:"currencyCode"`
	Name          string          `json:"name"`
	Symbol        string          `json:"symbol"`
	BuyRate       decimal.Decimal `json:"buyRate"`
	SellRate      decimal.Decimal `json:"sellRate"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// RemoveCurrencyConfirmationResponse is returned when removing a code still used by transactions.
type RemoveCurrencyConfirmationResponse struct {
	Error                string `json:"error"`
	Kind                 string `json:"kind"`
	CurrencyCode         string `json:"currencyCode"`
	RequiresConfirmation bool   `json:"requiresConfirmation"`
}

// ToCurrencyResponse converts a domain.CurrencyDefinition to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.CurrencyDefinition) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:  curr.CurrencyCode,
		Name:          curr.Name,
		Symbol:        curr.Symbol,
		BuyRate:       curr.BuyRate,
		SellRate:      curr.SellRate,
		CreatedAt:     curr.CreatedAt,
		CreatedBy:     curr.CreatedBy,
		LastUpdatedAt: curr.LastUpdatedAt,
		LastUpdatedBy: curr.LastUpdatedBy,
	}
}

// ToListCurrencyResponse converts a slice of domain.CurrencyDefinition to CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.CurrencyDefinition) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
