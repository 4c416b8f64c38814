package services

import (
	"context"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	"github.com/SscSPs/bureau_de_change/internal/dto"
)

// CurrencyReaderSvc defines read operations for the rate table
type CurrencyReaderSvc interface {
	// GetCurrency retrieves a specific currency by its code.
	GetCurrency(ctx context.Context, currencyCode string) (*domain.CurrencyDefinition, error)

	// ListCurrencies retrieves all configured currencies.
	ListCurrencies(ctx context.Context) ([]domain.CurrencyDefinition, error)

	// RateTable loads the current rate table.
	RateTable(ctx context.Context) (*domain.RateTable, error)

	// IsCurrencyReferenced reports whether any recorded transaction uses the code.
	IsCurrencyReferenced(ctx context.Context, currencyCode string) (bool, error)
}

// CurrencyWriterSvc defines write operations for the rate table
type CurrencyWriterSvc interface {
	AddCurrency(ctx context.Context, req dto.CreateCurrencyRequest, operator string) (*domain.CurrencyDefinition, error)
	UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest, operator string) (*domain.CurrencyDefinition, error)

	// RemoveCurrency deletes the code. It is never blocked by past transactions.
	RemoveCurrency(ctx context.Context, currencyCode string) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
