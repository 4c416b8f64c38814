package repositories

import (
	"context"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
)

// CurrencyReader defines read operations for the rate table
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency definition by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyDefinition, error)

	// ListCurrencies retrieves all currency definitions in insertion order.
	ListCurrencies(ctx context.Context) ([]domain.CurrencyDefinition, error)
}

// CurrencyWriter defines write operations for the rate table
type CurrencyWriter interface {
	// SaveCurrency persists a new currency definition; a duplicate code is apperrors.ErrConflict.
	SaveCurrency(ctx context.Context, currency domain.CurrencyDefinition) error

	// UpdateCurrency replaces an existing definition; a missing code is apperrors.ErrNotFound.
	UpdateCurrency(ctx context.Context, currency domain.CurrencyDefinition) error

	// DeleteCurrency removes a definition; a missing code is apperrors.ErrNotFound.
	DeleteCurrency(ctx context.Context, currencyCode string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
