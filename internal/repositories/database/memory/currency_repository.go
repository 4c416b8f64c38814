package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/bureau_de_change/internal/apperrors"
	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	portsrepo "github.com/SscSPs/bureau_de_change/internal/core/ports/repositories"
)

// CurrencyRepository keeps the rate table in process, in insertion order.
type CurrencyRepository struct {
	mu    sync.RWMutex
	table *domain.RateTable
}

// NewCurrencyRepository creates a repository holding the given definitions.
func NewCurrencyRepository(definitions []domain.CurrencyDefinition) (*CurrencyRepository, error) {
	table, err := domain.NewRateTable(definitions)
	if err != nil {
		return nil, err
	}
	return &CurrencyRepository{table: table}, nil
}

var _ portsrepo.CurrencyRepositoryFacade = (*CurrencyRepository)(nil)

func (r *CurrencyRepository) FindCurrencyByCode(_ context.Context, currencyCode string) (*domain.CurrencyDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.table.Lookup(currencyCode)
	if !ok {
		return nil, apperrors.NewNotFoundError("currency " + currencyCode)
	}
	return &def, nil
}

func (r *CurrencyRepository) ListCurrencies(_ context.Context) ([]domain.CurrencyDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.table.Definitions(), nil
}

func (r *CurrencyRepository) SaveCurrency(_ context.Context, currency domain.CurrencyDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.table.Add(currency)
}

func (r *CurrencyRepository) UpdateCurrency(_ context.Context, currency domain.CurrencyDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.table.Update(currency)
}

func (r *CurrencyRepository) DeleteCurrency(_ context.Context, currencyCode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.table.Remove(currencyCode) {
		return apperrors.NewNotFoundError("currency " + currencyCode)
	}
	return nil
}
