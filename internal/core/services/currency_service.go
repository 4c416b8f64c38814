package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	portsrepo "github.com/SscSPs/bureau_de_change/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bureau_de_change/internal/core/ports/services"
	"github.com/SscSPs/bureau_de_change/internal/dto"
)

// currencyService manages the rate table
type currencyService struct {
	BaseService
	currencyRepo    portsrepo.CurrencyRepositoryFacade
	transactionRepo portsrepo.TransactionReader
}

// NewCurrencyService creates a new rate table service
func NewCurrencyService(
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	transactionRepo portsrepo.TransactionReader,
	options ...ServiceOption,
) portssvc.CurrencySvcFacade {
	return &currencyService{
		BaseService:     newBaseService(options),
		currencyRepo:    currencyRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.CurrencyDefinition, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.CurrencyDefinition{}, nil
	}
	return currencies, nil
}

func (s *currencyService) GetCurrency(ctx context.Context, currencyCode string) (*domain.CurrencyDefinition, error) {
	code := domain.NormalizeCurrencyCode(currencyCode)
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %s: %w", code, err)
	}
	return currency, nil
}

func (s *currencyService) RateTable(ctx context.Context) (*domain.RateTable, error) {
	currencies, err := s.ListCurrencies(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewRateTable(currencies)
}

// AddCurrency adds a definition; an existing code is a conflict.
func (s *currencyService) AddCurrency(ctx context.Context, req dto.CreateCurrencyRequest, operator string) (*domain.CurrencyDefinition, error) {
	now := s.now()
	currency := domain.CurrencyDefinition{
		CurrencyCode: domain.NormalizeCurrencyCode(req.CurrencyCode),
		Name:         strings.TrimSpace(req.Name),
		Symbol:       strings.TrimSpace(req.Symbol),
		BuyRate:      req.BuyRate,
		SellRate:     req.SellRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operator,
			LastUpdatedAt: now,
			LastUpdatedBy: operator,
		},
	}
	if err := currency.Validate(); err != nil {
		return nil, err
	}

	table, err := s.RateTable(ctx)
	if err != nil {
		return nil, err
	}
	if err := table.Add(currency); err != nil {
		return nil, err
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to save currency", slog.String("currency", currency.CurrencyCode))
		return nil, fmt.Errorf("failed to add currency %s: %w", currency.CurrencyCode, err)
	}

	s.LogInfo(ctx, "Currency added",
		slog.String("currency", currency.CurrencyCode),
		slog.String("buy_rate", currency.BuyRate.String()),
		slog.String("sell_rate", currency.SellRate.String()))
	return &currency, nil
}

// UpdateCurrency replaces the definition of an existing code. Past transactions keep their rate.
func (s *currencyService) UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest, operator string) (*domain.CurrencyDefinition, error) {
	existing, err := s.GetCurrency(ctx, currencyCode)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Name = strings.TrimSpace(req.Name)
	updated.Symbol = strings.TrimSpace(req.Symbol)
	updated.BuyRate = req.BuyRate
	updated.SellRate = req.SellRate
	updated.LastUpdatedAt = s.now()
	updated.LastUpdatedBy = operator
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if err := s.currencyRepo.UpdateCurrency(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update currency", slog.String("currency", updated.CurrencyCode))
		return nil, fmt.Errorf("failed to update currency %s: %w", updated.CurrencyCode, err)
	}

	s.LogInfo(ctx, "Currency updated", slog.String("currency", updated.CurrencyCode))
	return &updated, nil
}

// RemoveCurrency deletes the code. Confirmation for codes in use is the caller's job.
func (s *currencyService) RemoveCurrency(ctx context.Context, currencyCode string) error {
	code := domain.NormalizeCurrencyCode(currencyCode)
	if err := s.currencyRepo.DeleteCurrency(ctx, code); err != nil {
		return fmt.Errorf("failed to remove currency %s: %w", code, err)
	}
	s.LogInfo(ctx, "Currency removed", slog.String("currency", code))
	return nil
}

func (s *currencyService) IsCurrencyReferenced(ctx context.Context, currencyCode string) (bool, error) {
	code := domain.NormalizeCurrencyCode(currencyCode)
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check currency usage: %w", err)
	}
	for _, txn := range txns {
		if txn.CurrencyCode == code {
			return true, nil
		}
	}
	return false, nil
}
