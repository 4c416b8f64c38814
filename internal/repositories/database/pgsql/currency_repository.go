package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bureau_de_change/internal/apperrors"
	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	portsrepo "github.com/SscSPs/bureau_de_change/internal/core/ports/repositories"
	"github.com/SscSPs/bureau_de_change/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const currencyColumns = `seq, currency_code, name, symbol, buy_rate, sell_rate, created_at, created_by, last_updated_at, last_updated_by`

type PgxCurrencyRepository struct {
	BaseRepository
}

// NewPgxCurrencyRepository creates a new repository for the rate table.
func NewPgxCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// SaveCurrency inserts a new currency. An existing code is a conflict.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.CurrencyDefinition) error {
	query := `
		INSERT INTO currencies (currency_code, name, symbol, buy_rate, sell_rate, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		currency.CurrencyCode,
		currency.Name,
		currency.Symbol,
		currency.BuyRate,
		currency.SellRate,
		currency.CreatedAt,
		currency.CreatedBy,
		currency.LastUpdatedAt,
		currency.LastUpdatedBy,
	)
	if err != nil {
		return r.wrapError("save currency "+currency.CurrencyCode, err)
	}
	return nil
}

func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.CurrencyDefinition) error {
	query := `
		UPDATE currencies
		SET name = $2, symbol = $3, buy_rate = $4, sell_rate = $5, last_updated_at = $6, last_updated_by = $7
		WHERE currency_code = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		currency.CurrencyCode,
		currency.Name,
		currency.Symbol,
		currency.BuyRate,
		currency.SellRate,
		currency.LastUpdatedAt,
		currency.LastUpdatedBy,
	)
	if err != nil {
		return r.wrapError("update currency "+currency.CurrencyCode, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("currency " + currency.CurrencyCode)
	}
	return nil
}

func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, currencyCode string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM currencies WHERE currency_code = $1;`, currencyCode)
	if err != nil {
		return r.wrapError("delete currency "+currencyCode, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("currency " + currencyCode)
	}
	return nil
}

// FindCurrencyByCode retrieves a currency by its code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyDefinition, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE currency_code = $1;`

	row, err := scanCurrency(r.Pool.QueryRow(ctx, query, currencyCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("currency %s", currencyCode))
		}
		return nil, r.wrapError("find currency "+currencyCode, err)
	}

	currency := toDomainCurrency(row)
	return &currency, nil
}

// ListCurrencies retrieves all currencies in insertion order.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.CurrencyDefinition, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies ORDER BY seq;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, r.wrapError("list currencies", err)
	}
	defer rows.Close()

	rowModels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, r.wrapError("scan currencies", err)
	}

	currencies := make([]domain.CurrencyDefinition, len(rowModels))
	for i, m := range rowModels {
		currencies[i] = toDomainCurrency(m)
	}
	return currencies, nil
}

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var c models.Currency
	err := row.Scan(
		&c.Seq,
		&c.CurrencyCode,
		&c.Name,
		&c.Symbol,
		&c.BuyRate,
		&c.SellRate,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

func toDomainCurrency(m models.Currency) domain.CurrencyDefinition {
	return domain.CurrencyDefinition{
		CurrencyCode: m.CurrencyCode,
		Name:         m.Name,
		Symbol:       m.Symbol,
		BuyRate:      m.BuyRate,
		SellRate:     m.SellRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}
