package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/bureau_de_change/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// wrapError classifies a driver error: unique violations become conflicts,
// everything else is a transport failure.
func (r *BaseRepository) wrapError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s: %s", apperrors.ErrConflict, op, pgErr.Detail)
	}
	return apperrors.NewTransportError(op, err)
}
