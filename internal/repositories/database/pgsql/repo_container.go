package pgsql

import (
	portsrepo "github.com/SscSPs/bureau_de_change/internal/core/ports/repositories"
	"github.com/SscSPs/bureau_de_change/internal/repositories/document"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the till repositories on a PostgreSQL pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return document.NewRepositoryProvider(NewPgxDocumentGateway(dbPool), NewPgxCurrencyRepository(dbPool))
}
