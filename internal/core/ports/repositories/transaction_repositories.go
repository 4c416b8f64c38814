package repositories

import (
	"context"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
)

// TransactionReader defines read operations for till transactions
type TransactionReader interface {
	// ListTransactions returns every persisted transaction.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsBySession returns the transactions of one session in creation order.
	ListTransactionsBySession(ctx context.Context, sessionID string) ([]domain.Transaction, error)

	// FindTransactionByID returns the transaction or apperrors.ErrNotFound.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for till transactions.
// Transactions are immutable, so there is no update.
type TransactionWriter interface {
	// CreateTransaction persists a transaction and returns its generated id.
	CreateTransaction(ctx context.Context, txn domain.Transaction) (string, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
