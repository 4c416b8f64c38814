package services

import (
	"context"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	"github.com/SscSPs/bureau_de_change/internal/dto"
)

// TransactionReaderSvc defines read operations on till transactions
type TransactionReaderSvc interface {
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListSessionTransactions returns the session's transactions matching query.
	// An empty query returns all of them; no match is an empty list.
	ListSessionTransactions(ctx context.Context, sessionID, query string) ([]domain.Transaction, error)

	// GetReceipt builds the receipt data for a transaction.
	GetReceipt(ctx context.Context, transactionID string) (*domain.Receipt, error)
}

// TransactionWriterSvc records new entries. There is no update or delete.
type TransactionWriterSvc interface {
	RecordTransaction(ctx context.Context, sessionID string, req dto.RecordTransactionRequest, operator string) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
