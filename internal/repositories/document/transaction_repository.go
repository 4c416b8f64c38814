package document

import (
	"context"
	"fmt"

	"github.com/SscSPs/bureau_de_change/internal/apperrors"
	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	portsrepo "github.com/SscSPs/bureau_de_change/internal/core/ports/repositories"
)

// TransactionRepository maps transactions onto the transactions collection.
// Filtering by session happens in memory after a full fetch.
type TransactionRepository struct {
	gateway portsrepo.DocumentGateway
}

func NewTransactionRepository(gateway portsrepo.DocumentGateway) *TransactionRepository {
	return &TransactionRepository{gateway: gateway}
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func (r *TransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	docs, err := r.gateway.ListAll(ctx, portsrepo.CollectionTransactions)
	if err != nil {
		return nil, err
	}
	txns := make([]domain.Transaction, 0, len(docs))
	for _, doc := range docs {
		t, err := decodeTransaction(doc)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, nil
}

func (r *TransactionRepository) ListTransactionsBySession(ctx context.Context, sessionID string) ([]domain.Transaction, error) {
	all, err := r.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	txns := make([]domain.Transaction, 0)
	for _, t := range all {
		if t.SessionID == sessionID {
			txns = append(txns, t)
		}
	}
	return txns, nil
}

func (r *TransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	all, err := r.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].TransactionID == transactionID {
			return &all[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %s", transactionID))
}

func (r *TransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (string, error) {
	return r.gateway.Create(ctx, portsrepo.CollectionTransactions, toTransactionRecord(txn))
}
