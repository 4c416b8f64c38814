package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bureau_de_change/internal/apperrors"
	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	portsrepo "github.com/SscSPs/bureau_de_change/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bureau_de_change/internal/core/ports/services"
	"github.com/SscSPs/bureau_de_change/internal/dto"
	"github.com/SscSPs/bureau_de_change/internal/utils"
	"github.com/SscSPs/bureau_de_change/internal/utils/accounting"
)

const (
	receiptDateLayout = "02/01/2006"
	receiptTimeLayout = "15:04"
)

var receiptKindLabels = map[domain.TransactionKind]string{
	domain.Purchase: "ACHAT",
	domain.Sale:     "VENTE",
}

// transactionService records buy/sell entries against the rate table
type transactionService struct {
	BaseService
	sessionRepo     portsrepo.SessionReader
	transactionRepo portsrepo.TransactionRepositoryFacade
	currencyRepo    portsrepo.CurrencyReader
}

// NewTransactionService creates a new transaction recorder
func NewTransactionService(
	sessionRepo portsrepo.SessionReader,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	currencyRepo portsrepo.CurrencyReader,
	options ...ServiceOption,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService:     newBaseService(options),
		sessionRepo:     sessionRepo,
		transactionRepo: transactionRepo,
		currencyRepo:    currencyRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// RecordTransaction validates the entry, snapshots the applicable rate and persists it.
func (s *transactionService) RecordTransaction(ctx context.Context, sessionID string, req dto.RecordTransactionRequest, operator string) (*domain.Transaction, error) {
	kind, err := domain.ParseTransactionKind(req.Kind)
	if err != nil {
		return nil, err
	}
	if !req.ForeignAmount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be greater than zero")
	}
	clientName := strings.TrimSpace(req.ClientName)
	if clientName == "" {
		return nil, apperrors.NewValidationError("client name is required")
	}

	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}
	if !session.IsOpen() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("session %s is not open", sessionID))
	}

	code := domain.NormalizeCurrencyCode(req.CurrencyCode)
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	rate := currency.RateFor(kind)
	txn := domain.Transaction{
		SessionID:     session.SessionID,
		Kind:          kind,
		CurrencyCode:  currency.CurrencyCode,
		ForeignAmount: req.ForeignAmount,
		AppliedRate:   rate,
		LocalAmount:   accounting.LocalAmount(req.ForeignAmount, rate),
		ClientName:    clientName,
		ClientPhone:   strings.TrimSpace(req.ClientPhone),
		CreatedAt:     s.now(),
		CreatedBy:     operator,
	}

	id, err := s.transactionRepo.CreateTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to persist transaction", slog.String("session_id", sessionID))
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}
	txn.TransactionID = id

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", id),
		slog.String("session_id", sessionID),
		slog.String("kind", string(kind)),
		slog.String("currency", txn.CurrencyCode),
		slog.String("local_amount", txn.LocalAmount.String()))
	return &txn, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListSessionTransactions returns the session's transactions matching query in creation order.
func (s *transactionService) ListSessionTransactions(ctx context.Context, sessionID, query string) ([]domain.Transaction, error) {
	if _, err := s.sessionRepo.FindSessionByID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	txns, err := s.transactionRepo.ListTransactionsBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return accounting.FilterTransactions(txns, query), nil
}

// GetReceipt builds the receipt of a transaction. Amounts and rate come from the
// transaction itself; only the display symbol is looked up.
func (s *transactionService) GetReceipt(ctx context.Context, transactionID string) (*domain.Receipt, error) {
	txn, err := s.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build receipt: %w", err)
	}
	table, err := domain.NewRateTable(currencies)
	if err != nil {
		return nil, fmt.Errorf("failed to build receipt: %w", err)
	}
	if _, ok := table.Lookup(txn.CurrencyCode); !ok {
		s.LogDebug(ctx, "Receipt currency no longer in rate table", slog.String("currency", txn.CurrencyCode))
	}
	symbol := table.Symbol(txn.CurrencyCode)

	issued := txn.CreatedAt.In(s.location)
	return &domain.Receipt{
		Number:         txn.ReceiptNumber(),
		TransactionID:  txn.TransactionID,
		Kind:           txn.Kind,
		KindLabel:      receiptKindLabels[txn.Kind],
		Date:           issued.Format(receiptDateLayout),
		Time:           issued.Format(receiptTimeLayout),
		IssuedAt:       txn.CreatedAt,
		ClientName:     txn.ClientName,
		ClientPhone:    txn.ClientPhone,
		CurrencyCode:   txn.CurrencyCode,
		CurrencySymbol: symbol,
		ForeignAmount:  txn.ForeignAmount,
		AppliedRate:    txn.AppliedRate,
		LocalAmount:    txn.LocalAmount,
		ForeignDisplay: utils.FormatAmount(txn.ForeignAmount, symbol),
		LocalDisplay:   utils.FormatAmount(txn.LocalAmount, s.localCurrencySymbol),
	}, nil
}
