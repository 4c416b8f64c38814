package dto

import (
	"time"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest defines one buy/sell entry entered at the counter.
// Kind accepts PURCHASE/SALE as well as ACHAT/VENTE.
type RecordTransactionRequest struct {
	Kind          string          `json:"kind" binding:"required"`
	CurrencyCode  string          `json:"currencyCode" binding:"required"`
	ForeignAmount decimal.Decimal `json:"foreignAmount" binding:"decimal_gt0"`
	ClientName    string          `json:"clientName" binding:"required"`
	ClientPhone   string          `json:"clientPhone"`
}

// TransactionResponse defines the data returned for a till transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	SessionID     string                 `json:"sessionID"`
	Kind          domain.TransactionKind `json:"kind"`
	CurrencyCode  string                 `json:"currencyCode"`
	ForeignAmount decimal.Decimal        `json:"foreignAmount"`
	AppliedRate   decimal.Decimal        `json:"appliedRate"`
	LocalAmount   decimal.Decimal        `json:"localAmount"`
	ClientName    string                 `json:"clientName"`
	ClientPhone   string                 `json:"clientPhone,omitempty"`
	ReceiptNumber string                 `json:"receiptNumber"`
	CreatedAt     time.Time              `json:"createdAt"`
	CreatedBy     string                 `json:"createdBy"`
}

// ListTransactionsResponse wraps a (possibly filtered) transaction list.
type ListTransactionsResponse struct {
	Query        string                `json:"query,omitempty"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		SessionID:     txn.SessionID,
		Kind:          txn.Kind,
		CurrencyCode:  txn.CurrencyCode,
		ForeignAmount: txn.ForeignAmount,
		AppliedRate:   txn.AppliedRate,
		LocalAmount:   txn.LocalAmount,
		ClientName:    txn.ClientName,
		ClientPhone:   txn.ClientPhone,
		ReceiptNumber: txn.ReceiptNumber(),
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
