package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/bureau_de_change/internal/core/ports/services"
	"github.com/SscSPs/bureau_de_change/internal/dto"
	"github.com/SscSPs/bureau_de_change/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to exchange transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes addressing a transaction directly.
// Recording and listing live under the session routes.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.GET("/:transactionID/receipt", h.getReceipt)
	}
}

// recordTransaction godoc
// @Summary Record a purchase or sale
// @Description The applied rate is the currency's buy rate for a PURCHASE and its sell rate for a SALE.
// @Tags transactions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param transaction body dto.RecordTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or session not open"
// @Failure 404 {object} dto.ErrorResponse "Unknown session or currency"
// @Security BearerAuth
// @Router /sessions/{sessionID}/transactions [post]
func (h *transactionHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")

	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	operator, ok := requireOperator(c, logger)
	if !ok {
		return
	}
	logger = logger.With(
		slog.String("operator", operator),
		slog.String("session_id", sessionID),
		slog.String("currency_code", req.CurrencyCode),
	)

	txn, err := h.transactionService.RecordTransaction(c.Request.Context(), sessionID, req, operator)
	if err != nil {
		handleServiceError(c, logger, err, "Record transaction")
		return
	}

	logger.Info("Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(txn.Kind)),
		slog.String("local_amount", txn.LocalAmount.String()))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listSessionTransactions godoc
// @Summary List or search a session's transactions
// @Description q matches the client name, the currency code, or a substring of either amount. No match is an empty list.
// @Tags transactions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param q query string false "Search text"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /sessions/{sessionID}/transactions [get]
func (h *transactionHandler) listSessionTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")
	query := strings.TrimSpace(c.Query("q"))

	txns, err := h.transactionService.ListSessionTransactions(c.Request.Context(), sessionID, query)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("session_id", sessionID)), err, "List transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Query:        query,
		Transactions: dto.ToTransactionResponses(txns),
	})
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("transaction_id", transactionID)), err, "Get transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// getReceipt godoc
// @Summary Get the receipt of a transaction
// @Description Receipt data for printing: number, date, time, client, kind label and formatted amounts.
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} domain.Receipt
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{transactionID}/receipt [get]
func (h *transactionHandler) getReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	receipt, err := h.transactionService.GetReceipt(c.Request.Context(), transactionID)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("transaction_id", transactionID)), err, "Get receipt")
		return
	}
	c.JSON(http.StatusOK, receipt)
}
