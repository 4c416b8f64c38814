package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/bureau_de_change/internal/apperrors"
	portssvc "github.com/SscSPs/bureau_de_change/internal/core/ports/services"
	"github.com/SscSPs/bureau_de_change/internal/dto"
	"github.com/SscSPs/bureau_de_change/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to the rate table.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: cs}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", h.createCurrency)
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
		currencies.PUT("/:code", h.updateCurrency)
		currencies.DELETE("/:code", h.removeCurrency)
	}
}

// createCurrency godoc
// @Summary Add a currency
// @Description Adds a currency with its buy and sell rates to the rate table
// @Tags currencies
// @Accept json
// @Produce json
// @Param currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Currency code already exists"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	operator, ok := requireOperator(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("operator", operator), slog.String("currency_code", req.CurrencyCode))

	created, err := h.currencyService.AddCurrency(c.Request.Context(), req, operator)
	if err != nil {
		handleServiceError(c, logger, err, "Add currency")
		return
	}

	logger.Info("Currency added")
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(created))
}

// listCurrencies godoc
// @Summary List the rate table
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "List currencies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Tags currencies
// @Produce json
// @Param code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} dto.ErrorResponse "Currency not found"
// @Security BearerAuth
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := strings.ToUpper(c.Param("code"))

	currency, err := h.currencyService.GetCurrency(c.Request.Context(), code)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("currency_code", code)), err, "Get currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Replaces name, symbol and rates. Past transactions keep the rate they were recorded with.
// @Tags currencies
// @Accept json
// @Produce json
// @Param code path string true "Currency Code"
// @Param currency body dto.UpdateCurrencyRequest true "New values"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Currency not found"
// @Security BearerAuth
// @Router /currencies/{code} [put]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := strings.ToUpper(c.Param("code"))

	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	operator, ok := requireOperator(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("operator", operator), slog.String("currency_code", code))

	updated, err := h.currencyService.UpdateCurrency(c.Request.Context(), code, req, operator)
	if err != nil {
		handleServiceError(c, logger, err, "Update currency")
		return
	}

	logger.Info("Currency updated")
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(updated))
}

// removeCurrency godoc
// @Summary Remove a currency
// @Description A code used by recorded transactions needs confirm=true; otherwise the answer is 409 with requiresConfirmation.
// @Tags currencies
// @Produce json
// @Param code path string true "Currency Code"
// @Param confirm query bool false "Confirm removal of a code used by past transactions"
// @Success 204 "Removed"
// @Failure 404 {object} dto.ErrorResponse "Currency not found"
// @Failure 409 {object} dto.RemoveCurrencyConfirmationResponse "Confirmation required"
// @Security BearerAuth
// @Router /currencies/{code} [delete]
func (h *currencyHandler) removeCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := strings.ToUpper(c.Param("code"))
	logger = logger.With(slog.String("currency_code", code))

	if c.Query("confirm") != "true" {
		referenced, err := h.currencyService.IsCurrencyReferenced(c.Request.Context(), code)
		if err != nil {
			handleServiceError(c, logger, err, "Check currency usage")
			return
		}
		if referenced {
			logger.Info("Currency removal needs confirmation")
			c.JSON(http.StatusConflict, dto.RemoveCurrencyConfirmationResponse{
				Error:                "Currency " + code + " is used by recorded transactions; repeat with confirm=true to remove it",
				Kind:                 string(apperrors.KindConflict),
				CurrencyCode:         code,
				RequiresConfirmation: true,
			})
			return
		}
	}

	if err := h.currencyService.RemoveCurrency(c.Request.Context(), code); err != nil {
		handleServiceError(c, logger, err, "Remove currency")
		return
	}

	logger.Info("Currency removed")
	c.Status(http.StatusNoContent)
}
