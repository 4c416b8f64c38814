package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bureau_de_change/internal/apperrors"
	"github.com/SscSPs/bureau_de_change/internal/dto"
	"github.com/SscSPs/bureau_de_change/internal/middleware"
	"github.com/gin-gonic/gin"
)

var statusByKind = map[apperrors.Kind]int{
	apperrors.KindInvalidInput:      http.StatusBadRequest,
	apperrors.KindConflict:          http.StatusConflict,
	apperrors.KindNotFound:          http.StatusNotFound,
	apperrors.KindConnectionProblem: http.StatusServiceUnavailable,
	apperrors.KindUnauthorized:      http.StatusUnauthorized,
	apperrors.KindInternal:          http.StatusInternalServerError,
}

// handleServiceError writes the error response matching the kind of err.
// Client-side kinds carry the error text; server-side kinds only the generic message.
func handleServiceError(c *gin.Context, logger *slog.Logger, err error, action string) {
	kind := apperrors.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	msg := apperrors.UserMessage(kind)
	switch kind {
	case apperrors.KindInvalidInput, apperrors.KindConflict, apperrors.KindNotFound:
		logger.Warn(action+" rejected", slog.String("kind", string(kind)), slog.String("error", err.Error()))
		msg = err.Error()
	default:
		logger.Error(action+" failed", slog.String("kind", string(kind)), slog.String("error", err.Error()))
	}

	c.JSON(status, dto.ErrorResponse{Error: msg, Kind: string(kind)})
}

// respondBindError answers a request whose body or query failed binding.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request format: " + err.Error(),
		Kind:  string(apperrors.KindInvalidInput),
	})
}

// requireOperator reads the authenticated operator, answering 401 when it is missing.
func requireOperator(c *gin.Context, logger *slog.Logger) (string, bool) {
	operator, ok := middleware.GetOperatorFromContext(c)
	if !ok {
		logger.Error("Operator not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: apperrors.UserMessage(apperrors.KindUnauthorized),
			Kind:  string(apperrors.KindUnauthorized),
		})
		return "", false
	}
	return operator, true
}
