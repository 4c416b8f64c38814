package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bureau_de_change/internal/adapters/reports"
	portssvc "github.com/SscSPs/bureau_de_change/internal/core/ports/services"
	"github.com/SscSPs/bureau_de_change/internal/dto"
	"github.com/SscSPs/bureau_de_change/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to session reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
	localSymbol      string
}

func newReportingHandler(rs portssvc.ReportingSvc, localSymbol string) *reportingHandler {
	return &reportingHandler{reportingService: rs, localSymbol: localSymbol}
}

// getSessionReport godoc
// @Summary Session report
// @Description Per-currency statistics and totals. For an open session these are the live figures.
// @Tags reports
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.ReportResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /sessions/{sessionID}/report [get]
func (h *reportingHandler) getSessionReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")

	report, err := h.reportingService.GetSessionReport(c.Request.Context(), sessionID)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("session_id", sessionID)), err, "Get session report")
		return
	}
	c.JSON(http.StatusOK, dto.ToReportResponse(report, h.localSymbol))
}

// exportSessionReport godoc
// @Summary Export the session report
// @Description Downloads the report as an XLSX workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param sessionID path string true "Session ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /sessions/{sessionID}/report/export [get]
func (h *reportingHandler) exportSessionReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")
	logger = logger.With(slog.String("session_id", sessionID))

	data, fileName, err := h.reportingService.ExportSessionReport(c.Request.Context(), sessionID)
	if err != nil {
		handleServiceError(c, logger, err, "Export session report")
		return
	}

	logger.Info("Session report exported", slog.String("file_name", fileName), slog.Int("bytes", len(data)))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, reports.ContentType, data)
}
