package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bureau_de_change/internal/core/ports/services"
	"github.com/SscSPs/bureau_de_change/internal/dto"
	"github.com/SscSPs/bureau_de_change/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sessionHandler handles HTTP requests related to the till session.
type sessionHandler struct {
	sessionService portssvc.SessionSvcFacade
	localSymbol    string
}

func newSessionHandler(ss portssvc.SessionSvcFacade, localSymbol string) *sessionHandler {
	return &sessionHandler{sessionService: ss, localSymbol: localSymbol}
}

// registerSessionRoutes registers the session lifecycle routes and the routes nested under a session.
func registerSessionRoutes(
	rg *gin.RouterGroup,
	sessionService portssvc.SessionSvcFacade,
	transactionService portssvc.TransactionSvcFacade,
	reportingService portssvc.ReportingSvc,
	localSymbol string,
) {
	h := newSessionHandler(sessionService, localSymbol)
	th := newTransactionHandler(transactionService)
	rh := newReportingHandler(reportingService, localSymbol)

	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.openSession)
		sessions.GET("", h.listSessions)
		sessions.GET("/active", h.getActiveSession)

		session := sessions.Group("/:sessionID")
		{
			session.GET("", h.getSession)
			session.POST("/close", h.closeSession)

			session.POST("/transactions", th.recordTransaction)
			session.GET("/transactions", th.listSessionTransactions)

			session.GET("/report", rh.getSessionReport)
			session.GET("/report/export", rh.exportSessionReport)
		}
	}
}

// openSession godoc
// @Summary Open the till
// @Description Opens today's session with the declared opening float. Only one session per calendar day.
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body dto.OpenSessionRequest true "Opening float"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid opening float"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "A session is already open today"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /sessions [post]
func (h *sessionHandler) openSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	operator, ok := requireOperator(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("operator", operator))

	session, err := h.sessionService.OpenSession(c.Request.Context(), req, operator)
	if err != nil {
		handleServiceError(c, logger, err, "Open session")
		return
	}

	logger.Info("Session opened", slog.String("session_id", session.SessionID))
	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

// getActiveSession godoc
// @Summary Get the active session
// @Description Returns the session open for today's calendar date
// @Tags sessions
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse "The till is not open"
// @Security BearerAuth
// @Router /sessions/active [get]
func (h *sessionHandler) getActiveSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	session, err := h.sessionService.GetActiveSession(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "Get active session")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// getSession godoc
// @Summary Get a session
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /sessions/{sessionID} [get]
func (h *sessionHandler) getSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")

	session, err := h.sessionService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("session_id", sessionID)), err, "Get session")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// listSessions godoc
// @Summary List sessions
// @Description Session history, newest first
// @Tags sessions
// @Produce json
// @Success 200 {array} dto.SessionResponse
// @Security BearerAuth
// @Router /sessions [get]
func (h *sessionHandler) listSessions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sessions, err := h.sessionService.ListSessions(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "List sessions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSessionResponse(sessions))
}

// closeSession godoc
// @Summary Close the till
// @Description Reconciles the session, closes it and publishes the closing report.
// @Description reportLocation is empty when the report could not be archived.
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.CloseSessionResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session already closed"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /sessions/{sessionID}/close [post]
func (h *sessionHandler) closeSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")

	operator, ok := requireOperator(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("operator", operator), slog.String("session_id", sessionID))

	closure, err := h.sessionService.CloseSession(c.Request.Context(), sessionID, operator)
	if err != nil {
		handleServiceError(c, logger, err, "Close session")
		return
	}

	logger.Info("Session closed",
		slog.String("projected_closing_balance", closure.Session.ProjectedClosingBalance.String()),
		slog.String("report_location", closure.ReportLocation))
	c.JSON(http.StatusOK, dto.CloseSessionResponse{
		Session:        dto.ToSessionResponse(&closure.Session),
		Report:         dto.ToReportResponse(&closure.Report, h.localSymbol),
		ReportLocation: closure.ReportLocation,
	})
}
