package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bureau_de_change/internal/apperrors"
	portssvc "github.com/SscSPs/bureau_de_change/internal/core/ports/services"
	"github.com/SscSPs/bureau_de_change/internal/dto"
	"github.com/SscSPs/bureau_de_change/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles operator authentication.
type authHandler struct {
	authService portssvc.AuthSvc
}

func newAuthHandler(as portssvc.AuthSvc) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public login route behind the login limiter.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvc, loginLimiter *limiter.Limiter) {
	h := newAuthHandler(authService)

	auth := r.Group("/api/v1/auth")
	if loginLimiter != nil {
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
		return
	}
	auth.POST("/login", h.login)
}

// login godoc
// @Summary Operator login
// @Description Authenticates the till operator and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	token, expiresAt, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindUnauthorized {
			logger.Warn("Login rejected", slog.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid username or password",
				Kind:  string(apperrors.KindUnauthorized),
			})
			return
		}
		handleServiceError(c, logger, err, "Login")
		return
	}

	logger.Info("Operator logged in", slog.String("username", req.Username))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}
