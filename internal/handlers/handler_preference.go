package handlers

import (
	"net/http"

	"github.com/SscSPs/bureau_de_change/internal/core/domain"
	portssvc "github.com/SscSPs/bureau_de_change/internal/core/ports/services"
	"github.com/SscSPs/bureau_de_change/internal/dto"
	"github.com/SscSPs/bureau_de_change/internal/middleware"
	"github.com/gin-gonic/gin"
)

type preferenceHandler struct {
	preferenceService portssvc.PreferenceSvc
}

func registerPreferenceRoutes(rg *gin.RouterGroup, preferenceService portssvc.PreferenceSvc) {
	h := &preferenceHandler{preferenceService: preferenceService}

	preferences := rg.Group("/preferences")
	{
		preferences.GET("", h.getPreferences)
		preferences.PUT("/theme", h.setTheme)
	}
}

// getPreferences godoc
// @Summary Get display preferences
// @Tags preferences
// @Produce json
// @Success 200 {object} dto.PreferencesResponse
// @Security BearerAuth
// @Router /preferences [get]
func (h *preferenceHandler) getPreferences(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	theme, err := h.preferenceService.GetTheme(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "Get preferences")
		return
	}
	c.JSON(http.StatusOK, dto.PreferencesResponse{Theme: string(theme)})
}

// setTheme godoc
// @Summary Set the theme
// @Tags preferences
// @Accept json
// @Produce json
// @Param theme body dto.ThemeRequest true "light or dark"
// @Success 200 {object} dto.PreferencesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /preferences/theme [put]
func (h *preferenceHandler) setTheme(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	mode := domain.ThemeMode(req.Theme)
	if err := h.preferenceService.SetTheme(c.Request.Context(), mode); err != nil {
		handleServiceError(c, logger, err, "Set theme")
		return
	}
	c.JSON(http.StatusOK, dto.PreferencesResponse{Theme: string(mode)})
}
