package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/fintrackhq/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// preferencesHandler handles HTTP requests related to user preferences.
type preferencesHandler struct {
	prefsService portssvc.PreferencesSvcFacade
}

// newPreferencesHandler creates a new preferencesHandler.
func newPreferencesHandler(ps portssvc.PreferencesSvcFacade) *preferencesHandler {
	return &preferencesHandler{prefsService: ps}
}

// registerPreferencesRoutes registers routes related to preferences.
func registerPreferencesRoutes(rg *gin.RouterGroup, prefsService portssvc.PreferencesSvcFacade) {
	h := newPreferencesHandler(prefsService)

	prefs := rg.Group("/preferences")
	{
		prefs.GET("", h.getPreferences)
		prefs.PUT("", h.updatePreferences)
	}
}

// getPreferences godoc
// @Summary Get preferences
// @Description Retrieves the authenticated user's preferences, creating them with defaults on first access
// @Tags preferences
// @Produce json
// @Success 200 {object} dto.PreferencesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /preferences [get]
func (h *preferencesHandler) getPreferences(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	prefs, err := h.prefsService.GetOrCreatePreferences(c.Request.Context(), userID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get preferences", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve preferences"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferencesResponse(prefs))
}

// updatePreferences godoc
// @Summary Update preferences
// @Description Updates the authenticated user's display currency, theme or exchange rate
// @Tags preferences
// @Accept json
// @Produce json
// @Param preferences body dto.UpdatePreferencesRequest true "Fields to update"
// @Success 200 {object} dto.PreferencesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /preferences [put]
func (h *preferencesHandler) updatePreferences(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	prefs, err := h.prefsService.UpdatePreferences(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to update preferences", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update preferences"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferencesResponse(prefs))
}
