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

// familyHandler handles HTTP requests related to family view-sharing grants.
type familyHandler struct {
	familyService portssvc.FamilySvcFacade
}

// newFamilyHandler creates a new familyHandler.
func newFamilyHandler(fs portssvc.FamilySvcFacade) *familyHandler {
	return &familyHandler{familyService: fs}
}

// registerFamilyRoutes registers routes related to family grants.
func registerFamilyRoutes(rg *gin.RouterGroup, familyService portssvc.FamilySvcFacade) {
	h := newFamilyHandler(familyService)

	family := rg.Group("/family/grants")
	{
		family.POST("", h.createGrant)
		family.GET("", h.listGrants)
		family.PUT("/:id", h.updateGrant)
		family.DELETE("/:id", h.deleteGrant)
	}
}

// createGrant godoc
// @Summary Issue a family view grant
// @Description Grants a family member's email read-only view access to the authenticated user's records
// @Tags family
// @Accept json
// @Produce json
// @Param grant body dto.CreateFamilyGrantRequest true "Grant details"
// @Success 201 {object} dto.FamilyGrantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Grant for this email already exists"
// @Security BearerAuth
// @Router /family/grants [post]
func (h *familyHandler) createGrant(c *gin.Context) {
	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateFamilyGrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	grant, err := h.familyService.CreateGrant(c.Request.Context(), ownerUserID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "A grant for this email already exists"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to create grant", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create grant"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToFamilyGrantResponse(grant))
}

// listGrants godoc
// @Summary List family grants
// @Description Retrieves all view grants the authenticated user has issued
// @Tags family
// @Produce json
// @Success 200 {array} dto.FamilyGrantResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /family/grants [get]
func (h *familyHandler) listGrants(c *gin.Context) {
	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	grants, err := h.familyService.ListGrants(c.Request.Context(), ownerUserID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list grants", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list grants"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListFamilyGrantResponse(grants))
}

// updateGrant godoc
// @Summary Update a family grant
// @Description Toggles the active flag of one of the authenticated user's grants
// @Tags family
// @Accept json
// @Produce json
// @Param id path string true "Grant ID"
// @Param grant body dto.UpdateFamilyGrantRequest true "Fields to update"
// @Success 200 {object} dto.FamilyGrantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /family/grants/{id} [put]
func (h *familyHandler) updateGrant(c *gin.Context) {
	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateFamilyGrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	grant, err := h.familyService.UpdateGrant(c.Request.Context(), ownerUserID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Grant not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to update grant", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update grant"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFamilyGrantResponse(grant))
}

// deleteGrant godoc
// @Summary Delete a family grant
// @Description Removes one of the authenticated user's grants
// @Tags family
// @Produce json
// @Param id path string true "Grant ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /family/grants/{id} [delete]
func (h *familyHandler) deleteGrant(c *gin.Context) {
	ownerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.familyService.DeleteGrant(c.Request.Context(), ownerUserID, c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Grant not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete grant", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete grant"})
		return
	}

	c.Status(http.StatusNoContent)
}
