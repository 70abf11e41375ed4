package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/fintrackhq/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for derived summaries.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reporting.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/monthly", h.monthlySummary)
		reports.GET("/categories", h.categoryBreakdown)
	}
}

// monthlySummary godoc
// @Summary Monthly summary
// @Description Groups the authenticated user's transactions by calendar month with income, expense and net sums
// @Tags reports
// @Produce json
// @Success 200 {array} dto.MonthlySummaryResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) monthlySummary(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rows, err := h.reportingService.MonthlySummary(c.Request.Context(), userID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to build monthly summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build monthly summary"})
		return
	}

	c.JSON(http.StatusOK, dto.MonthlySummaryResponse{Months: rows})
}

// categoryBreakdown godoc
// @Summary Category breakdown
// @Description Groups the authenticated user's transactions of one kind by category with sums, counts and percentage shares
// @Tags reports
// @Produce json
// @Param kind query string true "Transaction kind (income|expense)"
// @Success 200 {array} dto.CategoryBreakdownResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/categories [get]
func (h *reportingHandler) categoryBreakdown(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	kind := domain.TransactionKind(c.Query("kind"))
	if kind != domain.Income && kind != domain.Expense {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "kind must be income or expense"})
		return
	}

	rows, err := h.reportingService.CategoryBreakdown(c.Request.Context(), userID, kind)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to build category breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build category breakdown"})
		return
	}

	c.JSON(http.StatusOK, dto.CategoryBreakdownResponse{Kind: string(kind), Categories: rows})
}
