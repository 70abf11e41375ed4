package dto

import "github.com/fintrackhq/fintrack_backend/internal/core/domain"

// MonthlySummaryResponse wraps the per-month aggregation rows.
type MonthlySummaryResponse struct {
	Months []domain.MonthlySummaryRow `json:"months"`
}

// CategoryBreakdownResponse wraps the per-category aggregation rows for one kind.
type CategoryBreakdownResponse struct {
	Kind       string                      `json:"kind"`
	Categories []domain.CategorySummaryRow `json:"categories"`
}
