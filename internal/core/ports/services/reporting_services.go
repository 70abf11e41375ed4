package services

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
)

// ReportingSvcFacade derives read-only summaries from a user's transactions.
// Both reports are deterministic and idempotent over the same input list.
type ReportingSvcFacade interface {
	// MonthlySummary groups the user's transactions by calendar month,
	// ascending, with income/expense sums and the net per month.
	MonthlySummary(ctx context.Context, userID string) ([]domain.MonthlySummaryRow, error)

	// CategoryBreakdown groups the user's transactions of one kind by
	// category, descending by amount, with each category's share of the
	// kind's total.
	CategoryBreakdown(ctx context.Context, userID string, kind domain.TransactionKind) ([]domain.CategorySummaryRow, error)
}
