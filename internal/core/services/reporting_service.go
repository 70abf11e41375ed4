package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

type reportingService struct {
	BaseService
	txnRepo portsrepo.TransactionReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(txnRepo portsrepo.TransactionReader) portssvc.ReportingSvcFacade {
	return &reportingService{txnRepo: txnRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// MonthlySummary groups the user's transactions by calendar month. Each row
// carries the month's income sum, expense sum and net; rows are ordered by
// month ascending. The same transaction list always yields the same rows.
func (s *reportingService) MonthlySummary(ctx context.Context, userID string) ([]domain.MonthlySummaryRow, error) {
	txns, err := s.txnRepo.FindTransactions(ctx, userID, portsrepo.TransactionListFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for monthly summary: %w", err)
	}

	byMonth := make(map[string]*domain.MonthlySummaryRow)
	for _, t := range txns {
		key := t.MonthKey()
		row, ok := byMonth[key]
		if !ok {
			row = &domain.MonthlySummaryRow{Month: key}
			byMonth[key] = row
		}
		switch t.Kind {
		case domain.Income:
			row.Income = row.Income.Add(t.AmountBase)
		case domain.Expense:
			row.Expense = row.Expense.Add(t.AmountBase)
		}
	}

	rows := make([]domain.MonthlySummaryRow, 0, len(byMonth))
	for _, row := range byMonth {
		row.Net = row.Income.Sub(row.Expense)
		rows = append(rows, *row)
	}

	// "2006-01" keys sort chronologically as strings.
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Month < rows[j].Month
	})
	return rows, nil
}

// CategoryBreakdown groups the user's transactions of one kind by category.
// Each row carries the category's sum, transaction count and its percentage
// share of the kind's total; rows are ordered by amount descending. When the
// kind's total is zero every percentage is zero.
func (s *reportingService) CategoryBreakdown(ctx context.Context, userID string, kind domain.TransactionKind) ([]domain.CategorySummaryRow, error) {
	txns, err := s.txnRepo.FindTransactions(ctx, userID, portsrepo.TransactionListFilter{Kind: kind})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for category breakdown: %w", err)
	}

	byCategory := make(map[string]*domain.CategorySummaryRow)
	total := decimal.Zero
	for _, t := range txns {
		row, ok := byCategory[t.Category]
		if !ok {
			row = &domain.CategorySummaryRow{Category: t.Category, Kind: kind}
			byCategory[t.Category] = row
		}
		row.Amount = row.Amount.Add(t.AmountBase)
		row.Count++
		total = total.Add(t.AmountBase)
	}

	rows := make([]domain.CategorySummaryRow, 0, len(byCategory))
	for _, row := range byCategory {
		if !total.IsZero() {
			row.Percentage = row.Amount.Div(total).Mul(decimalHundred)
		}
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Amount.Equal(rows[j].Amount) {
			return rows[i].Category < rows[j].Category
		}
		return rows[i].Amount.GreaterThan(rows[j].Amount)
	})
	return rows, nil
}
