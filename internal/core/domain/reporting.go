package domain

import "github.com/shopspring/decimal"

// MonthlySummaryRow aggregates one calendar month of transactions.
type MonthlySummaryRow struct {
	Month   string          `json:"month"` // "2006-01"
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// CategorySummaryRow aggregates transactions of one category within a kind.
// Percentage is this category's share of the kind's total, 0 when the total
// is zero.
type CategorySummaryRow struct {
	Category   string          `json:"category"`
	Kind       TransactionKind `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
}
