package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction is money coming in or going out.
type TransactionKind string

const (
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
)

// Categories are a fixed enumerated set per kind.
var (
	IncomeCategories = []string{"salary", "business", "investment", "gift", "other_income"}

	ExpenseCategories = []string{
		"food", "transport", "housing", "utilities", "entertainment",
		"healthcare", "shopping", "education", "other_expense",
	}
)

// ValidCategory reports whether category belongs to the fixed set for kind.
func ValidCategory(kind TransactionKind, category string) bool {
	var set []string
	switch kind {
	case Income:
		set = IncomeCategories
	case Expense:
		set = ExpenseCategories
	default:
		return false
	}
	for _, c := range set {
		if c == category {
			return true
		}
	}
	return false
}

// Transaction represents a single income or expense record owned by a user.
// AmountSecondary is derived once at write time as AmountBase * ExchangeRate
// and never re-derived afterwards.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	UserID          string          `json:"userID"`
	Kind            TransactionKind `json:"kind"`
	Category        string          `json:"category"`
	AmountBase      decimal.Decimal `json:"amountBase"`
	AmountSecondary decimal.Decimal `json:"amountSecondary"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	Description     string          `json:"description"`
	Date            time.Time       `json:"date"` // calendar date, time part ignored
	AuditFields
}

// MonthKey returns the year-month grouping key for the transaction date.
func (t Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}
