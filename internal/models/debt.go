package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt is the database shape of a debt row. The paid flag is a native
// boolean column.
type Debt struct {
	DebtID             string          `db:"debt_id"`
	UserID             string          `db:"user_id"`
	Direction          string          `db:"direction"`
	Counterparty       string          `db:"counterparty"`
	TotalBase          decimal.Decimal `db:"total_base"`
	TotalSecondary     decimal.Decimal `db:"total_secondary"`
	RemainingBase      decimal.Decimal `db:"remaining_base"`
	RemainingSecondary decimal.Decimal `db:"remaining_secondary"`
	ExchangeRate       decimal.Decimal `db:"exchange_rate"`
	Purpose            string          `db:"purpose"`
	DueDate            *time.Time      `db:"due_date"`
	Paid               bool            `db:"paid"`
	PriorityScore      int             `db:"priority_score"`
	AuditFields
}

// DebtPayment is the database shape of a payment row. Rows are append-only.
type DebtPayment struct {
	PaymentID       string          `db:"payment_id"`
	DebtID          string          `db:"debt_id"`
	UserID          string          `db:"user_id"`
	AmountBase      decimal.Decimal `db:"amount_base"`
	AmountSecondary decimal.Decimal `db:"amount_secondary"`
	ExchangeRate    decimal.Decimal `db:"exchange_rate"`
	PaymentDate     time.Time       `db:"payment_date"`
	Notes           string          `db:"notes"`
	CreatedAt       time.Time       `db:"created_at"`
	CreatedBy       string          `db:"created_by"`
}
