package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database shape of a transaction row.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	UserID          string          `db:"user_id"`
	Kind            string          `db:"kind"`
	Category        string          `db:"category"`
	AmountBase      decimal.Decimal `db:"amount_base"`
	AmountSecondary decimal.Decimal `db:"amount_secondary"`
	ExchangeRate    decimal.Decimal `db:"exchange_rate"`
	Description     string          `db:"description"`
	Date            time.Time       `db:"txn_date"`
	AuditFields
}
