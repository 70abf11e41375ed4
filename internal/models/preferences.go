package models

import "github.com/shopspring/decimal"

// UserPreferences is the database shape of a preferences row. A unique index
// on user_id guarantees at most one row per user.
type UserPreferences struct {
	PreferencesID   string          `db:"preferences_id"`
	UserID          string          `db:"user_id"`
	DisplayCurrency string          `db:"display_currency"`
	Theme           string          `db:"theme"`
	ExchangeRate    decimal.Decimal `db:"exchange_rate"`
	AuditFields
}
