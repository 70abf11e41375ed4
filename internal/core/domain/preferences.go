package domain

import "github.com/shopspring/decimal"

// Defaults applied when a user's preferences row is lazily created.
const (
	DefaultDisplayCurrency = "CAD"
	DefaultTheme           = "light"
)

// DefaultExchangeRate is the default CAD to INR rate.
var DefaultExchangeRate = decimal.NewFromFloat(61.5)

// UserPreferences holds per-user display settings. Exactly one record exists
// per user; it is created on first access with the defaults above.
type UserPreferences struct {
	PreferencesID   string          `json:"preferencesID"`
	UserID          string          `json:"userID"`
	DisplayCurrency string          `json:"displayCurrency"`
	Theme           string          `json:"theme"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"` // CAD -> INR, manually entered
	AuditFields
}
