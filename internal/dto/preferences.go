package dto

import (
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdatePreferencesRequest defines the data allowed for updating preferences.
// Pointers distinguish omitted fields from zero values.
type UpdatePreferencesRequest struct {
	DisplayCurrency *string          `json:"displayCurrency" binding:"omitempty,uppercase,len=3"`
	Theme           *string          `json:"theme" binding:"omitempty,oneof=light dark"`
	ExchangeRate    *decimal.Decimal `json:"exchangeRate"`
}

// PreferencesResponse defines the data returned for user preferences.
type PreferencesResponse struct {
	PreferencesID   string          `json:"preferencesID"`
	DisplayCurrency string          `json:"displayCurrency"`
	Theme           string          `json:"theme"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ToPreferencesResponse converts a domain.UserPreferences to PreferencesResponse DTO
func ToPreferencesResponse(p *domain.UserPreferences) PreferencesResponse {
	return PreferencesResponse{
		PreferencesID:   p.PreferencesID,
		DisplayCurrency: p.DisplayCurrency,
		Theme:           p.Theme,
		ExchangeRate:    p.ExchangeRate,
		CreatedAt:       p.CreatedAt,
		LastUpdatedAt:   p.LastUpdatedAt,
	}
}
