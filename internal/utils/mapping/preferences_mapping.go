package mapping

import (
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/models"
)

// ToModelUserPreferences converts a domain UserPreferences to a model UserPreferences
func ToModelUserPreferences(d domain.UserPreferences) models.UserPreferences {
	return models.UserPreferences{
		PreferencesID:   d.PreferencesID,
		UserID:          d.UserID,
		DisplayCurrency: d.DisplayCurrency,
		Theme:           d.Theme,
		ExchangeRate:    d.ExchangeRate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUserPreferences converts a model UserPreferences to a domain UserPreferences
func ToDomainUserPreferences(m models.UserPreferences) domain.UserPreferences {
	return domain.UserPreferences{
		PreferencesID:   m.PreferencesID,
		UserID:          m.UserID,
		DisplayCurrency: m.DisplayCurrency,
		Theme:           m.Theme,
		ExchangeRate:    m.ExchangeRate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
