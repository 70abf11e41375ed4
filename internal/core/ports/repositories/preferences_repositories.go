package repositories

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
)

// PreferencesReader defines read operations for user preferences
type PreferencesReader interface {
	// FindPreferencesByUser retrieves a user's preferences row.
	FindPreferencesByUser(ctx context.Context, userID string) (*domain.UserPreferences, error)
}

// PreferencesWriter defines write operations for user preferences
type PreferencesWriter interface {
	// SavePreferences persists a new preferences row.
	SavePreferences(ctx context.Context, prefs domain.UserPreferences) error

	// UpdatePreferences updates an existing preferences row.
	UpdatePreferences(ctx context.Context, prefs domain.UserPreferences) error
}

// PreferencesRepositoryFacade combines all preferences repository interfaces
type PreferencesRepositoryFacade interface {
	PreferencesReader
	PreferencesWriter
}
