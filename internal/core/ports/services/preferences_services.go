package services

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// PreferencesSvcFacade manages the single preferences record each user has.
type PreferencesSvcFacade interface {
	// GetOrCreatePreferences returns the user's preferences, lazily creating
	// the row with defaults (CAD, light, 61.5) on first access.
	GetOrCreatePreferences(ctx context.Context, userID string) (*domain.UserPreferences, error)

	// UpdatePreferences updates the user's preferences.
	UpdatePreferences(ctx context.Context, userID string, req dto.UpdatePreferencesRequest) (*domain.UserPreferences, error)
}
