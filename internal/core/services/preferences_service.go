package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/google/uuid"
)

type preferencesService struct {
	BaseService
	prefsRepo portsrepo.PreferencesRepositoryFacade
}

// NewPreferencesService creates a new preferences service.
func NewPreferencesService(prefsRepo portsrepo.PreferencesRepositoryFacade) portssvc.PreferencesSvcFacade {
	return &preferencesService{prefsRepo: prefsRepo}
}

var _ portssvc.PreferencesSvcFacade = (*preferencesService)(nil)

// GetOrCreatePreferences returns the user's preferences, lazily creating the
// row with defaults on first access. Two concurrent first reads race on the
// unique user_id index; the loser re-reads the winner's row.
func (s *preferencesService) GetOrCreatePreferences(ctx context.Context, userID string) (*domain.UserPreferences, error) {
	prefs, err := s.prefsRepo.FindPreferencesByUser(ctx, userID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	now := time.Now()
	created := domain.UserPreferences{
		PreferencesID:   uuid.NewString(),
		UserID:          userID,
		DisplayCurrency: domain.DefaultDisplayCurrency,
		Theme:           domain.DefaultTheme,
		ExchangeRate:    domain.DefaultExchangeRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.prefsRepo.SavePreferences(ctx, created); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.prefsRepo.FindPreferencesByUser(ctx, userID)
		}
		s.LogError(ctx, err, "failed to create default preferences", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create preferences: %w", err)
	}

	s.LogInfo(ctx, "default preferences created", slog.String("user_id", userID))
	return &created, nil
}

// UpdatePreferences applies the submitted fields to the user's preferences,
// creating the row with defaults first if it does not exist yet.
func (s *preferencesService) UpdatePreferences(ctx context.Context, userID string, req dto.UpdatePreferencesRequest) (*domain.UserPreferences, error) {
	prefs, err := s.GetOrCreatePreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayCurrency != nil {
		prefs.DisplayCurrency = *req.DisplayCurrency
	}
	if req.Theme != nil {
		prefs.Theme = *req.Theme
	}
	if req.ExchangeRate != nil {
		if req.ExchangeRate.LessThanOrEqual(decimalZero) {
			return nil, apperrors.NewValidationError("exchangeRate must be positive")
		}
		prefs.ExchangeRate = *req.ExchangeRate
	}
	prefs.LastUpdatedAt = time.Now()
	prefs.LastUpdatedBy = userID

	if err := s.prefsRepo.UpdatePreferences(ctx, *prefs); err != nil {
		s.LogError(ctx, err, "failed to update preferences", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}
	return prefs, nil
}
