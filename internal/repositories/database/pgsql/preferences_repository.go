package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackhq/fintrack_backend/internal/models"
	"github.com/fintrackhq/fintrack_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const preferencesColumns = `preferences_id, user_id, display_currency, theme, exchange_rate, created_at, created_by, last_updated_at, last_updated_by`

type PgxPreferencesRepository struct {
	BaseRepository
}

// newPgxPreferencesRepository creates a new repository for user preferences.
func newPgxPreferencesRepository(pool *pgxpool.Pool) portsrepo.PreferencesRepositoryFacade {
	return &PgxPreferencesRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PreferencesRepositoryFacade = (*PgxPreferencesRepository)(nil)

func scanPreferences(row pgx.Row) (models.UserPreferences, error) {
	var m models.UserPreferences
	err := row.Scan(
		&m.PreferencesID,
		&m.UserID,
		&m.DisplayCurrency,
		&m.Theme,
		&m.ExchangeRate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindPreferencesByUser retrieves a user's preferences row.
func (r *PgxPreferencesRepository) FindPreferencesByUser(ctx context.Context, userID string) (*domain.UserPreferences, error) {
	query := `SELECT ` + preferencesColumns + ` FROM user_preferences WHERE user_id = $1;`
	m, err := scanPreferences(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find preferences for user %s: %w", userID, err)
	}
	d := mapping.ToDomainUserPreferences(m)
	return &d, nil
}

// SavePreferences persists a new preferences row. The unique index on
// user_id turns a concurrent double-create into ErrDuplicate.
func (r *PgxPreferencesRepository) SavePreferences(ctx context.Context, prefs domain.UserPreferences) error {
	m := mapping.ToModelUserPreferences(prefs)

	query := `
		INSERT INTO user_preferences (preferences_id, user_id, display_currency, theme, exchange_rate, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PreferencesID, m.UserID, m.DisplayCurrency, m.Theme, m.ExchangeRate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save preferences for user %s: %w", m.UserID, err)
	}
	return nil
}

// UpdatePreferences updates an existing preferences row.
func (r *PgxPreferencesRepository) UpdatePreferences(ctx context.Context, prefs domain.UserPreferences) error {
	m := mapping.ToModelUserPreferences(prefs)
	query := `
		UPDATE user_preferences
		SET display_currency = $1, theme = $2, exchange_rate = $3, last_updated_at = $4, last_updated_by = $5
		WHERE user_id = $6;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.DisplayCurrency, m.Theme, m.ExchangeRate,
		m.LastUpdatedAt, m.LastUpdatedBy, m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update preferences for user %s: %w", m.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
