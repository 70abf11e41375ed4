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

const familyGrantColumns = `grant_id, owner_user_id, member_email, access_level, active, created_at, created_by, last_updated_at, last_updated_by`

type PgxFamilyGrantRepository struct {
	BaseRepository
}

// newPgxFamilyGrantRepository creates a new repository for family access grants.
func newPgxFamilyGrantRepository(pool *pgxpool.Pool) portsrepo.FamilyGrantRepositoryFacade {
	return &PgxFamilyGrantRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FamilyGrantRepositoryFacade = (*PgxFamilyGrantRepository)(nil)

func scanFamilyGrant(row pgx.Row) (models.FamilyAccessGrant, error) {
	var m models.FamilyAccessGrant
	err := row.Scan(
		&m.GrantID,
		&m.OwnerUserID,
		&m.MemberEmail,
		&m.AccessLevel,
		&m.Active,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveGrant persists a new grant. The unique index on (owner_user_id,
// member_email) rejects a second grant for the same member.
func (r *PgxFamilyGrantRepository) SaveGrant(ctx context.Context, grant domain.FamilyAccessGrant) error {
	m := mapping.ToModelFamilyAccessGrant(grant)

	query := `
		INSERT INTO family_access_grants (grant_id, owner_user_id, member_email, access_level, active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.GrantID, m.OwnerUserID, m.MemberEmail, m.AccessLevel, m.Active,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save grant %s: %w", m.GrantID, err)
	}
	return nil
}

// FindGrantByID retrieves a specific grant belonging to an owner.
func (r *PgxFamilyGrantRepository) FindGrantByID(ctx context.Context, ownerUserID, grantID string) (*domain.FamilyAccessGrant, error) {
	query := `SELECT ` + familyGrantColumns + ` FROM family_access_grants WHERE grant_id = $1 AND owner_user_id = $2;`
	m, err := scanFamilyGrant(r.Pool.QueryRow(ctx, query, grantID, ownerUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find grant %s: %w", grantID, err)
	}
	d := mapping.ToDomainFamilyAccessGrant(m)
	return &d, nil
}

// FindGrantsByOwner retrieves all grants an owner has issued.
func (r *PgxFamilyGrantRepository) FindGrantsByOwner(ctx context.Context, ownerUserID string) ([]domain.FamilyAccessGrant, error) {
	query := `SELECT ` + familyGrantColumns + ` FROM family_access_grants WHERE owner_user_id = $1 ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query grants: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FamilyAccessGrant, error) {
		return scanFamilyGrant(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan grants: %w", err)
	}
	return mapping.ToDomainFamilyAccessGrantSlice(ms), nil
}

// UpdateGrant updates an existing grant.
func (r *PgxFamilyGrantRepository) UpdateGrant(ctx context.Context, grant domain.FamilyAccessGrant) error {
	m := mapping.ToModelFamilyAccessGrant(grant)
	query := `
		UPDATE family_access_grants
		SET member_email = $1, access_level = $2, active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE grant_id = $6 AND owner_user_id = $7;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.MemberEmail, m.AccessLevel, m.Active,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.GrantID, m.OwnerUserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update grant %s: %w", m.GrantID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteGrant removes an owner's grant.
func (r *PgxFamilyGrantRepository) DeleteGrant(ctx context.Context, ownerUserID, grantID string) error {
	query := `DELETE FROM family_access_grants WHERE grant_id = $1 AND owner_user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, grantID, ownerUserID)
	if err != nil {
		return fmt.Errorf("failed to delete grant %s: %w", grantID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
