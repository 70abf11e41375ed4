package repositories

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
)

// FamilyGrantReader defines read operations for family access grants
type FamilyGrantReader interface {
	// FindGrantByID retrieves a specific grant belonging to an owner.
	FindGrantByID(ctx context.Context, ownerUserID, grantID string) (*domain.FamilyAccessGrant, error)

	// FindGrantsByOwner retrieves all grants an owner has issued.
	FindGrantsByOwner(ctx context.Context, ownerUserID string) ([]domain.FamilyAccessGrant, error)
}

// FamilyGrantWriter defines write operations for family access grants
type FamilyGrantWriter interface {
	// SaveGrant persists a new grant.
	SaveGrant(ctx context.Context, grant domain.FamilyAccessGrant) error

	// UpdateGrant updates an existing grant.
	UpdateGrant(ctx context.Context, grant domain.FamilyAccessGrant) error

	// DeleteGrant removes an owner's grant.
	DeleteGrant(ctx context.Context, ownerUserID, grantID string) error
}

// FamilyGrantRepositoryFacade combines all family grant repository interfaces
type FamilyGrantRepositoryFacade interface {
	FamilyGrantReader
	FamilyGrantWriter
}
