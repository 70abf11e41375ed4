package services

import (
	"context"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// FamilySvcFacade manages view-sharing grants an owner issues to family
// members. The invited member's account is never linked or verified.
type FamilySvcFacade interface {
	// CreateGrant issues a view grant to a family member's email.
	CreateGrant(ctx context.Context, ownerUserID string, req dto.CreateFamilyGrantRequest) (*domain.FamilyAccessGrant, error)

	// ListGrants retrieves all grants the owner has issued.
	ListGrants(ctx context.Context, ownerUserID string) ([]domain.FamilyAccessGrant, error)

	// UpdateGrant toggles a grant's active flag.
	UpdateGrant(ctx context.Context, ownerUserID, grantID string, req dto.UpdateFamilyGrantRequest) (*domain.FamilyAccessGrant, error)

	// DeleteGrant removes one of the owner's grants.
	DeleteGrant(ctx context.Context, ownerUserID, grantID string) error
}
