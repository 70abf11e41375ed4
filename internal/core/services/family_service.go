package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/google/uuid"
)

type familyService struct {
	BaseService
	familyRepo portsrepo.FamilyGrantRepositoryFacade
}

// NewFamilyService creates a new family grant service.
func NewFamilyService(familyRepo portsrepo.FamilyGrantRepositoryFacade) portssvc.FamilySvcFacade {
	return &familyService{familyRepo: familyRepo}
}

var _ portssvc.FamilySvcFacade = (*familyService)(nil)

// CreateGrant issues an active view grant to a family member's email. The
// member's account is never linked or verified.
func (s *familyService) CreateGrant(ctx context.Context, ownerUserID string, req dto.CreateFamilyGrantRequest) (*domain.FamilyAccessGrant, error) {
	now := time.Now()
	grant := domain.FamilyAccessGrant{
		GrantID:     uuid.NewString(),
		OwnerUserID: ownerUserID,
		MemberEmail: strings.ToLower(req.MemberEmail),
		AccessLevel: domain.AccessView,
		Active:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerUserID,
		},
	}

	if err := s.familyRepo.SaveGrant(ctx, grant); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("a grant for this email already exists")
		}
		s.LogError(ctx, err, "failed to save grant", slog.String("grant_id", grant.GrantID))
		return nil, fmt.Errorf("failed to create grant: %w", err)
	}

	s.LogInfo(ctx, "family grant created", slog.String("grant_id", grant.GrantID))
	return &grant, nil
}

// ListGrants retrieves all grants the owner has issued.
func (s *familyService) ListGrants(ctx context.Context, ownerUserID string) ([]domain.FamilyAccessGrant, error) {
	grants, err := s.familyRepo.FindGrantsByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list grants: %w", err)
	}
	return grants, nil
}

// UpdateGrant toggles a grant's active flag.
func (s *familyService) UpdateGrant(ctx context.Context, ownerUserID, grantID string, req dto.UpdateFamilyGrantRequest) (*domain.FamilyAccessGrant, error) {
	grant, err := s.familyRepo.FindGrantByID(ctx, ownerUserID, grantID)
	if err != nil {
		return nil, err
	}

	if req.Active != nil {
		grant.Active = *req.Active
	}
	grant.LastUpdatedAt = time.Now()
	grant.LastUpdatedBy = ownerUserID

	if err := s.familyRepo.UpdateGrant(ctx, *grant); err != nil {
		s.LogError(ctx, err, "failed to update grant", slog.String("grant_id", grantID))
		return nil, fmt.Errorf("failed to update grant: %w", err)
	}
	return grant, nil
}

// DeleteGrant removes one of the owner's grants.
func (s *familyService) DeleteGrant(ctx context.Context, ownerUserID, grantID string) error {
	if err := s.familyRepo.DeleteGrant(ctx, ownerUserID, grantID); err != nil {
		return err
	}
	s.LogInfo(ctx, "family grant deleted", slog.String("grant_id", grantID))
	return nil
}
