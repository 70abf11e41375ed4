package dto

import (
	"time"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
)

// CreateFamilyGrantRequest defines the data needed to share a view with a
// family member. Only view access exists, so no level field is accepted.
type CreateFamilyGrantRequest struct {
	MemberEmail string `json:"memberEmail" binding:"required,email"`
}

// UpdateFamilyGrantRequest toggles a grant's active flag.
type UpdateFamilyGrantRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// FamilyGrantResponse defines the data returned for a family access grant.
type FamilyGrantResponse struct {
	GrantID       string    `json:"grantID"`
	MemberEmail   string    `json:"memberEmail"`
	AccessLevel   string    `json:"accessLevel"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToFamilyGrantResponse converts a domain.FamilyAccessGrant to FamilyGrantResponse DTO
func ToFamilyGrantResponse(g *domain.FamilyAccessGrant) FamilyGrantResponse {
	return FamilyGrantResponse{
		GrantID:       g.GrantID,
		MemberEmail:   g.MemberEmail,
		AccessLevel:   string(g.AccessLevel),
		Active:        g.Active,
		CreatedAt:     g.CreatedAt,
		LastUpdatedAt: g.LastUpdatedAt,
	}
}

// ToListFamilyGrantResponse converts a slice of grants to response DTOs
func ToListFamilyGrantResponse(grants []domain.FamilyAccessGrant) []FamilyGrantResponse {
	res := make([]FamilyGrantResponse, len(grants))
	for i, g := range grants {
		res[i] = ToFamilyGrantResponse(&g)
	}
	return res
}
