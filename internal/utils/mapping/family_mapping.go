package mapping

import (
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	"github.com/fintrackhq/fintrack_backend/internal/models"
)

// ToModelFamilyAccessGrant converts a domain FamilyAccessGrant to a model FamilyAccessGrant
func ToModelFamilyAccessGrant(d domain.FamilyAccessGrant) models.FamilyAccessGrant {
	return models.FamilyAccessGrant{
		GrantID:     d.GrantID,
		OwnerUserID: d.OwnerUserID,
		MemberEmail: d.MemberEmail,
		AccessLevel: string(d.AccessLevel),
		Active:      d.Active,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFamilyAccessGrant converts a model FamilyAccessGrant to a domain FamilyAccessGrant
func ToDomainFamilyAccessGrant(m models.FamilyAccessGrant) domain.FamilyAccessGrant {
	return domain.FamilyAccessGrant{
		GrantID:     m.GrantID,
		OwnerUserID: m.OwnerUserID,
		MemberEmail: m.MemberEmail,
		AccessLevel: domain.AccessLevel(m.AccessLevel),
		Active:      m.Active,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFamilyAccessGrantSlice converts a slice of model grants to domain grants
func ToDomainFamilyAccessGrantSlice(ms []models.FamilyAccessGrant) []domain.FamilyAccessGrant {
	ds := make([]domain.FamilyAccessGrant, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFamilyAccessGrant(m)
	}
	return ds
}
