package domain

// AccessLevel is the access granted to a family member. Only view access is
// supported.
type AccessLevel string

const (
	AccessView AccessLevel = "view"
)

// FamilyAccessGrant lets the owning user share a read-only view of their
// records with a family member identified by email. The member's own account
// identity is never linked or verified; sharing is enforced purely by the
// owner-scoped query filters.
type FamilyAccessGrant struct {
	GrantID     string      `json:"grantID"`
	OwnerUserID string      `json:"ownerUserID"`
	MemberEmail string      `json:"memberEmail"`
	AccessLevel AccessLevel `json:"accessLevel"`
	Active      bool        `json:"active"`
	AuditFields
}
