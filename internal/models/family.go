package models

// FamilyAccessGrant is the database shape of a family access grant row.
type FamilyAccessGrant struct {
	GrantID     string `db:"grant_id"`
	OwnerUserID string `db:"owner_user_id"`
	MemberEmail string `db:"member_email"`
	AccessLevel string `db:"access_level"`
	Active      bool   `db:"active"`
	AuditFields
}
