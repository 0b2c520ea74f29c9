package models

import "slices"

// Role is the access level of an account.
type Role string

const (
	RoleProgrammer Role = "programmer"
	RoleCompany    Role = "company"
	RoleAdmin      Role = "admin"
)

// DefaultRole is assigned to accounts created without an explicit role.
const DefaultRole = RoleProgrammer

// Roles lists every accepted role value.
var Roles = []Role{RoleProgrammer, RoleCompany, RoleAdmin}

// SelfAssignableRoles lists the roles a registrant may pick for themselves.
var SelfAssignableRoles = []Role{RoleProgrammer, RoleCompany}

// IsSelfAssignable reports whether r is one of [SelfAssignableRoles].
func (r Role) IsSelfAssignable() bool {
	return slices.Contains(SelfAssignableRoles, r)
}

// IsValid reports whether r is one of [Roles].
func (r Role) IsValid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
