// Package models holds the server-side domain types: users with their role
// hierarchy, calendar events, and annually recurring holidays.
package models

import "time"

// Role orders the account levels so "at least" checks are a single
// comparison. A super-user is always an admin by ordering.
type Role int8

const (
	RoleMember Role = iota
	RoleAdmin
	RoleSuperUser
)

// AtLeast reports whether r grants the privileges of other.
func (r Role) AtLeast(other Role) bool { return r >= other }

// IsAdmin reports whether r carries admin privileges.
func (r Role) IsAdmin() bool { return r.AtLeast(RoleAdmin) }

// IsSuperUser reports whether r is the super-user level.
func (r Role) IsSuperUser() bool { return r.AtLeast(RoleSuperUser) }

// String returns the storage representation of the role.
func (r Role) String() string {
	switch r {
	case RoleSuperUser:
		return "superuser"
	case RoleAdmin:
		return "admin"
	default:
		return "member"
	}
}

// ParseRole maps a storage value back to a Role. Unknown values degrade to
// RoleMember rather than failing, so a corrupt row can never elevate anyone.
func ParseRole(s string) Role {
	switch s {
	case "superuser":
		return RoleSuperUser
	case "admin":
		return RoleAdmin
	default:
		return RoleMember
	}
}

// User is an account record. ID is caller-assigned and immutable.
// PasswordHash is the argon2id PHC string and is excluded from every
// listing projection.
type User struct {
	ID           string
	DisplayName  string
	PasswordHash string
	Color        string
	Role         Role
	CreatedAt    time.Time
}
