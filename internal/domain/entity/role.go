// Package entity contains the core business objects of the project.
package entity

// Role represents the access level of an account.
type Role string

const (
	// RoleUser indicates an ordinary account holder.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// NormalizeRole maps a caller-supplied role string to a Role. Only the exact
// literal "admin" yields RoleAdmin; every other value, including empty,
// normalizes to RoleUser.
func NormalizeRole(s string) Role {
	if Role(s) == RoleAdmin {
		return RoleAdmin
	}

	return RoleUser
}
