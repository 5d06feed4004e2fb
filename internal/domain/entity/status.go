// Package entity contains the core business objects of the project.
package entity

// Status represents the lifecycle state of an account. Both transitions
// (active to inactive and back) are allowed; there is no terminal state.
type Status string

const (
	// StatusActive indicates an account that may authenticate.
	StatusActive Status = "active"
	// StatusInactive indicates a deactivated account. Login is refused until
	// an administrator reactivates it.
	StatusInactive Status = "inactive"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}
