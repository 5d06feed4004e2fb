// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the sole entity in the system, representing one identity record
// with its credential, role and status.
type Account struct {
	ID           uuid.UUID  // The unique identifier for the account, assigned by the store at creation.
	FullName     string     // The account holder's display name, letters and whitespace only.
	Email        string     // The login identifier, unique across all accounts regardless of case.
	PasswordHash string     // The bcrypt hash of the credential. Never serialized outward.
	Password     string     // Transient plaintext set only when a credential change is pending; consumed by Save/Create.
	Role         Role       // Either RoleUser or RoleAdmin. Fixed at creation.
	Status       Status     // StatusActive or StatusInactive. Default active.
	LastLogin    *time.Time // Stamped on every successful login, nil until the first one.
	CreatedAt    time.Time  // Set once at creation, default directory sort key (newest first).
	UpdatedAt    time.Time  // Timestamp of the last modification to this account.
}

// CredentialDirty reports whether a plaintext credential change is pending,
// i.e. whether Save must run the hash transform.
func (a *Account) CredentialDirty() bool {
	return a.Password != ""
}

// IsAdmin reports whether the account holds the administrator role.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// IsActive reports whether the account may authenticate.
func (a *Account) IsActive() bool {
	return a.Status == StatusActive
}
