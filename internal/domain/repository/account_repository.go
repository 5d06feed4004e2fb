// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountPatch is a targeted field update. It deliberately cannot express a
// credential write: callers that must not trigger the credential hash
// transform (login stamping, profile updates) go through Patch, while
// credential changes go through Save.
type AccountPatch struct {
	FullName  *string
	Email     *string
	Status    *entity.Status
	LastLogin *time.Time
}

// ListFilter describes the directory query constraints. Role, Status and
// Search hold the raw caller-supplied values; the constraint accessors apply
// the defaulting rules so every store implementation composes them the same
// way.
type ListFilter struct {
	Role   string // "", "all", "user", "admin"; anything else falls back to the default
	Status string // "", "active", "inactive"; anything else adds no constraint
	Search string // case-insensitive substring over fullName OR email
}

// RoleConstraint resolves the role filter. The default listing shows only
// ordinary accounts; "all" lifts the constraint entirely; a recognized role
// overrides the default; unrecognized values are ignored.
func (f ListFilter) RoleConstraint() (entity.Role, bool) {
	if f.Role == "all" {
		return "", false
	}
	if role := entity.Role(f.Role); role.IsValid() {
		return role, true
	}

	return entity.RoleUser, true
}

// StatusConstraint resolves the status filter. Absent or unrecognized values
// add no constraint.
func (f ListFilter) StatusConstraint() (entity.Status, bool) {
	if status := entity.Status(f.Status); status.IsValid() {
		return status, true
	}

	return "", false
}

// Page describes one finite window of a directory listing.
type Page struct {
	Limit int
	Skip  int
}

// NewPage builds a Page from 1-indexed page number and limit, applying the
// documented defaults (page 1, limit 10).
func NewPage(page, limit int) Page {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	return Page{Limit: limit, Skip: limit * (page - 1)}
}

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
//
// Create and Save run the credential hash transform if and only if the
// entity carries a pending plaintext credential (Account.CredentialDirty);
// Patch never does. This two-path contract replaces the store-hook approach
// where hashing fired implicitly on every full save.
type AccountRepository interface {
	// Create persists a new account. The pending plaintext credential is
	// hashed as part of creation. A duplicate email is rejected before any
	// row is written.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by email, case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Patch applies a targeted field update, bypassing full-save side effects.
	Patch(ctx context.Context, id uuid.UUID, patch AccountPatch) error

	// Save re-saves the full account. The hash transform fires exactly once
	// iff the credential field is dirty.
	Save(ctx context.Context, account *entity.Account) error

	// Delete removes the account permanently. There is no tombstone.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of accounts matching the filter.
	Count(ctx context.Context, filter ListFilter) (int64, error)

	// List returns one page of accounts matching the filter, sorted by
	// creation time descending (newest first), stable.
	List(ctx context.Context, filter ListFilter, page Page) ([]*entity.Account, error)
}
