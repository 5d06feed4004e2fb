// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListInput carries the admin directory query parameters, raw as received.
type ListInput struct {
	Page   int    // 1-indexed, default 1
	Limit  int    // default 10
	Search string // case-insensitive substring over fullName OR email
	Role   string // "", "all", "user", "admin"
	Status string // "", "active", "inactive"
}

// UpdateProfileInput defines the self-service profile update. Both fields
// are optional and applied independently.
type UpdateProfileInput struct {
	FullName *string
	Email    *string
}

// ChangePasswordInput defines the self-service password rotation.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// --- Output DTOs ---

// ListOutput is one page of the account directory.
type ListOutput struct {
	Users []*AccountView `json:"users"`
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
	Total int64          `json:"total"`
	Limit int            `json:"limit"`
}

// DirectoryUsecase defines the admin directory and self-service operations.
type DirectoryUsecase interface {
	// List returns a filtered, paginated page of the directory, newest first.
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Count returns the total number of accounts, unfiltered.
	Count(ctx context.Context) (int64, error)

	// GetByID returns the password-stripped account or a not-found outcome.
	GetByID(ctx context.Context, id uuid.UUID) (*AccountView, error)

	// SetStatus transitions the target's status. The actor may never target
	// itself, and a no-op transition is rejected rather than silently accepted.
	SetStatus(ctx context.Context, actorID, targetID uuid.UUID, status string) (*AccountView, error)

	// DeleteAccount removes the target permanently. The actor may never
	// target itself.
	DeleteAccount(ctx context.Context, actorID, targetID uuid.UUID) error

	// GetProfile returns the actor's own password-stripped account.
	GetProfile(ctx context.Context, actorID uuid.UUID) (*AccountView, error)

	// UpdateProfile applies the optional name/email changes via a targeted
	// patch; an email change is re-checked for uniqueness against all other
	// accounts first.
	UpdateProfile(ctx context.Context, actorID uuid.UUID, input *UpdateProfileInput) (*AccountView, error)

	// ChangePassword verifies the current credential and rotates it through
	// the full-save path so the hash transform fires exactly once.
	ChangePassword(ctx context.Context, actorID uuid.UUID, input *ChangePasswordInput) error
}
