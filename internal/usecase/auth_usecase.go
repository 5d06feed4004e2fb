// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string // caller-supplied; only the literal "admin" grants the admin role
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AuthUsecase defines the interface for signup and login operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup registers a new account and issues a token for it.
	Signup(ctx context.Context, input *SignupInput) (*AuthView, error)

	// Login verifies credentials, stamps the last login and issues a token.
	// An unknown email and a wrong password are indistinguishable outcomes.
	Login(ctx context.Context, input *LoginInput) (*AuthView, error)

	// Me returns the authenticated account's own view.
	Me(ctx context.Context, accountID uuid.UUID) (*AccountView, error)
}
