package service

import (
	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and validating the bearer
// tokens that bind an account identity to a fixed validity window.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed token carrying the account id and the
	// configured expiry window.
	Issue(accountID uuid.UUID) (string, error)

	// Validate checks signature and expiry of a token string and returns the
	// account id it was issued for.
	Validate(tokenString string) (uuid.UUID, error)
}
