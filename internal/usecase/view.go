package usecase

import (
	"time"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountView is the outward projection of an Account. It has no credential
// field at all, so omission of the password hash is structural rather than
// convention-based. Every exit point maps through one of these constructors.
type AccountView struct {
	ID        uuid.UUID  `json:"id"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NewAccountView builds the admin/self-facing projection of an account.
func NewAccountView(account *entity.Account) *AccountView {
	return &AccountView{
		ID:        account.ID,
		FullName:  account.FullName,
		Email:     account.Email,
		Role:      account.Role.String(),
		Status:    account.Status.String(),
		LastLogin: account.LastLogin,
		CreatedAt: account.CreatedAt,
	}
}

// AuthView is the signup/login projection: identity plus the issued bearer
// token. Status and timestamps are intentionally absent; a fresh signup is
// implicitly active and the fields are not yet meaningful to the caller.
type AuthView struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Token    string    `json:"token"`
}

// NewAuthView builds the signup/login projection of an account.
func NewAuthView(account *entity.Account, token string) *AuthView {
	return &AuthView{
		ID:       account.ID,
		FullName: account.FullName,
		Email:    account.Email,
		Role:     account.Role.String(),
		Token:    token,
	}
}
