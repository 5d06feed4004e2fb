package middleware

import (
	"strings"

	"roster/internal/delivery/http/response"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyAccount   = "account"
	ContextKeyAccountID = "accountID"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	accountRepo repository.AccountRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, accountRepo repository.AccountRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, accountRepo: accountRepo}
}

// Authenticate validates the bearer token and loads the live account. The
// account comes from the store, not the claims, so a deactivation or role
// change takes effect on the very next request even for tokens issued
// before the change.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		accountID, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		account, err := m.accountRepo.FindByID(c.Request().Context(), accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return response.Unauthorized(c, "TOKEN_INVALID", "Account no longer exists")
			}

			return errors.Wrap(err, "failed to load account for token")
		}

		if !account.IsActive() {
			return response.Forbidden(c, domainerrors.ErrAccountDeactivated.ErrorCode(), domainerrors.ErrAccountDeactivated.Message())
		}

		c.Set(ContextKeyAccount, account)
		c.Set(ContextKeyAccountID, account.ID)

		return next(c)
	}
}

// RequireAdmin checks the live account set by Authenticate for the admin
// role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		account, ok := c.Get(ContextKeyAccount).(*entity.Account)
		if !ok {
			return response.Forbidden(c, "PERMISSION_DENIED", "Permission denied: account information missing")
		}

		if !account.IsAdmin() {
			return response.Forbidden(c, domainerrors.ErrAdminOnly.ErrorCode(), domainerrors.ErrAdminOnly.Message())
		}

		return next(c)
	}
}
