// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// normalizeEmail canonicalizes an email for storage and lookup so the
// case-insensitive uniqueness rule holds on every write path.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a new account: confirm-password check, case-insensitive
// uniqueness check, role normalization, creation (the credential is hashed
// inside the store's create path), then token issuance.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthView, error) {
	srv.logger.Info("Starting signup", slog.String("email", input.Email))

	if input.Password != input.ConfirmPassword {
		return nil, errors.Wrap(domainerrors.ErrPasswordMismatch, "signup rejected")
	}

	email := normalizeEmail(input.Email)
	account := &entity.Account{
		FullName: strings.TrimSpace(input.FullName),
		Email:    email,
		Password: input.Password,
		Role:     entity.NormalizeRole(input.Role),
		Status:   entity.StatusActive,
	}

	// Uniqueness check and creation share one transaction so a concurrent
	// signup with the same email cannot slip between them.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, err := accountRepo.FindByEmail(ctx, email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrEmailTaken, "signup rejected")
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		return accountRepo.Create(ctx, account)
	})
	if err != nil {
		srv.logger.Warn("Signup failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.Issue(account.ID)
	if err != nil {
		srv.logger.Error("Failed to issue token after signup", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.logger.Debug("Signup completed", slog.Any("accountID", account.ID), slog.String("role", account.Role.String()))

	return usecase.NewAuthView(account, token), nil
}

// Login verifies the credential, then the account status, in that order: a
// deactivated account responds identically to an unknown email until the
// password has been proven, so deactivation leaks no existence information.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthView, error) {
	email := normalizeEmail(input.Email)
	srv.logger.Debug("Starting login", slog.String("email", email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// Status is checked only after the credential verified.
	if !account.IsActive() {
		srv.logger.Warn("Login refused for deactivated account", slog.Any("accountID", account.ID))

		return nil, errors.Wrap(domainerrors.ErrAccountDeactivated, "login refused")
	}

	// Stamp last login through the targeted-patch path; a full save here
	// would risk re-running the credential hash transform.
	now := time.Now()
	if err := srv.accountRepo.Patch(ctx, account.ID, repository.AccountPatch{LastLogin: &now}); err != nil {
		srv.logger.Error("Failed to stamp last login", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to stamp last login")
	}
	account.LastLogin = &now

	token, err := srv.tokenService.Issue(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.logger.Debug("Login succeeded", slog.Any("accountID", account.ID))

	return usecase.NewAuthView(account, token), nil
}

// Me returns the authenticated account's own view.
func (srv *authService) Me(ctx context.Context, accountID uuid.UUID) (*usecase.AccountView, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return usecase.NewAccountView(account), nil
}
