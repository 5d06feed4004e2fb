// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const minPasswordLength = 6

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	policy      service.AccessPolicy
	logger      *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(
	txManager repository.TransactionManager,
	accountRepo repository.AccountRepository,
	hasher service.PasswordHasher,
	policy service.AccessPolicy,
	logger *slog.Logger,
) usecase.DirectoryUsecase {
	return &directoryService{
		txManager:   txManager,
		accountRepo: accountRepo,
		hasher:      hasher,
		policy:      policy,
		logger:      logger,
	}
}

// List runs the admin directory query. Count and page fetch share one
// transaction so the reported total matches the page being served.
func (srv *directoryService) List(ctx context.Context, input *usecase.ListInput) (*usecase.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}
	pageNum := input.Page
	if pageNum <= 0 {
		pageNum = 1
	}

	filter := repository.ListFilter{
		Role:   input.Role,
		Status: input.Status,
		Search: input.Search,
	}

	var total int64
	var accounts []*entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		var err error
		total, err = accountRepo.Count(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to count directory accounts")
		}

		accounts, err = accountRepo.List(ctx, filter, repository.NewPage(pageNum, limit))
		if err != nil {
			return errors.Wrap(err, "failed to list directory accounts")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Directory listing failed", slog.Any("error", err))

		return nil, err
	}

	views := make([]*usecase.AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, usecase.NewAccountView(account))
	}

	return &usecase.ListOutput{
		Users: views,
		Page:  pageNum,
		Pages: int((total + int64(limit) - 1) / int64(limit)),
		Total: total,
		Limit: limit,
	}, nil
}

// Count returns the total number of accounts with no role constraint.
func (srv *directoryService) Count(ctx context.Context) (int64, error) {
	total, err := srv.accountRepo.Count(ctx, repository.ListFilter{Role: "all"})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count accounts")
	}

	return total, nil
}

// GetByID returns a password-stripped account or a not-found outcome.
func (srv *directoryService) GetByID(ctx context.Context, id uuid.UUID) (*usecase.AccountView, error) {
	account, err := srv.findAccount(ctx, srv.accountRepo, id)
	if err != nil {
		return nil, err
	}

	return usecase.NewAccountView(account), nil
}

// SetStatus transitions the target account between active and inactive.
// The self-modification guard and the no-op rejection run before any
// store mutation.
func (srv *directoryService) SetStatus(ctx context.Context, actorID, targetID uuid.UUID, status string) (*usecase.AccountView, error) {
	newStatus := entity.Status(status)
	if !newStatus.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidStatus, "status change rejected")
	}

	var target *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		var err error
		target, err = srv.findAccount(ctx, accountRepo, targetID)
		if err != nil {
			return err
		}

		if !srv.policy.CanModifyStatus(actorID, target.ID) {
			return errors.Wrap(domainerrors.ErrSelfStatusChange, "status change rejected")
		}

		if target.Status == newStatus {
			if newStatus == entity.StatusActive {
				return errors.Wrap(domainerrors.ErrAlreadyActive, "status change rejected")
			}

			return errors.Wrap(domainerrors.ErrAlreadyInactive, "status change rejected")
		}

		target.Status = newStatus

		return accountRepo.Save(ctx, target)
	})
	if err != nil {
		srv.logger.Warn("Status change failed",
			slog.Any("actorID", actorID), slog.Any("targetID", targetID), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Info("Status changed",
		slog.Any("actorID", actorID), slog.Any("targetID", targetID), slog.String("status", status))

	return usecase.NewAccountView(target), nil
}

// DeleteAccount removes the target permanently after the self-deletion guard.
func (srv *directoryService) DeleteAccount(ctx context.Context, actorID, targetID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		target, err := srv.findAccount(ctx, accountRepo, targetID)
		if err != nil {
			return err
		}

		if !srv.policy.CanDelete(actorID, target.ID) {
			return errors.Wrap(domainerrors.ErrSelfDelete, "deletion rejected")
		}

		return accountRepo.Delete(ctx, target.ID)
	})
	if err != nil {
		srv.logger.Warn("Account deletion failed",
			slog.Any("actorID", actorID), slog.Any("targetID", targetID), slog.Any("error", err))

		return err
	}

	srv.logger.Info("Account deleted", slog.Any("actorID", actorID), slog.Any("targetID", targetID))

	return nil
}

// GetProfile returns the actor's own password-stripped account.
func (srv *directoryService) GetProfile(ctx context.Context, actorID uuid.UUID) (*usecase.AccountView, error) {
	return srv.GetByID(ctx, actorID)
}

// UpdateProfile applies the optional name/email changes through the
// targeted-patch path, so the credential hash transform cannot fire. An
// email change is first checked for uniqueness against all other accounts.
func (srv *directoryService) UpdateProfile(ctx context.Context, actorID uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.AccountView, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		var err error
		account, err = srv.findAccount(ctx, accountRepo, actorID)
		if err != nil {
			return err
		}

		patch := repository.AccountPatch{}

		if input.Email != nil {
			email := normalizeEmail(*input.Email)
			if email != "" && email != normalizeEmail(account.Email) {
				existing, err := accountRepo.FindByEmail(ctx, email)
				if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
					return errors.Wrap(err, "failed to check email uniqueness")
				}
				if existing != nil && existing.ID != account.ID {
					return errors.Wrap(domainerrors.ErrEmailTaken, "profile update rejected")
				}
				patch.Email = &email
				account.Email = email
			}
		}

		if input.FullName != nil && *input.FullName != "" {
			fullName := *input.FullName
			patch.FullName = &fullName
			account.FullName = fullName
		}

		return accountRepo.Patch(ctx, account.ID, patch)
	})
	if err != nil {
		srv.logger.Warn("Profile update failed", slog.Any("accountID", actorID), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Debug("Profile updated", slog.Any("accountID", actorID))

	return usecase.NewAccountView(account), nil
}

// ChangePassword verifies the current credential and rotates it through the
// full-save path, where the hash transform fires exactly once.
func (srv *directoryService) ChangePassword(ctx context.Context, actorID uuid.UUID, input *usecase.ChangePasswordInput) error {
	if input.CurrentPassword == "" || input.NewPassword == "" || input.ConfirmPassword == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("current password, new password and confirm password are required")
	}
	if input.NewPassword != input.ConfirmPassword {
		return errors.Wrap(domainerrors.ErrPasswordMismatch, "password change rejected")
	}
	if len(input.NewPassword) < minPasswordLength {
		return errors.Wrap(domainerrors.ErrPasswordTooShort, "password change rejected")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := srv.findAccount(ctx, accountRepo, actorID)
		if err != nil {
			return err
		}

		if !srv.hasher.Check(input.CurrentPassword, account.PasswordHash) {
			return errors.Wrap(domainerrors.ErrCurrentPasswordIncorrect, "password change rejected")
		}

		account.Password = input.NewPassword

		return accountRepo.Save(ctx, account)
	})
	if err != nil {
		srv.logger.Warn("Password change failed", slog.Any("accountID", actorID), slog.Any("error", err))

		return err
	}

	srv.logger.Info("Password changed", slog.Any("accountID", actorID))

	return nil
}

// findAccount loads an account and maps the store's not-found sentinel to
// the domain outcome.
func (srv *directoryService) findAccount(ctx context.Context, accountRepo repository.AccountRepository, id uuid.UUID) (*entity.Account, error) {
	account, err := accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}
