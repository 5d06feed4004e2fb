// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the domain's AccountRepository interface using GORM.
// It owns the credential hash transform: Create and Save hash a pending
// plaintext credential exactly once, Patch structurally cannot touch it.
type accountRepository struct {
	db     *gorm.DB
	hasher service.PasswordHasher
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB, hasher service.PasswordHasher) repository.AccountRepository {
	return &accountRepository{db: db, hasher: hasher}
}

// hashPendingCredential runs the hash transform iff the entity carries a
// pending plaintext credential, then clears the plaintext so the transform
// can never fire twice for the same change.
func (repo *accountRepository) hashPendingCredential(account *entity.Account) error {
	if !account.CredentialDirty() {
		return nil
	}

	hashed, err := repo.hasher.Hash(account.Password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	account.PasswordHash = hashed
	account.Password = ""

	return nil
}

// Create persists a new account. The pending credential is hashed as part of
// creation; a duplicate email surfaces as the domain duplicate error.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if err := repo.hashPendingCredential(account); err != nil {
		return err
	}

	// Schema defaults, applied here so the entity and the row agree.
	if account.Role == "" {
		account.Role = entity.RoleUser
	}
	if account.Status == "" {
		account.Status = entity.StatusActive
	}

	accountM := fromAccountDomain(account)
	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.Status = entity.Status(accountM.Status)
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by email. The comparison is
// case-insensitive so the email uniqueness rule holds regardless of casing.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("lower(email) = lower(?)", email).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Patch applies a targeted field update. Only the named fields are written;
// the credential column is out of reach by construction, so this path never
// rehashes.
func (repo *accountRepository) Patch(ctx context.Context, id uuid.UUID, patch repository.AccountPatch) error {
	updates := map[string]any{}
	if patch.FullName != nil {
		updates["full_name"] = *patch.FullName
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Status != nil {
		updates["status"] = patch.Status.String()
	}
	if patch.LastLogin != nil {
		updates["last_login"] = *patch.LastLogin
	}
	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to patch account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Save re-saves the full account document. The hash transform fires exactly
// once iff the credential field is dirty.
func (repo *accountRepository) Save(ctx context.Context, account *entity.Account) error {
	if err := repo.hashPendingCredential(account); err != nil {
		return err
	}

	accountM := fromAccountDomain(account)
	if err := repo.db.WithContext(ctx).Save(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save account")
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Delete removes the account permanently.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.AccountModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Count returns the number of accounts matching the filter.
func (repo *accountRepository) Count(ctx context.Context, filter repository.ListFilter) (int64, error) {
	var count int64
	query := applyListFilter(repo.db.WithContext(ctx).Model(&model.AccountModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count accounts")
	}

	return count, nil
}

// List returns one page of accounts matching the filter, newest first. The id
// tiebreaker keeps the order stable when creation timestamps collide, so
// concatenated pages reproduce the full set without duplicates or omissions.
func (repo *accountRepository) List(ctx context.Context, filter repository.ListFilter, page repository.Page) ([]*entity.Account, error) {
	var accountMs []model.AccountModel
	query := applyListFilter(repo.db.WithContext(ctx).Model(&model.AccountModel{}), filter).
		Order("created_at DESC, id").
		Limit(page.Limit).
		Offset(page.Skip)
	if err := query.Find(&accountMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for i := range accountMs {
		accounts = append(accounts, toAccountDomain(&accountMs[i]))
	}

	return accounts, nil
}

// applyListFilter composes the directory constraints: role and status are
// exact matches, the search term is a case-insensitive substring over name OR
// email, ANDed with the rest so search never widens the role/status scope.
func applyListFilter(db *gorm.DB, filter repository.ListFilter) *gorm.DB {
	if role, ok := filter.RoleConstraint(); ok {
		db = db.Where("role = ?", role.String())
	}
	if status, ok := filter.StatusConstraint(); ok {
		db = db.Where("status = ?", status.String())
	}
	if filter.Search != "" {
		pattern := "%" + escapeLikePattern(filter.Search) + "%"
		db = db.Where("(full_name ILIKE ? OR email ILIKE ?)", pattern, pattern)
	}

	return db
}

// escapeLikePattern neutralizes LIKE metacharacters so the search term
// matches as a literal substring.
func escapeLikePattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return replacer.Replace(s)
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		FullName:     data.FullName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		Status:       entity.Status(data.Status),
		LastLogin:    data.LastLogin,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		FullName:     data.FullName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
		Status:       data.Status.String(),
		LastLogin:    data.LastLogin,
		CreatedAt:    data.CreatedAt,
	}
}
