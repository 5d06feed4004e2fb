package postgres

import (
	"context"

	"roster/internal/domain/repository"
	"roster/internal/domain/service"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db     *gorm.DB
	hasher service.PasswordHasher
}

// gormRepositoryFactory hands out repository instances bound to one
// transaction. In GORM a transaction handle is itself a *gorm.DB.
type gormRepositoryFactory struct {
	tx     *gorm.DB
	hasher service.PasswordHasher
}

// AccountRepo returns an account repository bound to the transaction.
func (f *gormRepositoryFactory) AccountRepo() repository.AccountRepository {
	return NewAccountRepository(f.tx, f.hasher)
}

// NewTransactionManager is the constructor for gormTransactionManager,
// used as an Fx provider.
func NewTransactionManager(db *gorm.DB, hasher service.PasswordHasher) repository.TransactionManager {
	return &gormTransactionManager{db: db, hasher: hasher}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// A panic inside the callback must not leave the transaction open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx, hasher: tm.hasher}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v (original error)", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
