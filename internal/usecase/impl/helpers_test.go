package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"roster/internal/domain/repository"
	mockRepo "roster/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx wires the transaction manager to run the callback against a
// factory serving the given account repository, propagating the callback's
// error like a real rollback would.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, accountRepo *mockRepo.MockAccountRepository) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().AccountRepo().Return(accountRepo).Maybe()

			return fn(factory)
		})
}
