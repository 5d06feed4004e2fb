package impl

import (
	"context"
	"testing"
	"time"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	mockRepo "roster/internal/mocks/repository"
	mockSvc "roster/internal/mocks/service"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// directoryServiceFixtures holds all test dependencies for directory service tests.
type directoryServiceFixtures struct {
	service     usecase.DirectoryUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
	policy      *mockSvc.MockAccessPolicy
}

func createTestDirectoryService(t *testing.T) directoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	policy := mockSvc.NewMockAccessPolicy(t)

	service := NewDirectoryService(
		txManager,
		accountRepo,
		hasher,
		policy,
		newDiscardLogger(),
	)

	return directoryServiceFixtures{
		service:     service,
		txManager:   txManager,
		accountRepo: accountRepo,
		hasher:      hasher,
		policy:      policy,
	}
}

func testAccount(status entity.Status) *entity.Account {
	now := time.Now()

	return &entity.Account{
		ID:           uuid.New(),
		FullName:     "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashed",
		Role:         entity.RoleUser,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestDirectoryService_List_Defaults(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	txRepo := mockRepo.NewMockAccountRepository(t)
	expectTx(t, fx.txManager, txRepo)

	filter := repository.ListFilter{}
	txRepo.EXPECT().Count(ctx, filter).Return(25, nil)
	txRepo.EXPECT().
		List(ctx, filter, repository.Page{Limit: 10, Skip: 0}).
		Return([]*entity.Account{testAccount(entity.StatusActive)}, nil)

	output, err := fx.service.List(ctx, &usecase.ListInput{})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 10, output.Limit)
	assert.Equal(t, int64(25), output.Total)
	assert.Equal(t, 3, output.Pages)
	assert.Len(t, output.Users, 1)
}

func TestDirectoryService_List_ExplicitPage(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	txRepo := mockRepo.NewMockAccountRepository(t)
	expectTx(t, fx.txManager, txRepo)

	filter := repository.ListFilter{Role: "all", Status: "inactive", Search: "smith"}
	txRepo.EXPECT().Count(ctx, filter).Return(11, nil)
	txRepo.EXPECT().
		List(ctx, filter, repository.Page{Limit: 5, Skip: 5}).
		Return([]*entity.Account{}, nil)

	output, err := fx.service.List(ctx, &usecase.ListInput{
		Page:   2,
		Limit:  5,
		Role:   "all",
		Status: "inactive",
		Search: "smith",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, output.Page)
	assert.Equal(t, 3, output.Pages)
	assert.Empty(t, output.Users)
}

func TestDirectoryService_List_EmptyDirectory(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	txRepo := mockRepo.NewMockAccountRepository(t)
	expectTx(t, fx.txManager, txRepo)

	filter := repository.ListFilter{}
	txRepo.EXPECT().Count(ctx, filter).Return(0, nil)
	txRepo.EXPECT().
		List(ctx, filter, repository.Page{Limit: 10, Skip: 0}).
		Return([]*entity.Account{}, nil)

	output, err := fx.service.List(ctx, &usecase.ListInput{})

	require.NoError(t, err)
	assert.Equal(t, 0, output.Pages)
	assert.Equal(t, int64(0), output.Total)
	assert.NotNil(t, output.Users)
}

func TestDirectoryService_Count_LiftsRoleConstraint(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	fx.accountRepo.EXPECT().Count(ctx, repository.ListFilter{Role: "all"}).Return(42, nil)

	total, err := fx.service.Count(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
}

func TestDirectoryService_GetByID_NotFound(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	targetID := uuid.New()

	fx.accountRepo.EXPECT().FindByID(ctx, targetID).Return(nil, repository.ErrAccountNotFound)

	view, err := fx.service.GetByID(ctx, targetID)

	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestDirectoryService_SetStatus_Success(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	actorID := uuid.New()
	target := testAccount(entity.StatusActive)

	txRepo := mockRepo.NewMockAccountRepository(t)
	expectTx(t, fx.txManager, txRepo)

	txRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.policy.EXPECT().CanModifyStatus(actorID, target.ID).Return(true)
	txRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			assert.Equal(t, entity.StatusInactive, account.Status)
			assert.False(t, account.CredentialDirty())
		}).
		Return(nil)

	view, err := fx.service.SetStatus(ctx, actorID, target.ID, "inactive")

	require.NoError(t, err)
	assert.Equal(t, "inactive", view.Status)
}

func TestDirectoryService_SetStatus_InvalidStatus(t *testing.T) {
	fx := createTestDirectoryService(t)

	view, err := fx.service.SetStatus(context.Background(), uuid.New(), uuid.New(), "suspended")

	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatus))
}

func TestDirectoryService_SetStatus_SelfGuard(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	target := testAccount(entity.StatusActive)
	actorID := target.ID

	txRepo := mockRepo.NewMockAccountRepository(t)
	expectTx(t, fx.txManager, txRepo)

	txRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.policy.EXPECT().CanModifyStatus(actorID, target.ID).Return(false)

	view, err := fx.service.SetStatus(ctx, actorID, target.ID, "inactive")

	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfStatusChange))
}

func TestDirectoryService_SetStatus_AlreadyActive(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	actorID := uuid.New()
	target := testAccount(entity.StatusActive)

	txRepo := mockRepo.NewMockAccountRepository(t)
	expectTx(t, fx.txManager, txRepo)

	txRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.policy.EXPECT().CanModifyStatus(actorID, target.ID).Return(true)

	view, err := fx.service.SetStatus(ctx, actorID, target.ID, "active")

	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyActive))
}

func TestDirectoryService_SetStatus_AlreadyInactive(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	actorID := uuid.New()
	target := testAccount(entity.StatusInactive)

	txRepo := mockRepo.NewMockAccountRepository(t)
	expectTx(t, fx.txManager, txRepo)

	txRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.policy.EXPECT().CanModifyStatus(actorID, target.ID).Return(true)

	view, err := fx.service.SetStatus(ctx, actorID, target.ID, "inactive")

	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyInactive))
}

func TestDirectoryService_DeleteAccount_Success(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	actorID := uuid.New()
	target := testAccount(entity.StatusActive)

	txRepo := mockRepo.NewMockAccountRepository(t)
	expectTx(t, fx.txManager, txRepo)

	txRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.policy.EXPECT().CanDelete(actorID, target.ID).Return(true)
	txRepo.EXPECT().Delete(ctx, target.ID).Return(nil)

	err := fx.service.DeleteAccount(ctx, actorID, target.ID)

	require.NoError(t, err)
}

func TestDirectoryService_DeleteAccount_SelfGuard(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	target := testAccount(entity.StatusActive)
	actorID := target.ID

	txRepo := mockRepo.NewMockAccountRepository(t)
	expectTx(t, fx.txManager, txRepo)

	txRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.policy.EXPECT().CanDelete(actorID, target.ID).Return(false)

	err := fx.service.DeleteAccount(ctx, actorID, target.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfDelete))
}

func TestDirectoryService_DeleteAccount_NotFound(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	actorID := uuid.New()
	targetID := uuid.New()

	txRepo := mockRepo.NewMockAccountRepository(t)
	expectTx(t, fx.txManager, txRepo)

	txRepo.EXPECT().FindByID(ctx, targetID).Return(nil, repository.ErrAccountNotFound)

	err := fx.service.DeleteAccount(ctx, actorID, targetID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestDirectoryService_UpdateProfile_Success(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	account := testAccount(entity.StatusActive)

	txRepo := mockRepo.NewMockAccountRepository(t)
	expectTx(t, fx.txManager, txRepo)

	txRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	txRepo.EXPECT().
		FindByEmail(ctx, "new@example.com").
		Return(nil, repository.ErrAccountNotFound)
	txRepo.EXPECT().
		Patch(ctx, account.ID, mock.AnythingOfType("repository.AccountPatch")).
		Run(func(ctx context.Context, id uuid.UUID, patch repository.AccountPatch) {
			require.NotNil(t, patch.FullName)
			require.NotNil(t, patch.Email)
			assert.Equal(t, "New Name", *patch.FullName)
			assert.Equal(t, "new@example.com", *patch.Email)
			assert.Nil(t, patch.Status)
			assert.Nil(t, patch.LastLogin)
		}).
		Return(nil)

	fullName := "New Name"
	email := "New@Example.com"
	view, err := fx.service.UpdateProfile(ctx, account.ID, &usecase.UpdateProfileInput{
		FullName: &fullName,
		Email:    &email,
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", view.FullName)
	assert.Equal(t, "new@example.com", view.Email)
}

func TestDirectoryService_UpdateProfile_EmailTaken(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	account := testAccount(entity.StatusActive)
	other := testAccount(entity.StatusActive)
	other.Email = "taken@example.com"

	txRepo := mockRepo.NewMockAccountRepository(t)
	expectTx(t, fx.txManager, txRepo)

	txRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	txRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(other, nil)

	email := "taken@example.com"
	view, err := fx.service.UpdateProfile(ctx, account.ID, &usecase.UpdateProfileInput{Email: &email})

	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

// Re-submitting the current email is not a collision with oneself.
func TestDirectoryService_UpdateProfile_OwnEmailUnchanged(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	account := testAccount(entity.StatusActive)

	txRepo := mockRepo.NewMockAccountRepository(t)
	expectTx(t, fx.txManager, txRepo)

	txRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	txRepo.EXPECT().
		Patch(ctx, account.ID, mock.AnythingOfType("repository.AccountPatch")).
		Run(func(ctx context.Context, id uuid.UUID, patch repository.AccountPatch) {
			assert.Nil(t, patch.Email)
		}).
		Return(nil)

	email := "Test@Example.com"
	view, err := fx.service.UpdateProfile(ctx, account.ID, &usecase.UpdateProfileInput{Email: &email})

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", view.Email)
}

func TestDirectoryService_ChangePassword_Success(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	account := testAccount(entity.StatusActive)

	txRepo := mockRepo.NewMockAccountRepository(t)
	expectTx(t, fx.txManager, txRepo)

	txRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.hasher.EXPECT().Check("oldpass1", "hashed").Return(true)
	txRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, saved *entity.Account) {
			assert.True(t, saved.CredentialDirty())
			assert.Equal(t, "newpass1", saved.Password)
		}).
		Return(nil)

	err := fx.service.ChangePassword(ctx, account.ID, &usecase.ChangePasswordInput{
		CurrentPassword: "oldpass1",
		NewPassword:     "newpass1",
		ConfirmPassword: "newpass1",
	})

	require.NoError(t, err)
}

func TestDirectoryService_ChangePassword_MissingFields(t *testing.T) {
	fx := createTestDirectoryService(t)

	err := fx.service.ChangePassword(context.Background(), uuid.New(), &usecase.ChangePasswordInput{
		CurrentPassword: "oldpass1",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDirectoryService_ChangePassword_Mismatch(t *testing.T) {
	fx := createTestDirectoryService(t)

	err := fx.service.ChangePassword(context.Background(), uuid.New(), &usecase.ChangePasswordInput{
		CurrentPassword: "oldpass1",
		NewPassword:     "newpass1",
		ConfirmPassword: "different",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
}

func TestDirectoryService_ChangePassword_TooShort(t *testing.T) {
	fx := createTestDirectoryService(t)

	err := fx.service.ChangePassword(context.Background(), uuid.New(), &usecase.ChangePasswordInput{
		CurrentPassword: "oldpass1",
		NewPassword:     "short",
		ConfirmPassword: "short",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooShort))
}

func TestDirectoryService_ChangePassword_WrongCurrent(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	account := testAccount(entity.StatusActive)

	txRepo := mockRepo.NewMockAccountRepository(t)
	expectTx(t, fx.txManager, txRepo)

	txRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.hasher.EXPECT().Check("wrongpass", "hashed").Return(false)

	err := fx.service.ChangePassword(ctx, account.ID, &usecase.ChangePasswordInput{
		CurrentPassword: "wrongpass",
		NewPassword:     "newpass1",
		ConfirmPassword: "newpass1",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCurrentPasswordIncorrect))
}
