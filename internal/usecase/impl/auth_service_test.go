package impl

import (
	"context"
	"testing"

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

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		FullName:        "Test User",
		Email:           "Test@Example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}

	accountID := uuid.New()
	txRepo := mockRepo.NewMockAccountRepository(t)
	expectTx(t, fx.txManager, txRepo)

	txRepo.EXPECT().
		FindByEmail(ctx, "test@example.com").
		Return(nil, repository.ErrAccountNotFound)

	txRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			account.ID = accountID
		}).
		Return(nil)

	fx.tokenService.EXPECT().Issue(accountID).Return("signed-token", nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, accountID, output.ID)
	assert.Equal(t, "test@example.com", output.Email)
	assert.Equal(t, "user", output.Role)
	assert.Equal(t, "signed-token", output.Token)
}

func TestAuthService_Signup_AdminRole(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		FullName:        "Admin User",
		Email:           "admin@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Role:            "admin",
	}

	txRepo := mockRepo.NewMockAccountRepository(t)
	expectTx(t, fx.txManager, txRepo)

	txRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrAccountNotFound)

	txRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			assert.Equal(t, entity.RoleAdmin, account.Role)
			assert.Equal(t, entity.StatusActive, account.Status)
			account.ID = uuid.New()
		}).
		Return(nil)

	fx.tokenService.EXPECT().Issue(mock.AnythingOfType("uuid.UUID")).Return("signed-token", nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "admin", output.Role)
}

func TestAuthService_Signup_UnrecognizedRoleFallsBackToUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		FullName:        "Sneaky User",
		Email:           "sneaky@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Role:            "Administrator",
	}

	txRepo := mockRepo.NewMockAccountRepository(t)
	expectTx(t, fx.txManager, txRepo)

	txRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrAccountNotFound)

	txRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			assert.Equal(t, entity.RoleUser, account.Role)
			account.ID = uuid.New()
		}).
		Return(nil)

	fx.tokenService.EXPECT().Issue(mock.AnythingOfType("uuid.UUID")).Return("signed-token", nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "user", output.Role)
}

func TestAuthService_Signup_PasswordMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.Signup(context.Background(), &usecase.SignupInput{
		FullName:        "Test User",
		Email:           "test@example.com",
		Password:        "secret123",
		ConfirmPassword: "different",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		FullName:        "Test User",
		Email:           "taken@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}

	txRepo := mockRepo.NewMockAccountRepository(t)
	expectTx(t, fx.txManager, txRepo)

	txRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.Account{ID: uuid.New(), Email: input.Email}, nil)

	output, err := fx.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:           accountID,
		FullName:     "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashed",
		Role:         entity.RoleUser,
		Status:       entity.StatusActive,
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	fx.accountRepo.EXPECT().
		Patch(ctx, accountID, mock.AnythingOfType("repository.AccountPatch")).
		Run(func(ctx context.Context, id uuid.UUID, patch repository.AccountPatch) {
			require.NotNil(t, patch.LastLogin)
			assert.Nil(t, patch.FullName)
			assert.Nil(t, patch.Email)
			assert.Nil(t, patch.Status)
		}).
		Return(nil)
	fx.tokenService.EXPECT().Issue(accountID).Return("signed-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "Test@Example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, accountID, output.ID)
	assert.Equal(t, "signed-token", output.Token)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "missing@example.com").
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "missing@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed",
		Status:       entity.StatusActive,
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

// A deactivated account with a wrong password must look exactly like any
// other credential failure; only a proven credential reveals deactivation.
func TestAuthService_Login_DeactivatedWrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed",
		Status:       entity.StatusInactive,
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.False(t, errors.Is(err, domainerrors.ErrAccountDeactivated))
}

func TestAuthService_Login_DeactivatedCorrectPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed",
		Status:       entity.StatusInactive,
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountDeactivated))
}

func TestAuthService_Me_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:       accountID,
		FullName: "Test User",
		Email:    "test@example.com",
		Role:     entity.RoleUser,
		Status:   entity.StatusActive,
	}

	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)

	view, err := fx.service.Me(ctx, accountID)

	require.NoError(t, err)
	assert.Equal(t, accountID, view.ID)
	assert.Equal(t, "test@example.com", view.Email)
}

func TestAuthService_Me_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	view, err := fx.service.Me(ctx, accountID)

	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}
