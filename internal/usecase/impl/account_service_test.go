package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ratestack/internal/domain/entity"
	domainerrors "ratestack/internal/domain/errors"
	"ratestack/internal/domain/repository"
	mockRepo "ratestack/internal/mocks/repository"
	mockService "ratestack/internal/mocks/service"
	"ratestack/internal/usecase"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	userRepo     *mockRepo.MockUserRepository
	storeRepo    *mockRepo.MockStoreRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		UserRepo:     userRepo,
		StoreRepo:    storeRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return accountServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		storeRepo:    storeRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func requireAppError(t *testing.T, err error, errorCode string) domainerrors.AppError {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, errorCode, appErr.ErrorCode())

	return appErr
}

const (
	validName     = "Alexandria Winterbottom"
	validEmail    = "alex@example.com"
	validAddress  = "12 Harbour Street, Dockside"
	validPassword = "Sup3rSecret!"
)

func TestAccountService_Signup_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", validPassword).Return("hashed-password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.Signup(ctx, &usecase.SignupInput{
		Name:     validName,
		Email:    validEmail,
		Address:  validAddress,
		Password: validPassword,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, "hashed-password", user.PasswordHash)
}

func TestAccountService_Signup_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.SignupInput
		message string
	}{
		{
			name:    "short name",
			input:   usecase.SignupInput{Name: "Short Name", Email: validEmail, Address: validAddress, Password: validPassword},
			message: "Name must be 20-60 characters long",
		},
		{
			name:    "bad email",
			input:   usecase.SignupInput{Name: validName, Email: "not-an-email", Address: validAddress, Password: validPassword},
			message: "Invalid email format",
		},
		{
			name:    "weak password",
			input:   usecase.SignupInput{Name: validName, Email: validEmail, Address: validAddress, Password: "lowercase1!"},
			message: "Password must be 8-16 characters with at least one uppercase and one special character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)

			user, err := fx.service.Signup(context.Background(), &tt.input)

			require.Error(t, err)
			assert.Nil(t, user)
			appErr := requireAppError(t, err, "VALIDATION_FAILED")
			assert.Equal(t, tt.message, appErr.Message())
		})
	}
}

func TestAccountService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", validPassword).Return("hashed-password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrEmailAlreadyExists)

	user, err := fx.service.Signup(ctx, &usecase.SignupInput{
		Name:     validName,
		Email:    validEmail,
		Address:  validAddress,
		Password: validPassword,
	})

	require.Error(t, err)
	assert.Nil(t, user)
	requireAppError(t, err, "EMAIL_ALREADY_EXISTS")
}

func TestAccountService_CreateUser_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", validPassword).Return("hashed-password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Name:     validName,
		Email:    validEmail,
		Address:  validAddress,
		Password: validPassword,
		Role:     "ADMIN",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestAccountService_CreateUser_InvalidRole(t *testing.T) {
	fx := createTestAccountService(t)

	user, err := fx.service.CreateUser(context.Background(), &usecase.CreateUserInput{
		Name:     validName,
		Email:    validEmail,
		Address:  validAddress,
		Password: validPassword,
		Role:     "SUPERUSER",
	})

	require.Error(t, err)
	assert.Nil(t, user)
	appErr := requireAppError(t, err, "VALIDATION_FAILED")
	assert.Equal(t, "Invalid role", appErr.Message())
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	storedUser := &entity.User{
		ID:           uuid.New(),
		Name:         validName,
		Email:        validEmail,
		PasswordHash: "hashed-password",
		Role:         entity.RoleUser,
	}

	fx.userRepo.On("FindByEmail", ctx, validEmail).Return(storedUser, nil)
	fx.hasher.On("Check", validPassword, "hashed-password").Return(true)
	fx.tokenService.On("Issue", storedUser.ID, entity.RoleUser).Return("signed-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: validEmail, Password: validPassword})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, storedUser, output.User)
}

func TestAccountService_Login_MissingFields(t *testing.T) {
	fx := createTestAccountService(t)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: validEmail})

	require.Error(t, err)
	assert.Nil(t, output)
	appErr := requireAppError(t, err, "VALIDATION_FAILED")
	assert.Equal(t, "Email and password are required", appErr.Message())
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, validEmail).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: validEmail, Password: validPassword})

	require.Error(t, err)
	assert.Nil(t, output)
	requireAppError(t, err, "INVALID_CREDENTIALS")
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	storedUser := &entity.User{
		ID:           uuid.New(),
		Email:        validEmail,
		PasswordHash: "hashed-password",
		Role:         entity.RoleUser,
	}

	fx.userRepo.On("FindByEmail", ctx, validEmail).Return(storedUser, nil)
	fx.hasher.On("Check", "wrong-password", "hashed-password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: validEmail, Password: "wrong-password"})

	require.Error(t, err)
	assert.Nil(t, output)

	// Wrong password and unknown email must be indistinguishable.
	requireAppError(t, err, "INVALID_CREDENTIALS")
}

func TestAccountService_UpdatePassword_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.hasher.On("Hash", "N3wSecret!").Return("new-hash", nil)
	fx.userRepo.On("UpdatePasswordHash", ctx, userID, "new-hash").Return(nil)

	err := fx.service.UpdatePassword(ctx, userID, &usecase.UpdatePasswordInput{Password: "N3wSecret!"})

	require.NoError(t, err)
}

func TestAccountService_UpdatePassword_WeakPassword(t *testing.T) {
	fx := createTestAccountService(t)

	err := fx.service.UpdatePassword(context.Background(), uuid.New(),
		&usecase.UpdatePasswordInput{Password: "weak"})

	require.Error(t, err)
	requireAppError(t, err, "VALIDATION_FAILED")
}

func TestAccountService_UpdatePassword_UserMissing(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.hasher.On("Hash", "N3wSecret!").Return("new-hash", nil)
	fx.userRepo.On("UpdatePasswordHash", ctx, userID, "new-hash").Return(repository.ErrUserNotFound)

	err := fx.service.UpdatePassword(ctx, userID, &usecase.UpdatePasswordInput{Password: "N3wSecret!"})

	require.Error(t, err)
	requireAppError(t, err, "USER_NOT_FOUND")
}

func TestAccountService_ListUsers_UnknownSortFallsBack(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	expectedQuery := repository.UserQuery{
		Filter: repository.UserFilter{Name: "smith"},
		Sort:   repository.UserSortName,
		Order:  repository.OrderAsc,
	}

	fx.userRepo.On("List", ctx, expectedQuery).Return([]*entity.User{}, nil)

	users, err := fx.service.ListUsers(ctx, &usecase.ListUsersInput{
		Name:  "smith",
		Sort:  "password_hash; DROP TABLE users",
		Order: "sideways",
	})

	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestAccountService_ListUsers_HonorsAllowedSort(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	expectedQuery := repository.UserQuery{
		Filter: repository.UserFilter{Role: entity.RoleOwner},
		Sort:   repository.UserSortEmail,
		Order:  repository.OrderDesc,
	}

	listed := []*entity.User{{ID: uuid.New(), Email: validEmail, Role: entity.RoleOwner}}
	fx.userRepo.On("List", ctx, expectedQuery).Return(listed, nil)

	users, err := fx.service.ListUsers(ctx, &usecase.ListUsersInput{
		Role:  "OWNER",
		Sort:  "email",
		Order: "DESC",
	})

	require.NoError(t, err)
	assert.Equal(t, listed, users)
}

func TestAccountService_GetUser_OwnerIncludesStores(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	owner := &entity.User{ID: ownerID, Name: validName, Role: entity.RoleOwner}
	stores := []*entity.Store{{ID: uuid.New(), Name: "Harbour Grocers", OwnerID: &ownerID}}

	fx.userRepo.On("FindByID", ctx, ownerID).Return(owner, nil)
	fx.storeRepo.On("ListByOwner", ctx, ownerID).Return(stores, nil)

	detail, err := fx.service.GetUser(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, owner, detail.User)
	assert.Equal(t, stores, detail.Stores)
}

func TestAccountService_GetUser_PlainUserSkipsStores(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Name: validName, Role: entity.RoleUser}
	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)

	detail, err := fx.service.GetUser(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, detail.User)
	assert.Nil(t, detail.Stores)
}

func TestAccountService_GetUser_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	detail, err := fx.service.GetUser(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, detail)
	requireAppError(t, err, "USER_NOT_FOUND")
}
