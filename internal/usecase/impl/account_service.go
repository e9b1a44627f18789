// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "ratestack/internal/delivery/context"
	"ratestack/internal/domain/entity"
	domainerrors "ratestack/internal/domain/errors"
	"ratestack/internal/domain/repository"
	"ratestack/internal/domain/service"
	"ratestack/internal/domain/validation"
	"ratestack/internal/errors"
	"ratestack/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo     repository.UserRepository
	storeRepo    repository.StoreRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	StoreRepo    repository.StoreRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all
// dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:     params.UserRepo,
		storeRepo:    params.StoreRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a USER account from the public signup form.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	return srv.createAccount(ctx, input.Name, input.Email, input.Address, input.Password, entity.RoleUser)
}

// CreateUser registers an account with an explicit role on behalf of an
// administrator.
func (srv *accountService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Invalid role")
	}

	return srv.createAccount(ctx, input.Name, input.Email, input.Address, input.Password, role)
}

func (srv *accountService) createAccount(ctx context.Context, name, email, address, password string, role entity.Role) (*entity.User, error) {
	if err := validateAccountFields(name, email, address, password); err != nil {
		srv.log(ctx).Warn("Account validation failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		Address:      address,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("Account created", slog.Any("userID", user.ID), slog.Any("role", role))

	return user, nil
}

// Login verifies credentials and issues a bearer token. Both unknown email
// and wrong password yield the same unauthenticated error so the response
// never reveals which part mismatched.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Email and password are required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("Login successful", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// UpdatePassword replaces the caller's own credential.
func (srv *accountService) UpdatePassword(ctx context.Context, userID uuid.UUID, input *usecase.UpdatePasswordInput) error {
	if !validation.StrongPassword(input.Password) {
		return domainerrors.ErrValidationFailed.WithMessage(
			"Password must be 8-16 characters with at least one uppercase and one special character")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	if err := srv.userRepo.UpdatePasswordHash(ctx, userID, passwordHash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password updated", slog.Any("userID", userID))

	return nil
}

// ListUsers returns the filtered, sorted user listing.
func (srv *accountService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) ([]*entity.User, error) {
	query := repository.UserQuery{
		Filter: repository.UserFilter{
			Name:    input.Name,
			Email:   input.Email,
			Address: input.Address,
			Role:    entity.Role(input.Role),
		},
		Sort:  repository.ParseUserSortField(input.Sort),
		Order: repository.ParseSortOrder(input.Order),
	}

	users, err := srv.userRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser returns one user; for OWNER accounts the owned stores are
// attached.
func (srv *accountService) GetUser(ctx context.Context, id uuid.UUID) (*usecase.UserDetail, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	detail := &usecase.UserDetail{User: user}
	if user.Role == entity.RoleOwner {
		stores, err := srv.storeRepo.ListByOwner(ctx, user.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list owned stores")
		}
		detail.Stores = stores
	}

	return detail, nil
}

// validateAccountFields applies the field-level rules shared by signup and
// admin account creation. The first failing rule short-circuits before any
// state is touched.
func validateAccountFields(name, email, address, password string) error {
	if !validation.ValidName(name) {
		return domainerrors.ErrValidationFailed.WithMessage("Name must be 20-60 characters long")
	}
	if !validation.ValidEmail(email) {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid email format")
	}
	if !validation.ValidAddress(address) {
		return domainerrors.ErrValidationFailed.WithMessage("Address must be 400 characters or less")
	}
	if !validation.StrongPassword(password) {
		return domainerrors.ErrValidationFailed.WithMessage(
			"Password must be 8-16 characters with at least one uppercase and one special character")
	}

	return nil
}
