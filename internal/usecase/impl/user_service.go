// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "userauth/internal/delivery/context"
	"userauth/internal/domain/entity"
	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/domain/repository"
	"userauth/internal/domain/service"
	"userauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser hashes the password and stores a new user record.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	newUser := &entity.User{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(input.Name),
		Email:    entity.NormalizeEmail(input.Email),
		MobileNo: strings.TrimSpace(input.MobileNo),
	}
	srv.log(ctx).Info("Starting user registration", slog.String("email", newUser.Email))

	if newUser.Name == "" || newUser.Email == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name, email and password are required"))
	}
	if len(input.Password) > entity.MaxPasswordBytes {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be at most %d bytes", entity.MaxPasswordBytes)))
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()))
	}
	newUser.PasswordHash = hashedPassword

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("email", newUser.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("User registered successfully", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login checks the password against the stored hash for the given email.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	if email == "" {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Login for unknown email", slog.String("email", email))

			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login with invalid credentials", slog.Any("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{User: user}, nil
}
