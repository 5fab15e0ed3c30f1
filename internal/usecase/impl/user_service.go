package impl

import (
	"context"
	"fmt"
	"log/slog"

	"gobarber/internal/domain/entity"
	domainerrors "gobarber/internal/domain/errors"
	"gobarber/internal/domain/repository"
	"gobarber/internal/domain/service"
	"gobarber/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	cache    service.CacheProvider
	logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	cache service.CacheProvider,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		cache:    cache,
		logger:   logger,
	}
}

// RegisterUser creates a new account. The email must not be in use yet.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.logger.Debug("Starting user registration", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, errors.Wrap(domainerrors.ErrEmailInUse, "registration failed")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.invalidateProviderLists(ctx)

	srv.logger.Info("User registered", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// invalidateProviderLists drops every cached provider listing. A new user is a
// new potential provider, so stale lists must not be served afterwards. Cache
// failures are logged and swallowed.
func (srv *userService) invalidateProviderLists(ctx context.Context) {
	if err := srv.cache.InvalidatePrefix(ctx, providersListCachePrefix); err != nil {
		srv.logger.Warn("Failed to invalidate provider list cache", slog.Any("error", err))
	}
}

// providerListCacheKey builds the cache key of the provider listing seen by one user.
func providerListCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", providersListCachePrefix, userID)
}

const providersListCachePrefix = "providers-list"
