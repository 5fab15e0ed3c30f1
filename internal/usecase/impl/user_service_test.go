package impl

import (
	"context"
	"testing"

	"gobarber/internal/domain/entity"
	domainerrors "gobarber/internal/domain/errors"
	"gobarber/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterUser(t *testing.T) {
	t.Parallel()

	t.Run("registers a new user with a hashed password", func(t *testing.T) {
		t.Parallel()

		userRepo, _ := newMemoryRepos()
		srv := NewUserService(userRepo, fakeHasher{}, newTestCache(), testLogger())

		output, err := srv.RegisterUser(context.Background(), &usecase.RegisterUserInput{
			Name:     "John Doe",
			Email:    "johndoe@example.com",
			Password: "123456",
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, output.User.ID)
		assert.Equal(t, "hashed:123456", output.User.PasswordHash)
		assert.NotEqual(t, "123456", output.User.PasswordHash)
	})

	t.Run("rejects an email already in use", func(t *testing.T) {
		t.Parallel()

		userRepo, _ := newMemoryRepos()
		createTestUser(t, userRepo, "John Doe", "johndoe@example.com", "123456")

		srv := NewUserService(userRepo, fakeHasher{}, newTestCache(), testLogger())

		output, err := srv.RegisterUser(context.Background(), &usecase.RegisterUserInput{
			Name:     "Jane Doe",
			Email:    "johndoe@example.com",
			Password: "654321",
		})

		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrEmailInUse)
	})

	t.Run("invalidates cached provider listings", func(t *testing.T) {
		t.Parallel()

		userRepo, _ := newMemoryRepos()
		cacheProvider := newTestCache()
		viewerID := uuid.New()

		ctx := context.Background()
		require.NoError(t, cacheProvider.Save(ctx, providerListCacheKey(viewerID), []*entity.User{}))

		srv := NewUserService(userRepo, fakeHasher{}, cacheProvider, testLogger())

		_, err := srv.RegisterUser(ctx, &usecase.RegisterUserInput{
			Name:     "John Doe",
			Email:    "johndoe@example.com",
			Password: "123456",
		})
		require.NoError(t, err)

		var cached []*entity.User
		found, err := cacheProvider.Recover(ctx, providerListCacheKey(viewerID), &cached)
		require.NoError(t, err)
		assert.False(t, found)
	})
}
