package memory

import (
	"context"
	"testing"

	"gobarber/internal/domain/entity"
	domainerrors "gobarber/internal/domain/errors"
	"gobarber/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	t.Parallel()

	t.Run("assigns id and timestamps", func(t *testing.T) {
		t.Parallel()

		repo := NewUserRepository()
		user := &entity.User{Name: "John Doe", Email: "johndoe@example.com", PasswordHash: "digest"}

		require.NoError(t, repo.Create(context.Background(), user))

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("rejects duplicate emails by exact match", func(t *testing.T) {
		t.Parallel()

		repo := NewUserRepository()
		ctx := context.Background()

		require.NoError(t, repo.Create(ctx, &entity.User{Name: "John", Email: "johndoe@example.com"}))

		err := repo.Create(ctx, &entity.User{Name: "Impostor", Email: "johndoe@example.com"})
		assert.ErrorIs(t, err, domainerrors.ErrEmailInUse)

		// The unique column is a plain varchar, so a different casing is a
		// distinct address, same as the PostgreSQL implementation.
		assert.NoError(t, repo.Create(ctx, &entity.User{Name: "Jane", Email: "JohnDoe@Example.com"}))
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &entity.User{Name: "John", Email: "johndoe@example.com"}))

	found, err := repo.FindByEmail(ctx, "johndoe@example.com")
	require.NoError(t, err)
	assert.Equal(t, "John", found.Name)

	_, err = repo.FindByEmail(ctx, "JOHNDOE@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindAllProviders(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	zed := &entity.User{Name: "Zed", Email: "zed@example.com"}
	anna := &entity.User{Name: "Anna", Email: "anna@example.com"}
	me := &entity.User{Name: "Me", Email: "me@example.com"}
	for _, user := range []*entity.User{zed, anna, me} {
		require.NoError(t, repo.Create(ctx, user))
	}

	providers, err := repo.FindAllProviders(ctx, me.ID)

	require.NoError(t, err)
	require.Len(t, providers, 2)
	assert.Equal(t, "Anna", providers[0].Name)
	assert.Equal(t, "Zed", providers[1].Name)
}

func TestUserRepository_Save(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	user := &entity.User{Name: "John", Email: "johndoe@example.com"}
	require.NoError(t, repo.Create(ctx, user))

	user.Name = "John Updated"
	require.NoError(t, repo.Save(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Updated", found.Name)

	missing := &entity.User{ID: uuid.New(), Email: "ghost@example.com"}
	assert.ErrorIs(t, repo.Save(ctx, missing), repository.ErrUserNotFound)
}
