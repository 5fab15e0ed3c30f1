package impl

import (
	"context"
	"testing"

	domainerrors "gobarber/internal/domain/errors"
	"gobarber/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_ShowProfile(t *testing.T) {
	t.Parallel()

	userRepo, _ := newMemoryRepos()
	user := createTestUser(t, userRepo, "John Doe", "johndoe@example.com", "123456")

	srv := NewProfileService(userRepo, fakeHasher{}, testLogger())

	t.Run("returns the user's profile", func(t *testing.T) {
		t.Parallel()

		profile, err := srv.ShowProfile(context.Background(), user.ID)

		require.NoError(t, err)
		assert.Equal(t, user.ID, profile.ID)
		assert.Equal(t, "John Doe", profile.Name)
	})

	t.Run("fails for an unknown user", func(t *testing.T) {
		t.Parallel()

		profile, err := srv.ShowProfile(context.Background(), uuid.New())

		assert.Nil(t, profile)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestProfileService_UpdateProfile(t *testing.T) {
	t.Parallel()

	t.Run("updates name and email", func(t *testing.T) {
		t.Parallel()

		userRepo, _ := newMemoryRepos()
		user := createTestUser(t, userRepo, "John Doe", "johndoe@example.com", "123456")

		srv := NewProfileService(userRepo, fakeHasher{}, testLogger())

		updated, err := srv.UpdateProfile(context.Background(), user.ID, &usecase.UpdateProfileInput{
			Name:  "John Trê",
			Email: "johntre@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "John Trê", updated.Name)
		assert.Equal(t, "johntre@example.com", updated.Email)
	})

	t.Run("keeps the user's own email without conflict", func(t *testing.T) {
		t.Parallel()

		userRepo, _ := newMemoryRepos()
		user := createTestUser(t, userRepo, "John Doe", "johndoe@example.com", "123456")

		srv := NewProfileService(userRepo, fakeHasher{}, testLogger())

		updated, err := srv.UpdateProfile(context.Background(), user.ID, &usecase.UpdateProfileInput{
			Name:  "John Doe Jr.",
			Email: "johndoe@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "John Doe Jr.", updated.Name)
	})

	t.Run("rejects an email belonging to another user", func(t *testing.T) {
		t.Parallel()

		userRepo, _ := newMemoryRepos()
		user := createTestUser(t, userRepo, "John Doe", "johndoe@example.com", "123456")
		createTestUser(t, userRepo, "Jane Doe", "janedoe@example.com", "654321")

		srv := NewProfileService(userRepo, fakeHasher{}, testLogger())

		updated, err := srv.UpdateProfile(context.Background(), user.ID, &usecase.UpdateProfileInput{
			Name:  "John Doe",
			Email: "janedoe@example.com",
		})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, domainerrors.ErrEmailInUse)
	})

	t.Run("changes the password given the correct old password", func(t *testing.T) {
		t.Parallel()

		userRepo, _ := newMemoryRepos()
		user := createTestUser(t, userRepo, "John Doe", "johndoe@example.com", "123456")

		srv := NewProfileService(userRepo, fakeHasher{}, testLogger())

		updated, err := srv.UpdateProfile(context.Background(), user.ID, &usecase.UpdateProfileInput{
			Name:        "John Doe",
			Email:       "johndoe@example.com",
			Password:    "new-password",
			OldPassword: "123456",
		})

		require.NoError(t, err)
		assert.Equal(t, "hashed:new-password", updated.PasswordHash)
	})

	t.Run("requires the old password to set a new one", func(t *testing.T) {
		t.Parallel()

		userRepo, _ := newMemoryRepos()
		user := createTestUser(t, userRepo, "John Doe", "johndoe@example.com", "123456")

		srv := NewProfileService(userRepo, fakeHasher{}, testLogger())

		updated, err := srv.UpdateProfile(context.Background(), user.ID, &usecase.UpdateProfileInput{
			Name:     "John Doe",
			Email:    "johndoe@example.com",
			Password: "new-password",
		})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, domainerrors.ErrOldPasswordRequired)
	})

	t.Run("rejects a wrong old password", func(t *testing.T) {
		t.Parallel()

		userRepo, _ := newMemoryRepos()
		user := createTestUser(t, userRepo, "John Doe", "johndoe@example.com", "123456")

		srv := NewProfileService(userRepo, fakeHasher{}, testLogger())

		updated, err := srv.UpdateProfile(context.Background(), user.ID, &usecase.UpdateProfileInput{
			Name:        "John Doe",
			Email:       "johndoe@example.com",
			Password:    "new-password",
			OldPassword: "wrong-old-password",
		})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, domainerrors.ErrOldPasswordMismatch)
	})

	t.Run("fails for an unknown user", func(t *testing.T) {
		t.Parallel()

		userRepo, _ := newMemoryRepos()
		srv := NewProfileService(userRepo, fakeHasher{}, testLogger())

		updated, err := srv.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{
			Name:  "Ghost",
			Email: "ghost@example.com",
		})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}
