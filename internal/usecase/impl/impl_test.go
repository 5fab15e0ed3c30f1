package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gobarber/internal/domain/entity"
	"gobarber/internal/domain/repository"
	"gobarber/internal/infra/cache"
	"gobarber/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testLogger discards all output so test logs stay readable.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeHasher is a deterministic PasswordHasher for tests. It prefixes the
// password instead of digesting it, so assertions can inspect the result.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService issues reversible tokens carrying the user id.
type fakeTokenService struct{}

func (fakeTokenService) GenerateToken(userID uuid.UUID) (string, error) {
	return "token-" + userID.String(), nil
}

func (fakeTokenService) ValidateToken(token string) (uuid.UUID, error) {
	return uuid.Parse(token[len("token-"):])
}

// createTestUser registers a user straight through the repository.
func createTestUser(t *testing.T, userRepo repository.UserRepository, name, email, password string) *entity.User {
	t.Helper()

	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: "hashed:" + password,
	}
	require.NoError(t, userRepo.Create(context.Background(), user))

	return user
}

// localDate builds a local timestamp for readable test fixtures.
func localDate(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.Local)
}

// newMemoryRepos builds the in-memory persistence used across the suite.
func newMemoryRepos() (repository.UserRepository, repository.AppointmentRepository) {
	return memory.NewUserRepository(), memory.NewAppointmentRepository()
}

var newTestCache = cache.NewMemoryCacheProvider
