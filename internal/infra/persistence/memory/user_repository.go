// Package memory contains in-memory implementations of the repository
// interfaces. They back the unit tests and mirror the semantics of the
// PostgreSQL implementations, including write-time uniqueness checks.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"gobarber/internal/domain/entity"
	domainerrors "gobarber/internal/domain/errors"
	"gobarber/internal/domain/repository"

	"github.com/google/uuid"
)

// userRepository implements repository.UserRepository with a mutex-guarded map.
type userRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*entity.User
}

// NewUserRepository is the constructor for the in-memory userRepository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		users: make(map[uuid.UUID]*entity.User),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

// FindByEmail retrieves a single user by their email address. The match is
// exact, like the PostgreSQL implementation's lookup over the unique column.
func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, user := range repo.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// FindAllProviders retrieves every user except the one identified by exceptUserID.
func (repo *userRepository) FindAllProviders(_ context.Context, exceptUserID uuid.UUID) ([]*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	providers := make([]*entity.User, 0, len(repo.users))
	for _, user := range repo.users {
		if user.ID == exceptUserID {
			continue
		}
		providers = append(providers, cloneUser(user))
	}

	sort.Slice(providers, func(i, j int) bool {
		return providers[i].Name < providers[j].Name
	})

	return providers, nil
}

// Create persists a new user entity, assigning its ID and timestamps.
func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, existing := range repo.users {
		if existing.Email == user.Email {
			return domainerrors.ErrEmailInUse.WrapMessage("email already exists")
		}
	}

	now := time.Now()
	user.ID = uuid.New()
	user.CreatedAt = now
	user.UpdatedAt = now

	repo.users[user.ID] = cloneUser(user)

	return nil
}

// Save modifies an existing user entity.
func (repo *userRepository) Save(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}

	for _, existing := range repo.users {
		if existing.ID != user.ID && existing.Email == user.Email {
			return domainerrors.ErrEmailInUse.WrapMessage("email already exists")
		}
	}

	user.UpdatedAt = time.Now()
	repo.users[user.ID] = cloneUser(user)

	return nil
}

func cloneUser(user *entity.User) *entity.User {
	cloned := *user
	return &cloned
}
