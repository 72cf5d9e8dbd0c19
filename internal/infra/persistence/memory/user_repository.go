// Package memory is a process-local user store for development and tests.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"userauth/internal/domain/entity"
	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/domain/repository"

	"github.com/pkg/errors"
)

type userRepository struct {
	mu      sync.RWMutex
	byEmail map[string]entity.User
	now     func() time.Time
}

// NewUserRepository returns an empty in-memory store.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		byEmail: make(map[string]entity.User),
		now:     time.Now,
	}
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if missing := user.MissingRequiredFields(); len(missing) > 0 {
		return errors.WithStack(domainerrors.ErrUserCreationFailed.WithDetails(strings.Join(missing, ", ") + " required"))
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.byEmail[user.Email]; exists {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
	}

	now := repo.now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	repo.byEmail[user.Email] = *user

	return nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}
