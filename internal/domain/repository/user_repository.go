// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"userauth/internal/domain/entity"
)

// ErrUserNotFound is returned by a UserRepository when no record matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the user store. Implementations exist for MongoDB, PostgreSQL and memory.
type UserRepository interface {
	// Create persists a new user. A duplicate email yields domainerrors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
