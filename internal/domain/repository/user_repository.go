// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"keygate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Create persists a new user. The implementation fills in the generated ID
	// and timestamps on the passed entity.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by their username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByCredentialVersion retrieves the user carrying the given credential
	// version stamp, if any. Stamps are regenerated on password change, so a
	// miss here means every token embedding the stamp is stale.
	FindByCredentialVersion(ctx context.Context, version string) (*entity.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the password hash and credential version in one
	// statement. Rotating the version is what revokes every outstanding access
	// token for the account.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash, credentialVersion string) (*entity.User, error)

	// MarkVerified flips the verification and activation flags for a user.
	MarkVerified(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Delete removes a user. Implementations must cascade to the user's
	// refresh and active token rows in the same logical operation.
	Delete(ctx context.Context, id uuid.UUID) error
}
