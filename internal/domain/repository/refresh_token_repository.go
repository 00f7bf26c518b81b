package repository

import (
	"context"

	"keygate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for refresh token persistence.
var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)

// RefreshTokenRepository defines the interface for refresh token persistence.
// One row per outstanding refresh token; a row is replaced (old deleted, new
// inserted) on every rotation. Expired rows count as absent everywhere.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a device session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a refresh token record by its securely
	// stored hash. Returns ErrRefreshTokenNotFound for both a missing and an
	// expired row.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash deletes a refresh token by its hash. Idempotent:
	// deleting an absent hash is not an error.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// FindRefreshTokensByUserID retrieves all unexpired refresh tokens for a user,
	// newest first. Backs the active-sessions listing.
	FindRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error)

	// DeleteRefreshTokensByUserID removes all refresh tokens for a user
	// ("logout from all devices", user deletion cascade).
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpiredRefreshTokens removes all expired rows. Called periodically
	// by the cleanup worker; stands in for a storage-native TTL index.
	DeleteExpiredRefreshTokens(ctx context.Context) error

	// CountActiveSessionsByUserID returns the number of unexpired sessions for
	// a user, used to enforce an optional concurrent-session cap.
	CountActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}
