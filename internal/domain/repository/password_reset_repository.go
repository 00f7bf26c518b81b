package repository

import (
	"context"

	"keygate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPasswordResetNotFound is returned when no reset record matches.
var ErrPasswordResetNotFound = errors.New("password reset record not found")

// PasswordResetRepository persists single-use password reset tokens,
// hash-at-rest with a short TTL, same pattern as refresh tokens.
type PasswordResetRepository interface {
	// CreatePasswordReset persists a new reset record for the given email.
	CreatePasswordReset(ctx context.Context, reset *entity.PasswordReset) error

	// FindPasswordReset retrieves an unexpired reset record by hashed token and
	// email. Returns ErrPasswordResetNotFound when missing or expired.
	FindPasswordReset(ctx context.Context, tokenHash, email string) (*entity.PasswordReset, error)

	// DeletePasswordReset consumes a reset record by ID. Idempotent.
	DeletePasswordReset(ctx context.Context, id uuid.UUID) error

	// DeleteExpiredPasswordResets removes all expired rows; cleanup-worker duty.
	DeleteExpiredPasswordResets(ctx context.Context) error
}
