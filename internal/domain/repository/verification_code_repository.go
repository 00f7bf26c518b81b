package repository

import (
	"context"

	"keygate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrVerificationCodeNotFound is returned when no usable code matches.
var ErrVerificationCodeNotFound = errors.New("verification code not found")

// VerificationCodeRepository persists the single-use email verification codes
// issued at signup.
type VerificationCodeRepository interface {
	// CreateVerificationCode persists a new code for the given user.
	CreateVerificationCode(ctx context.Context, code *entity.VerificationCode) error

	// ConsumeVerificationCode atomically marks an unused, unexpired code as used
	// and returns it. Returns ErrVerificationCodeNotFound when no such code
	// exists; wrong code, already used, and expired are indistinguishable.
	ConsumeVerificationCode(ctx context.Context, userID uuid.UUID, code string) (*entity.VerificationCode, error)

	// DeleteVerificationCodesByUserID removes every code for a user, used before
	// issuing a replacement so only the latest code can succeed.
	DeleteVerificationCodesByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpiredVerificationCodes removes all expired rows; cleanup-worker duty.
	DeleteExpiredVerificationCodes(ctx context.Context) error
}
