package repository

import (
	"context"

	"keygate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrActiveTokenNotFound is returned when no live active-token row matches.
var ErrActiveTokenNotFound = errors.New("active token not found")

// ActiveTokenRepository persists one row per issued access token. The row's
// presence is what keeps the access token honored; deleting rows is the
// explicit-revocation channel a stateless JWT alone cannot provide.
type ActiveTokenRepository interface {
	// CreateActiveToken persists the revocation handle for a freshly signed
	// access token.
	CreateActiveToken(ctx context.Context, token *entity.ActiveToken) error

	// FindActiveTokenByJTI retrieves the row matching an access token's jti
	// claim. Returns ErrActiveTokenNotFound for both a missing and an expired
	// row; either way the access token must be treated as revoked.
	FindActiveTokenByJTI(ctx context.Context, jti string) (*entity.ActiveToken, error)

	// DeleteActiveTokensByDeviceID bulk-deletes every row for one device,
	// revoking all access tokens issued to it. Idempotent.
	DeleteActiveTokensByDeviceID(ctx context.Context, deviceID string) error

	// DeleteActiveTokensByUserID bulk-deletes every row for a user. Used by the
	// user deletion cascade and global revocation.
	DeleteActiveTokensByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpiredActiveTokens removes all expired rows; cleanup-worker duty.
	DeleteExpiredActiveTokens(ctx context.Context) error
}
