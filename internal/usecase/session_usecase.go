// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"keygate/internal/domain/entity"

	"github.com/google/uuid"
)

// IssueTokenPairInput carries everything the token issuance state machine
// needs. OldTokenHash and DeviceID are both optional: a fresh login leaves
// them empty, a rotation passes the hash of the refresh token being replaced
// together with its device ID.
type IssueTokenPairInput struct {
	UserID            uuid.UUID
	CredentialVersion string
	OldTokenHash      string
	DeviceID          string
}

// TokenPairOutput is a freshly issued access/refresh token pair. RefreshToken
// is the raw opaque value for the client; only its hash is stored.
type TokenPairOutput struct {
	AccessToken      string
	RefreshToken     string
	RefreshTokenHash string
	DeviceID         string
}

// RefreshAuthOutput is the result of authenticating a presented refresh token:
// the matching stored record and its owning user.
type RefreshAuthOutput struct {
	User  *entity.User
	Token *entity.RefreshToken
}

// SessionUsecase is the token lifecycle state machine: issuance with rotation,
// refresh authentication, revocation at token, device, and account scope, and
// the blacklist check backing access-token verification.
type SessionUsecase interface {
	// IssueTokenPair runs the full issuance sequence: best-effort removal of
	// the old refresh token, device blacklist wipe (or fresh device ID), a new
	// signed access token with its active-token row, and a new refresh token.
	IssueTokenPair(ctx context.Context, input *IssueTokenPairInput) (*TokenPairOutput, error)

	// AuthenticateRefreshToken resolves a raw refresh token to its stored
	// record and owner. Fails with domainerrors.ErrRefreshTokenNotFound when
	// the hash matches no live row.
	AuthenticateRefreshToken(ctx context.Context, rawToken string) (*RefreshAuthOutput, error)

	// EndSession terminates the session behind a raw refresh token: the stored
	// record is deleted and every access token of its device is revoked.
	// Unknown tokens fail with domainerrors.ErrRefreshTokenNotFound.
	EndSession(ctx context.Context, rawToken string) error

	// RevokeDevice revokes every outstanding access token of one device.
	RevokeDevice(ctx context.Context, deviceID string) error

	// RevokeAllSessions removes every refresh and active token of a user,
	// logging the account out everywhere.
	RevokeAllSessions(ctx context.Context, userID uuid.UUID) error

	// IsTokenBlacklisted reports whether an access token's jti has been
	// revoked. Absence of the active-token row means revoked.
	IsTokenBlacklisted(ctx context.Context, jti string) (bool, error)

	// GetActiveSessions lists a user's live device sessions, newest first.
	GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.SessionInfo, error)
}
