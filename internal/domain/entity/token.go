package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents one outstanding, rotatable refresh token: a long-lived
// session on a single device. Only the SHA-256 hash of the raw token is ever
// persisted; the raw value lives exclusively in the client's cookie.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this refresh token record.
	UserID    uuid.UUID // The owning user.
	TokenHash string    // SHA-256 hex digest of the raw token, for exact-match lookup.
	DeviceID  string    // Groups every session originating from one login context.
	ExpiresAt time.Time // Absolute expiry (7 days); an expired row counts as absent.
	CreatedAt time.Time
}

// ActiveToken is the revocation handle for one issued access token. Its presence
// means the access token identified by JTI is still honored; deleting it revokes
// the access token before its cryptographic expiry.
type ActiveToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	JTI       string    // Matches the "jti" claim of exactly one access token.
	DeviceID  string    // Same device id as the refresh token minted alongside it.
	ExpiresAt time.Time // Slightly longer than the access token TTL to tolerate clock skew.
	CreatedAt time.Time
}

// PasswordReset is a single-use, short-lived reset token, hashed at rest like a
// refresh token and scoped to the email it was requested for.
type PasswordReset struct {
	ID        uuid.UUID
	Email     string
	TokenHash string
	ExpiresAt time.Time // 1 hour.
	CreatedAt time.Time
}

// VerificationCode is the single-use email verification code sent at signup.
type VerificationCode struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Code      string
	IsUsed    bool
	ExpiresAt time.Time // 10 minutes.
	CreatedAt time.Time
}

// SessionInfo is the user-facing view of one active session (one device).
type SessionInfo struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	DeviceID  string
	CreatedAt time.Time
	ExpiresAt time.Time
	IsActive  bool
}
