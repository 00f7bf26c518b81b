// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"time"

	"github.com/google/uuid"
)

// AccessClaims is the payload carried by a signed access token.
type AccessClaims struct {
	UserID            uuid.UUID // "sub" claim.
	CredentialVersion string    // Stamp copied from the user record at issuance.
	JTI               string    // Revocation handle; matches one ActiveToken row.
	IssuedAt          time.Time
	ExpiresAt         time.Time
}

// TokenPair is a freshly generated opaque token in both forms: the raw value
// handed to the client and the hash stored at rest.
type TokenPair struct {
	Raw    string
	Hashed string
}

// TokenService defines the stateless cryptographic primitives of the token
// subsystem: compact signed access tokens, opaque random strings, and the
// one-way digest used to store them. No persistence, no knowledge of records.
type TokenService interface {
	// SignAccessToken produces a signed, tamper-evident access token embedding
	// the given claims with the configured TTL.
	SignAccessToken(userID uuid.UUID, credentialVersion, jti string) (string, error)

	// VerifyAccessToken checks signature and expiry. It fails with
	// domainerrors.ErrTokenExpired past expiry and domainerrors.ErrTokenInvalid
	// for any signature or format failure; callers must distinguish the two.
	VerifyAccessToken(token string) (*AccessClaims, error)

	// NewOpaqueToken returns a cryptographically secure random hex string of
	// length*2 characters (length random bytes).
	NewOpaqueToken(length int) (string, error)

	// HashOpaqueToken returns the deterministic SHA-256 hex digest of a raw
	// opaque token. Not a password hash: the input is already high-entropy
	// random data compared by exact byte match, so no salt or slow KDF.
	HashOpaqueToken(raw string) string

	// NewTokenPair combines NewOpaqueToken and HashOpaqueToken at the default
	// refresh-token length.
	NewTokenPair() (*TokenPair, error)

	// AccessTokenTTL returns the signed lifetime of access tokens.
	AccessTokenTTL() time.Duration

	// ActiveTokenTTL returns the lifetime of ActiveToken rows, slightly longer
	// than AccessTokenTTL to tolerate clock skew during verification.
	ActiveTokenTTL() time.Duration

	// RefreshTokenTTL returns the lifetime of refresh token rows.
	RefreshTokenTTL() time.Duration
}
