// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"keygate/config"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/service"
)

const (
	accessTokenTTL = 15 * time.Minute
	// Active-token rows outlive the signed token by one minute so a token that
	// is valid at the signature level never misses its revocation row.
	activeTokenTTL  = 16 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour

	// refreshTokenBytes is the entropy of an opaque refresh token. The raw
	// value handed to clients is twice this length in hex characters.
	refreshTokenBytes = 64
)

// accessClaims is the wire shape of an access token payload.
type accessClaims struct {
	CredentialVersion string `json:"credentialVersion"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{accessSecret: []byte(cfg.SecretKey.Access)}, nil
}

// SignAccessToken creates a short-lived HS256 token carrying the user ID as
// subject, the credential version stamp, and the jti revocation handle.
func (s *jwtService) SignAccessToken(userID uuid.UUID, credentialVersion, jti string) (string, error) {
	now := time.Now()
	claims := accessClaims{
		CredentialVersion: credentialVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.accessSecret)
}

// VerifyAccessToken checks signature and expiry and returns the decoded claims.
func (s *jwtService) VerifyAccessToken(tokenString string) (*service.AccessClaims, error) {
	claims := new(accessClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	out := &service.AccessClaims{
		UserID:            userID,
		CredentialVersion: claims.CredentialVersion,
		JTI:               claims.ID,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}

// NewOpaqueToken returns length random bytes encoded as hex.
func (s *jwtService) NewOpaqueToken(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}

// HashOpaqueToken returns the SHA-256 hex digest of a raw opaque token.
func (s *jwtService) HashOpaqueToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

// NewTokenPair generates a refresh-token-sized opaque token and its hash.
func (s *jwtService) NewTokenPair() (*service.TokenPair, error) {
	raw, err := s.NewOpaqueToken(refreshTokenBytes)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{Raw: raw, Hashed: s.HashOpaqueToken(raw)}, nil
}

func (s *jwtService) AccessTokenTTL() time.Duration { return accessTokenTTL }

func (s *jwtService) ActiveTokenTTL() time.Duration { return activeTokenTTL }

func (s *jwtService) RefreshTokenTTL() time.Duration { return refreshTokenTTL }
