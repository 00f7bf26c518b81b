package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keygate/config"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/service"
)

func newTestJWTService(t *testing.T, secret string) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)

	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_SignAndVerifyAccessToken(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	userID := uuid.New()
	jti := uuid.New().String()

	token, err := svc.SignAccessToken(userID, "v1abc", jti)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "v1abc", claims.CredentialVersion)
	assert.Equal(t, jti, claims.JTI)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt, time.Minute)
}

func TestJWTService_VerifyAccessToken_Expired(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	// Hand-sign a token that expired an hour ago with the same secret.
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		ID:        uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	})
	tokenString, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := svc.VerifyAccessToken(tokenString)

	require.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTService_VerifyAccessToken_Invalid(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	t.Run("garbage token", func(t *testing.T) {
		claims, err := svc.VerifyAccessToken("not-a-token")

		require.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
		assert.Nil(t, claims)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := newTestJWTService(t, "other-secret")
		token, err := other.SignAccessToken(uuid.New(), "v1abc", uuid.New().String())
		require.NoError(t, err)

		claims, err := svc.VerifyAccessToken(token)

		require.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
		assert.Nil(t, claims)
	})

	t.Run("wrong signing method", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject: uuid.New().String(),
		})
		tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		claims, err := svc.VerifyAccessToken(tokenString)

		require.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
		assert.Nil(t, claims)
	})

	t.Run("non-uuid subject", func(t *testing.T) {
		bad := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "not-a-uuid",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		tokenString, err := bad.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		claims, err := svc.VerifyAccessToken(tokenString)

		require.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
		assert.Nil(t, claims)
	})
}

func TestJWTService_OpaqueTokens(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	raw, err := svc.NewOpaqueToken(32)
	require.NoError(t, err)
	assert.Len(t, raw, 64)

	other, err := svc.NewOpaqueToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, raw, other)

	hash := svc.HashOpaqueToken(raw)
	assert.NotEqual(t, raw, hash)
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, svc.HashOpaqueToken(raw))
}

func TestJWTService_NewTokenPair(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	pair, err := svc.NewTokenPair()
	require.NoError(t, err)

	assert.Len(t, pair.Raw, 128)
	assert.Equal(t, svc.HashOpaqueToken(pair.Raw), pair.Hashed)
}

func TestJWTService_TTLs(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	assert.Equal(t, 15*time.Minute, svc.AccessTokenTTL())
	assert.Equal(t, 16*time.Minute, svc.ActiveTokenTTL())
	assert.Equal(t, 7*24*time.Hour, svc.RefreshTokenTTL())
	// Revocation rows must outlive the signed token.
	assert.Greater(t, svc.ActiveTokenTTL(), svc.AccessTokenTTL())
}
