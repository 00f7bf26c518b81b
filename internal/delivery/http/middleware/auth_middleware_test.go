package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/service"
	mockService "keygate/internal/mocks/service"
	mockUsecase "keygate/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *mockService.MockTokenService, *mockUsecase.MockSessionUsecase, *AuthMiddleware) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	tokenSvc := mockService.NewMockTokenService(t)
	sessionUC := mockUsecase.NewMockSessionUsecase(t)

	return c, tokenSvc, sessionUC, NewAuthMiddleware(tokenSvc, sessionUC)
}

func okHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	c, _, _, m := newAuthTestContext(t, "")

	var called bool
	err := m.Authenticate(okHandler(&called))(c)

	require.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.False(t, called)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	for _, header := range []string{"token-without-scheme", "Basic dXNlcjpwdw==", "Bearer "} {
		c, _, _, m := newAuthTestContext(t, header)

		var called bool
		err := m.Authenticate(okHandler(&called))(c)

		require.ErrorIs(t, err, domainerrors.ErrTokenInvalid, "header %q", header)
		assert.False(t, called)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	c, tokenSvc, _, m := newAuthTestContext(t, "Bearer expired-token")

	tokenSvc.EXPECT().VerifyAccessToken("expired-token").Return(nil, domainerrors.ErrTokenExpired)

	var called bool
	err := m.Authenticate(okHandler(&called))(c)

	// Expiry keeps its own error so clients know a refresh can still work.
	require.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	assert.False(t, called)
}

func TestAuthMiddleware_RevokedToken(t *testing.T) {
	c, tokenSvc, sessionUC, m := newAuthTestContext(t, "Bearer some-token")

	claims := &service.AccessClaims{
		UserID:            uuid.New(),
		CredentialVersion: "v1abc",
		JTI:               "jti-1",
	}
	tokenSvc.EXPECT().VerifyAccessToken("some-token").Return(claims, nil)
	sessionUC.EXPECT().IsTokenBlacklisted(c.Request().Context(), "jti-1").Return(true, nil)

	var called bool
	err := m.Authenticate(okHandler(&called))(c)

	require.ErrorIs(t, err, domainerrors.ErrTokenRevoked)
	assert.False(t, called)
}

func TestAuthMiddleware_IncompleteClaims(t *testing.T) {
	cases := map[string]*service.AccessClaims{
		"missing jti": {
			UserID:            uuid.New(),
			CredentialVersion: "v1abc",
		},
		"missing credential version": {
			UserID: uuid.New(),
			JTI:    "jti-1",
		},
	}

	for name, claims := range cases {
		t.Run(name, func(t *testing.T) {
			c, tokenSvc, _, m := newAuthTestContext(t, "Bearer some-token")

			tokenSvc.EXPECT().VerifyAccessToken("some-token").Return(claims, nil)

			var called bool
			err := m.Authenticate(okHandler(&called))(c)

			require.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
			assert.False(t, called)
		})
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	c, tokenSvc, sessionUC, m := newAuthTestContext(t, "Bearer good-token")

	userID := uuid.New()
	claims := &service.AccessClaims{
		UserID:            userID,
		CredentialVersion: "v1abc",
		JTI:               "jti-1",
	}
	tokenSvc.EXPECT().VerifyAccessToken("good-token").Return(claims, nil)
	sessionUC.EXPECT().IsTokenBlacklisted(c.Request().Context(), "jti-1").Return(false, nil)

	var called bool
	err := m.Authenticate(okHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, userID, c.Get(ContextKeyUserID))
	assert.Equal(t, "jti-1", c.Get(ContextKeyJTI))
	assert.Equal(t, "v1abc", c.Get(ContextKeyCredentialVersion))
}
