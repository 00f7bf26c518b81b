// Package middleware contains HTTP middleware for the echo server.
package middleware

import (
	"strings"

	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/service"
	"keygate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID            = "userID"
	ContextKeyJTI               = "jti"
	ContextKeyCredentialVersion = "credentialVersion"
)

// AuthMiddleware validates Bearer access tokens. A token passes only when its
// signature verifies, it is unexpired, and its jti still has a live
// active-token row. Expiry gets its own error so clients know to refresh;
// every other failure is a uniform unauthorized.
type AuthMiddleware struct {
	tokenSvc       service.TokenService
	sessionUsecase usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, sessionUsecase usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, sessionUsecase: sessionUsecase}
}

// Authenticate is the core middleware function that validates the access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrTokenInvalid
		}

		claims, err := m.tokenSvc.VerifyAccessToken(tokenString)
		if err != nil {
			// ErrTokenExpired and ErrTokenInvalid pass through to the error middleware.
			return err
		}

		if claims.JTI == "" || claims.CredentialVersion == "" {
			return domainerrors.ErrTokenInvalid
		}

		revoked, err := m.sessionUsecase.IsTokenBlacklisted(c.Request().Context(), claims.JTI)
		if err != nil {
			return errors.WithStack(err)
		}
		if revoked {
			return domainerrors.ErrTokenRevoked
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyJTI, claims.JTI)
		c.Set(ContextKeyCredentialVersion, claims.CredentialVersion)

		return next(c)
	}
}
