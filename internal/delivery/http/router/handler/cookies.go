package handler

import (
	"net/http"
	"time"

	"keygate/config"

	"github.com/labstack/echo/v4"
)

const (
	stateCookieName = "oauth_state"

	signupCookieTTL = 15 * time.Minute
	oauthCookieTTL  = 10 * time.Minute
)

// CookieManager centralizes the cookie contract: the refresh token travels in
// an HTTP-only SameSite=Lax cookie, secure outside development, never in a
// response body.
type CookieManager struct {
	cfg *config.Config
}

// NewCookieManager is the constructor for CookieManager.
func NewCookieManager(cfg *config.Config) *CookieManager {
	return &CookieManager{cfg: cfg}
}

func (cm *CookieManager) newCookie(name, value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   cm.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
}

// SetRefreshCookie stores a raw refresh token on the client.
func (cm *CookieManager) SetRefreshCookie(c echo.Context, rawToken string) {
	c.SetCookie(cm.newCookie(cm.cfg.Cookie.RefreshName, rawToken, cm.cfg.Cookie.MaxAge))
}

// ClearRefreshCookie removes the refresh cookie.
func (cm *CookieManager) ClearRefreshCookie(c echo.Context) {
	c.SetCookie(cm.newCookie(cm.cfg.Cookie.RefreshName, "", -time.Second))
}

// RefreshToken returns the raw refresh token from the request, or "" when the
// cookie is absent.
func (cm *CookieManager) RefreshToken(c echo.Context) string {
	return cm.cookieValue(c, cm.cfg.Cookie.RefreshName)
}

// SetSignupCookie remembers which pending account the verification flow is for.
func (cm *CookieManager) SetSignupCookie(c echo.Context, userID string) {
	c.SetCookie(cm.newCookie(cm.cfg.Cookie.SignupName, userID, signupCookieTTL))
}

// ClearSignupCookie removes the signup cookie.
func (cm *CookieManager) ClearSignupCookie(c echo.Context) {
	c.SetCookie(cm.newCookie(cm.cfg.Cookie.SignupName, "", -time.Second))
}

// SignupID returns the pending account ID from the signup cookie, or "".
func (cm *CookieManager) SignupID(c echo.Context) string {
	return cm.cookieValue(c, cm.cfg.Cookie.SignupName)
}

// SetStateCookie stores the OAuth state for callback validation.
func (cm *CookieManager) SetStateCookie(c echo.Context, state string) {
	c.SetCookie(cm.newCookie(stateCookieName, state, oauthCookieTTL))
}

// State returns the stored OAuth state, or "".
func (cm *CookieManager) State(c echo.Context) string {
	return cm.cookieValue(c, stateCookieName)
}

// ClearStateCookie removes the OAuth state cookie.
func (cm *CookieManager) ClearStateCookie(c echo.Context) {
	c.SetCookie(cm.newCookie(stateCookieName, "", -time.Second))
}

// SetVerifierCookie stores the PKCE code verifier between the redirect and
// callback legs of the Google flow.
func (cm *CookieManager) SetVerifierCookie(c echo.Context, verifier string) {
	c.SetCookie(cm.newCookie(cm.cfg.Cookie.VerifierName, verifier, oauthCookieTTL))
}

// Verifier returns the stored PKCE verifier, or "".
func (cm *CookieManager) Verifier(c echo.Context) string {
	return cm.cookieValue(c, cm.cfg.Cookie.VerifierName)
}

// ClearVerifierCookie removes the PKCE verifier cookie.
func (cm *CookieManager) ClearVerifierCookie(c echo.Context) {
	c.SetCookie(cm.newCookie(cm.cfg.Cookie.VerifierName, "", -time.Second))
}

func (cm *CookieManager) cookieValue(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}
