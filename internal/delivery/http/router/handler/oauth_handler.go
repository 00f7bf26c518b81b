package handler

import (
	"log/slog"
	"net/http"

	"keygate/internal/delivery/http/response"
	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// OAuthHandler drives the authorization-code flows for the external identity
// providers. State always round-trips through a cookie; the Google flow also
// carries a PKCE verifier cookie between the two legs.
type OAuthHandler struct {
	accountUC usecase.AccountUsecase
	cookies   *CookieManager
	logger    *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler, injected by Fx.
func NewOAuthHandler(accountUC usecase.AccountUsecase, cookies *CookieManager, logger *slog.Logger) *OAuthHandler {
	return &OAuthHandler{
		accountUC: accountUC,
		cookies:   cookies,
		logger:    logger,
	}
}

// GitHubLogin redirects the browser to GitHub's consent screen.
func (h *OAuthHandler) GitHubLogin(c echo.Context) error {
	state := oauth2.GenerateVerifier()
	h.cookies.SetStateCookie(c, state)

	url, err := h.accountUC.OAuthAuthorizationURL(entity.StrategyGithub, state, "")
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusTemporaryRedirect, url)
}

// GitHubCallback exchanges the authorization code for a session.
func (h *OAuthHandler) GitHubCallback(c echo.Context) error {
	if err := h.checkState(c); err != nil {
		return err
	}

	output, err := h.accountUC.OAuthCallback(c.Request().Context(),
		entity.StrategyGithub, c.QueryParam("code"), "", h.cookies.RefreshToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return h.finish(c, output)
}

// GoogleLogin redirects the browser to Google's consent screen with PKCE.
func (h *OAuthHandler) GoogleLogin(c echo.Context) error {
	state := oauth2.GenerateVerifier()
	verifier := oauth2.GenerateVerifier()
	h.cookies.SetStateCookie(c, state)
	h.cookies.SetVerifierCookie(c, verifier)

	url, err := h.accountUC.OAuthAuthorizationURL(entity.StrategyGoogle, state, verifier)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback exchanges the authorization code, replaying the PKCE verifier.
func (h *OAuthHandler) GoogleCallback(c echo.Context) error {
	if err := h.checkState(c); err != nil {
		return err
	}

	verifier := h.cookies.Verifier(c)
	if verifier == "" {
		return domainerrors.ErrOAuthStateMissing.WrapMessage("code verifier cookie missing")
	}

	output, err := h.accountUC.OAuthCallback(c.Request().Context(),
		entity.StrategyGoogle, c.QueryParam("code"), verifier, h.cookies.RefreshToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.ClearVerifierCookie(c)

	return h.finish(c, output)
}

func (h *OAuthHandler) checkState(c echo.Context) error {
	stored := h.cookies.State(c)
	if stored == "" || stored != c.QueryParam("state") {
		return domainerrors.ErrOAuthStateMissing
	}
	h.cookies.ClearStateCookie(c)

	return nil
}

func (h *OAuthHandler) finish(c echo.Context, output *usecase.AuthOutput) error {
	h.cookies.SetRefreshCookie(c, output.RefreshToken)

	return response.Success(c, http.StatusOK, authResponse{
		AccessToken: output.AccessToken,
		User:        newUserView(output.User),
	}, "Login successful")
}
