// Package google implements the Google OAuth 2.0 identity provider.
package google

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"

	"keygate/config"
	"keygate/internal/domain/entity"
	"keygate/internal/domain/service"
)

const userinfoEndpoint = "https://openidconnect.googleapis.com/v1/userinfo"

// userinfoResponse is the subset of the OpenID Connect userinfo payload we use.
type userinfoResponse struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

// Provider exchanges Google authorization codes for verified user identities.
// Google requires PKCE, so every authorization URL carries a code challenge
// and the exchange replays the matching verifier.
type Provider struct {
	oauth *oauth2.Config
}

// NewProvider builds the Google provider from configuration.
func NewProvider(cfg *config.Config) (*Provider, error) {
	if cfg.OAuth == nil || cfg.OAuth.Google == nil {
		return nil, errors.New("google oauth config missing")
	}

	return &Provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.OAuth.Google.ClientID,
			ClientSecret: cfg.OAuth.Google.ClientSecret,
			RedirectURL:  cfg.OAuth.Google.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     googleoauth.Endpoint,
		},
	}, nil
}

// AuthorizationURL returns the consent-screen URL for the given state and
// PKCE verifier.
func (p *Provider) AuthorizationURL(state, codeVerifier string) string {
	return p.oauth.AuthCodeURL(state, oauth2.S256ChallengeOption(codeVerifier))
}

// ExchangeCode trades an authorization code for the user's identity.
func (p *Provider) ExchangeCode(ctx context.Context, code, codeVerifier string) (*service.OAuthUser, error) {
	token, err := p.oauth.Exchange(ctx, code, oauth2.VerifierOption(codeVerifier))
	if err != nil {
		return nil, errors.Wrap(err, "exchange google authorization code")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userinfoEndpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build userinfo request")
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := p.oauth.Client(ctx, token).Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch google userinfo")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, errors.Errorf("google userinfo returned %d: %s", resp.StatusCode, body)
	}

	var info userinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, errors.Wrap(err, "decode google userinfo")
	}
	if info.Email == "" {
		return nil, errors.New("google userinfo missing email")
	}

	return &service.OAuthUser{Email: info.Email, Name: info.Name}, nil
}

// Strategy reports which login strategy this provider serves.
func (p *Provider) Strategy() entity.Strategy {
	return entity.StrategyGoogle
}
