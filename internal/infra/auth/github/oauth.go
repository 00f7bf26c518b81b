// Package github implements the GitHub OAuth 2.0 identity provider.
package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"

	"keygate/config"
	"keygate/internal/domain/entity"
	"keygate/internal/domain/service"
)

const userEndpoint = "https://api.github.com/user"

type userResponse struct {
	Login string `json:"login"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Provider exchanges GitHub authorization codes for user identities.
type Provider struct {
	oauth *oauth2.Config
}

// NewProvider builds the GitHub provider from configuration.
func NewProvider(cfg *config.Config) (*Provider, error) {
	if cfg.OAuth == nil || cfg.OAuth.GitHub == nil {
		return nil, errors.New("github oauth config missing")
	}

	return &Provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.OAuth.GitHub.ClientID,
			ClientSecret: cfg.OAuth.GitHub.ClientSecret,
			RedirectURL:  cfg.OAuth.GitHub.RedirectURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     githuboauth.Endpoint,
		},
	}, nil
}

// AuthorizationURL returns the consent-screen URL for the given state.
// GitHub does not use PKCE, so the verifier is ignored.
func (p *Provider) AuthorizationURL(state, _ string) string {
	return p.oauth.AuthCodeURL(state)
}

// ExchangeCode trades an authorization code for the user's identity.
func (p *Provider) ExchangeCode(ctx context.Context, code, _ string) (*service.OAuthUser, error) {
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "exchange github authorization code")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userEndpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build user request")
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := p.oauth.Client(ctx, token).Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch github user")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, errors.Errorf("github user endpoint returned %d: %s", resp.StatusCode, body)
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, errors.Wrap(err, "decode github user")
	}
	if user.Email == "" {
		return nil, errors.New("github user has no public email")
	}

	name := user.Name
	if name == "" {
		name = user.Login
	}

	return &service.OAuthUser{Email: user.Email, Name: name}, nil
}

// Strategy reports which login strategy this provider serves.
func (p *Provider) Strategy() entity.Strategy {
	return entity.StrategyGithub
}
