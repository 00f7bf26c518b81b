package service

import (
	"context"

	"keygate/internal/domain/entity"
)

// OAuthUser is the minimal identity returned by an OAuth provider after a
// successful authorization-code exchange.
type OAuthUser struct {
	Email string
	Name  string
}

// OAuthProvider abstracts one external identity provider's authorization-code
// flow. The provider call is surfaced as a failure whenever the code exchange
// or the profile fetch is rejected.
type OAuthProvider interface {
	// AuthorizationURL builds the provider redirect URL for the given state.
	// Providers using PKCE also consume a code verifier; the others ignore it.
	AuthorizationURL(state, codeVerifier string) string

	// ExchangeCode trades an authorization code for the user's email address.
	ExchangeCode(ctx context.Context, code, codeVerifier string) (*OAuthUser, error)

	// Strategy returns the account strategy this provider provisions.
	Strategy() entity.Strategy
}
