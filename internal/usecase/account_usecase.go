package usecase

import (
	"context"

	"keygate/internal/domain/entity"

	"github.com/google/uuid"
)

// SignupInput is a new email/password registration.
type SignupInput struct {
	Email    string
	Username string
	Password string
}

// SignupOutput identifies the pending account awaiting email verification.
type SignupOutput struct {
	UserID uuid.UUID
	Email  string
}

// LoginInput is an email-or-username plus password login attempt.
// OldRefreshToken, when present, is the raw refresh token from the client's
// previous session so issuance can reuse its device slot.
type LoginInput struct {
	Identity        string
	Password        string
	OldRefreshToken string
}

// AuthOutput is a successful authentication: the account plus a fresh token pair.
type AuthOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
	DeviceID     string
}

// ResetPasswordInput consumes a password reset token.
type ResetPasswordInput struct {
	Email       string
	RawToken    string
	NewPassword string
}

// AccountUsecase covers the account flows around the token subsystem: signup
// with email verification, login, refresh, logout, password recovery, and
// OAuth provisioning.
type AccountUsecase interface {
	// Signup registers a pending account and emails it a verification code.
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// VerifyEmail consumes a verification code, activates the account, and
	// issues its first token pair.
	VerifyEmail(ctx context.Context, userID uuid.UUID, code string) (*AuthOutput, error)

	// ResendVerificationCode invalidates prior codes and emails a new one.
	ResendVerificationCode(ctx context.Context, userID uuid.UUID) error

	// Login authenticates an email-or-username identity with a password.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Refresh rotates a presented refresh token into a fresh pair.
	Refresh(ctx context.Context, rawRefreshToken string) (*AuthOutput, error)

	// Logout ends the session behind a refresh token.
	Logout(ctx context.Context, rawRefreshToken string) error

	// ForgotPassword issues a reset token and mails the reset link. Only
	// verified accounts qualify; anything else fails with
	// domainerrors.ErrAccountNotFound.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword consumes a reset token, replaces the password, and rotates
	// the credential version, revoking every session of the account.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error

	// GetAuthUser loads the account behind a verified access token.
	GetAuthUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// OAuthAuthorizationURL builds the provider consent URL for a login attempt.
	OAuthAuthorizationURL(strategy entity.Strategy, state, codeVerifier string) (string, error)

	// OAuthCallback exchanges an authorization code, provisions the account on
	// first login, and issues a token pair.
	OAuthCallback(ctx context.Context, strategy entity.Strategy, code, codeVerifier, oldRefreshToken string) (*AuthOutput, error)
}
