// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Strategy identifies how an account was provisioned and which login path it may use.
type Strategy string

const (
	// StrategyDefault is a classic email/password signup.
	StrategyDefault Strategy = "default"
	// StrategyGoogle is an account auto-provisioned through Google OAuth.
	StrategyGoogle Strategy = "google"
	// StrategyGithub is an account auto-provisioned through GitHub OAuth.
	StrategyGithub Strategy = "github"
)

// User is the core entity of the system, representing one account.
type User struct {
	ID       uuid.UUID // The unique identifier for the account.
	Email    string    // Unique contact email, usable as a login identifier.
	Username string    // Unique display handle, usable as a login identifier.
	Strategy Strategy  // How the account was created ("default", "google", "github").

	// PasswordHash stores the bcrypt-hashed password. Empty for OAuth-provisioned
	// accounts, which have no local password.
	PasswordHash string

	// CredentialVersion is an opaque random stamp embedded into every access token
	// issued for this user. Regenerating it (on password reset) invalidates every
	// outstanding access token system-wide on its next cross-check.
	CredentialVersion string

	IsVerified bool // Email ownership confirmed; gates login.
	IsActive   bool // Account enabled; OAuth accounts start active, email signups do not.

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPassword reports whether the account can authenticate with a local password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
