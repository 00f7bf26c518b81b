package repository

import "context"

// RepositoryFactory hands out repository instances bound to one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	RefreshTokenRepo() RefreshTokenRepository
	ActiveTokenRepo() ActiveTokenRepository
	PasswordResetRepo() PasswordResetRepository
	VerificationCodeRepo() VerificationCodeRepository
}

// TransactionManager runs a unit of work inside a single database transaction.
// Multi-step account writes (signup, password reset) go through here; token
// rotation deliberately does not; see the session service.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
