package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"keygate/config"
	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/repository"
	"keygate/internal/domain/service"
	mockRepo "keygate/internal/mocks/repository"
	mockService "keygate/internal/mocks/service"
	mockUsecase "keygate/internal/mocks/usecase"
	"keygate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceMocks struct {
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	sessionUsecase   *mockUsecase.MockSessionUsecase
	hasher           *mockService.MockPasswordHasher
	tokenService     *mockService.MockTokenService
	mailSender       *mockService.MockMailSender
	githubOAuth      *mockService.MockOAuthProvider
	googleOAuth      *mockService.MockOAuthProvider
}

func newAccountService(t *testing.T, maxActiveSessions int) (usecase.AccountUsecase, *accountServiceMocks) {
	t.Helper()

	m := &accountServiceMocks{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		sessionUsecase:   mockUsecase.NewMockSessionUsecase(t),
		hasher:           mockService.NewMockPasswordHasher(t),
		tokenService:     mockService.NewMockTokenService(t),
		mailSender:       mockService.NewMockMailSender(t),
		githubOAuth:      mockService.NewMockOAuthProvider(t),
		googleOAuth:      mockService.NewMockOAuthProvider(t),
	}

	m.githubOAuth.EXPECT().Strategy().Return(entity.StrategyGithub)
	m.googleOAuth.EXPECT().Strategy().Return(entity.StrategyGoogle)

	cfg := &config.Config{
		Auth: &config.AuthConfig{MaxActiveSessions: maxActiveSessions},
	}
	cfg.Client.BaseURL = "https://app.example.com"

	svc := NewAccountService(AccountServiceParams{
		TxManager:        m.txManager,
		UserRepo:         m.userRepo,
		RefreshTokenRepo: m.refreshTokenRepo,
		SessionUsecase:   m.sessionUsecase,
		Hasher:           m.hasher,
		TokenService:     m.tokenService,
		MailSender:       m.mailSender,
		GitHubOAuth:      m.githubOAuth,
		GoogleOAuth:      m.googleOAuth,
		Config:           cfg,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, m
}

func verifiedUser(passwordHash string) *entity.User {
	return &entity.User{
		ID:                uuid.New(),
		Email:             "user@example.com",
		Username:          "user",
		Strategy:          entity.StrategyDefault,
		PasswordHash:      passwordHash,
		CredentialVersion: "v1abc",
		IsVerified:        true,
		IsActive:          true,
	}
}

func TestAccountService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending account and mails the code", func(t *testing.T) {
		svc, m := newAccountService(t, 0)

		m.hasher.EXPECT().Hash("secret").Return("hashed-secret", nil)

		createdID := uuid.New()
		m.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				factory := mockRepo.NewMockRepositoryFactory(t)
				userRepo := mockRepo.NewMockUserRepository(t)
				codeRepo := mockRepo.NewMockVerificationCodeRepository(t)

				factory.EXPECT().UserRepo().Return(userRepo)
				factory.EXPECT().VerificationCodeRepo().Return(codeRepo)

				userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
				userRepo.EXPECT().FindByUsername(ctx, "newbie").Return(nil, repository.ErrUserNotFound)
				userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
					Run(func(_ context.Context, user *entity.User) {
						user.ID = createdID
						assert.Equal(t, "hashed-secret", user.PasswordHash)
						assert.Equal(t, entity.StrategyDefault, user.Strategy)
						assert.Len(t, user.CredentialVersion, 5)
						assert.False(t, user.IsVerified)
					}).Return(nil)
				codeRepo.EXPECT().CreateVerificationCode(ctx, mock.AnythingOfType("*entity.VerificationCode")).
					Run(func(_ context.Context, code *entity.VerificationCode) {
						assert.Equal(t, createdID, code.UserID)
						assert.Len(t, code.Code, 8)
						assert.True(t, code.ExpiresAt.After(time.Now()))
					}).Return(nil)

				return fn(factory)
			})

		m.mailSender.EXPECT().Send(ctx, mock.AnythingOfType("*service.Mail")).
			Run(func(_ context.Context, mail *service.Mail) {
				assert.Equal(t, "new@example.com", mail.To)
			}).Return(nil)

		output, err := svc.Signup(ctx, &usecase.SignupInput{
			Email:    "new@example.com",
			Username: "newbie",
			Password: "secret",
		})

		require.NoError(t, err)
		assert.Equal(t, createdID, output.UserID)
		assert.Equal(t, "new@example.com", output.Email)
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		svc, m := newAccountService(t, 0)

		m.hasher.EXPECT().Hash("secret").Return("hashed-secret", nil)

		m.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				factory := mockRepo.NewMockRepositoryFactory(t)
				userRepo := mockRepo.NewMockUserRepository(t)

				factory.EXPECT().UserRepo().Return(userRepo)
				factory.EXPECT().VerificationCodeRepo().Return(mockRepo.NewMockVerificationCodeRepository(t))
				userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(verifiedUser("x"), nil)

				return fn(factory)
			})

		output, err := svc.Signup(ctx, &usecase.SignupInput{
			Email:    "taken@example.com",
			Username: "newbie",
			Password: "secret",
		})

		require.ErrorIs(t, err, domainerrors.ErrEmailTaken)
		assert.Nil(t, output)
	})
}

func TestAccountService_VerifyEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("consumes the code and issues tokens", func(t *testing.T) {
		svc, m := newAccountService(t, 0)

		userID := uuid.New()
		user := verifiedUser("hash")
		user.ID = userID

		m.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				factory := mockRepo.NewMockRepositoryFactory(t)
				codeRepo := mockRepo.NewMockVerificationCodeRepository(t)
				userRepo := mockRepo.NewMockUserRepository(t)

				factory.EXPECT().VerificationCodeRepo().Return(codeRepo)
				factory.EXPECT().UserRepo().Return(userRepo)

				codeRepo.EXPECT().ConsumeVerificationCode(ctx, userID, "CODE1234").
					Return(&entity.VerificationCode{UserID: userID, Code: "CODE1234"}, nil)
				userRepo.EXPECT().MarkVerified(ctx, userID).Return(user, nil)

				return fn(factory)
			})

		m.sessionUsecase.EXPECT().IssueTokenPair(ctx, &usecase.IssueTokenPairInput{
			UserID:            userID,
			CredentialVersion: user.CredentialVersion,
		}).Return(&usecase.TokenPairOutput{
			AccessToken:  "access",
			RefreshToken: "refresh",
			DeviceID:     "device-1",
		}, nil)

		output, err := svc.VerifyEmail(ctx, userID, "CODE1234")

		require.NoError(t, err)
		assert.Equal(t, user, output.User)
		assert.Equal(t, "access", output.AccessToken)
		assert.Equal(t, "refresh", output.RefreshToken)
	})

	t.Run("wrong or expired code", func(t *testing.T) {
		svc, m := newAccountService(t, 0)

		userID := uuid.New()

		m.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				factory := mockRepo.NewMockRepositoryFactory(t)
				codeRepo := mockRepo.NewMockVerificationCodeRepository(t)

				factory.EXPECT().VerificationCodeRepo().Return(codeRepo)
				factory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))
				codeRepo.EXPECT().ConsumeVerificationCode(ctx, userID, "WRONG").
					Return(nil, repository.ErrVerificationCodeNotFound)

				return fn(factory)
			})

		output, err := svc.VerifyEmail(ctx, userID, "WRONG")

		require.ErrorIs(t, err, domainerrors.ErrVerificationCodeInvalid)
		assert.Nil(t, output)
	})
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown identity", func(t *testing.T) {
		svc, m := newAccountService(t, 0)

		m.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		output, err := svc.Login(ctx, &usecase.LoginInput{Identity: "ghost@example.com", Password: "pw"})

		require.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
		assert.Nil(t, output)
	})

	t.Run("identity without @ resolves as username", func(t *testing.T) {
		svc, m := newAccountService(t, 0)

		m.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		_, err := svc.Login(ctx, &usecase.LoginInput{Identity: "ghost", Password: "pw"})

		require.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	})

	t.Run("unverified account", func(t *testing.T) {
		svc, m := newAccountService(t, 0)

		user := verifiedUser("hash")
		user.IsVerified = false
		m.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)

		_, err := svc.Login(ctx, &usecase.LoginInput{Identity: "user@example.com", Password: "pw"})

		require.ErrorIs(t, err, domainerrors.ErrAccountNotVerified)
	})

	t.Run("password login against an oauth account", func(t *testing.T) {
		svc, m := newAccountService(t, 0)

		user := verifiedUser("")
		user.Strategy = entity.StrategyGoogle
		m.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)

		_, err := svc.Login(ctx, &usecase.LoginInput{Identity: "user@example.com", Password: "pw"})

		require.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, m := newAccountService(t, 0)

		user := verifiedUser("hash")
		m.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
		m.hasher.EXPECT().Check("wrong", "hash").Return(false)

		_, err := svc.Login(ctx, &usecase.LoginInput{Identity: "user@example.com", Password: "wrong"})

		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("session cap blocks a fresh device", func(t *testing.T) {
		svc, m := newAccountService(t, 3)

		user := verifiedUser("hash")
		m.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
		m.hasher.EXPECT().Check("pw", "hash").Return(true)
		m.refreshTokenRepo.EXPECT().CountActiveSessionsByUserID(ctx, user.ID).Return(3, nil)

		_, err := svc.Login(ctx, &usecase.LoginInput{Identity: "user@example.com", Password: "pw"})

		require.ErrorIs(t, err, domainerrors.ErrSessionLimitExceeded)
	})

	t.Run("rotation against an existing session skips the cap", func(t *testing.T) {
		svc, m := newAccountService(t, 1)

		user := verifiedUser("hash")
		m.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
		m.hasher.EXPECT().Check("pw", "hash").Return(true)

		m.sessionUsecase.EXPECT().AuthenticateRefreshToken(ctx, "old-refresh").Return(&usecase.RefreshAuthOutput{
			User:  user,
			Token: &entity.RefreshToken{UserID: user.ID, TokenHash: "old-hash", DeviceID: "device-1"},
		}, nil)
		m.sessionUsecase.EXPECT().IssueTokenPair(ctx, &usecase.IssueTokenPairInput{
			UserID:            user.ID,
			CredentialVersion: user.CredentialVersion,
			OldTokenHash:      "old-hash",
			DeviceID:          "device-1",
		}).Return(&usecase.TokenPairOutput{
			AccessToken:  "access",
			RefreshToken: "refresh",
			DeviceID:     "device-1",
		}, nil)

		output, err := svc.Login(ctx, &usecase.LoginInput{
			Identity:        "user@example.com",
			Password:        "pw",
			OldRefreshToken: "old-refresh",
		})

		require.NoError(t, err)
		assert.Equal(t, "device-1", output.DeviceID)
	})

	t.Run("a foreign refresh token is ignored", func(t *testing.T) {
		svc, m := newAccountService(t, 0)

		user := verifiedUser("hash")
		other := verifiedUser("hash")
		m.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
		m.hasher.EXPECT().Check("pw", "hash").Return(true)

		m.sessionUsecase.EXPECT().AuthenticateRefreshToken(ctx, "stolen-refresh").Return(&usecase.RefreshAuthOutput{
			User:  other,
			Token: &entity.RefreshToken{UserID: other.ID, TokenHash: "other-hash", DeviceID: "other-device"},
		}, nil)
		m.sessionUsecase.EXPECT().IssueTokenPair(ctx, &usecase.IssueTokenPairInput{
			UserID:            user.ID,
			CredentialVersion: user.CredentialVersion,
		}).Return(&usecase.TokenPairOutput{
			AccessToken:  "access",
			RefreshToken: "refresh",
			DeviceID:     "fresh-device",
		}, nil)

		output, err := svc.Login(ctx, &usecase.LoginInput{
			Identity:        "user@example.com",
			Password:        "pw",
			OldRefreshToken: "stolen-refresh",
		})

		require.NoError(t, err)
		assert.Equal(t, "fresh-device", output.DeviceID)
	})
}

func TestAccountService_Refresh(t *testing.T) {
	ctx := context.Background()
	svc, m := newAccountService(t, 0)

	user := verifiedUser("hash")
	token := &entity.RefreshToken{UserID: user.ID, TokenHash: "old-hash", DeviceID: "device-1"}

	m.sessionUsecase.EXPECT().AuthenticateRefreshToken(ctx, "raw-refresh").
		Return(&usecase.RefreshAuthOutput{User: user, Token: token}, nil)
	m.sessionUsecase.EXPECT().IssueTokenPair(ctx, &usecase.IssueTokenPairInput{
		UserID:            user.ID,
		CredentialVersion: user.CredentialVersion,
		OldTokenHash:      "old-hash",
		DeviceID:          "device-1",
	}).Return(&usecase.TokenPairOutput{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
		DeviceID:     "device-1",
	}, nil)

	output, err := svc.Refresh(ctx, "raw-refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestAccountService_ForgotPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		svc, m := newAccountService(t, 0)

		m.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		err := svc.ForgotPassword(ctx, "ghost@example.com")

		require.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	})

	t.Run("unverified account", func(t *testing.T) {
		svc, m := newAccountService(t, 0)

		user := verifiedUser("hash")
		user.IsVerified = false
		m.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)

		err := svc.ForgotPassword(ctx, "user@example.com")

		require.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	})

	t.Run("stores the hash and mails the raw token", func(t *testing.T) {
		svc, m := newAccountService(t, 0)

		user := verifiedUser("hash")
		m.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
		m.tokenService.EXPECT().NewOpaqueToken(32).Return("raw-reset-token", nil)
		m.tokenService.EXPECT().HashOpaqueToken("raw-reset-token").Return("hashed-reset-token")

		m.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				factory := mockRepo.NewMockRepositoryFactory(t)
				resetRepo := mockRepo.NewMockPasswordResetRepository(t)

				factory.EXPECT().PasswordResetRepo().Return(resetRepo)
				resetRepo.EXPECT().CreatePasswordReset(ctx, mock.AnythingOfType("*entity.PasswordReset")).
					Run(func(_ context.Context, reset *entity.PasswordReset) {
						assert.Equal(t, "user@example.com", reset.Email)
						assert.Equal(t, "hashed-reset-token", reset.TokenHash)
					}).Return(nil)

				return fn(factory)
			})

		m.mailSender.EXPECT().Send(ctx, mock.AnythingOfType("*service.Mail")).
			Run(func(_ context.Context, mail *service.Mail) {
				assert.Equal(t, "user@example.com", mail.To)
				assert.Contains(t, mail.HTML, "raw-reset-token")
			}).Return(nil)

		err := svc.ForgotPassword(ctx, "user@example.com")

		require.NoError(t, err)
	})
}

func TestAccountService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates credentials and revokes every session", func(t *testing.T) {
		svc, m := newAccountService(t, 0)

		user := verifiedUser("old-hash")
		record := &entity.PasswordReset{ID: uuid.New(), Email: user.Email, TokenHash: "hashed-reset-token"}

		m.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)
		m.tokenService.EXPECT().HashOpaqueToken("raw-reset-token").Return("hashed-reset-token")

		m.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				factory := mockRepo.NewMockRepositoryFactory(t)
				resetRepo := mockRepo.NewMockPasswordResetRepository(t)
				userRepo := mockRepo.NewMockUserRepository(t)
				refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
				activeRepo := mockRepo.NewMockActiveTokenRepository(t)

				factory.EXPECT().PasswordResetRepo().Return(resetRepo)
				factory.EXPECT().UserRepo().Return(userRepo)
				factory.EXPECT().RefreshTokenRepo().Return(refreshRepo)
				factory.EXPECT().ActiveTokenRepo().Return(activeRepo)

				resetRepo.EXPECT().FindPasswordReset(ctx, "hashed-reset-token", user.Email).Return(record, nil)
				userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
				userRepo.EXPECT().UpdatePassword(ctx, user.ID, "new-hash", mock.AnythingOfType("string")).
					Run(func(_ context.Context, _ uuid.UUID, _ string, credentialVersion string) {
						assert.Len(t, credentialVersion, 5)
						assert.NotEqual(t, user.CredentialVersion, credentialVersion)
					}).Return(user, nil)
				refreshRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, user.ID).Return(nil)
				activeRepo.EXPECT().DeleteActiveTokensByUserID(ctx, user.ID).Return(nil)
				resetRepo.EXPECT().DeletePasswordReset(ctx, record.ID).Return(nil)

				return fn(factory)
			})

		err := svc.ResetPassword(ctx, &usecase.ResetPasswordInput{
			Email:       user.Email,
			RawToken:    "raw-reset-token",
			NewPassword: "new-password",
		})

		require.NoError(t, err)
	})

	t.Run("unknown reset record", func(t *testing.T) {
		svc, m := newAccountService(t, 0)

		m.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)
		m.tokenService.EXPECT().HashOpaqueToken("raw-reset-token").Return("hashed-reset-token")

		m.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				factory := mockRepo.NewMockRepositoryFactory(t)
				resetRepo := mockRepo.NewMockPasswordResetRepository(t)

				factory.EXPECT().PasswordResetRepo().Return(resetRepo)
				factory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))
				resetRepo.EXPECT().FindPasswordReset(ctx, "hashed-reset-token", "user@example.com").
					Return(nil, repository.ErrPasswordResetNotFound)

				return fn(factory)
			})

		err := svc.ResetPassword(ctx, &usecase.ResetPasswordInput{
			Email:       "user@example.com",
			RawToken:    "raw-reset-token",
			NewPassword: "new-password",
		})

		require.ErrorIs(t, err, domainerrors.ErrResetRecordNotFound)
	})
}

func TestAccountService_OAuthCallback(t *testing.T) {
	ctx := context.Background()

	t.Run("failed exchange", func(t *testing.T) {
		svc, m := newAccountService(t, 0)

		m.googleOAuth.EXPECT().ExchangeCode(ctx, "bad-code", "verifier").
			Return(nil, assert.AnError)

		output, err := svc.OAuthCallback(ctx, entity.StrategyGoogle, "bad-code", "verifier", "")

		require.ErrorIs(t, err, domainerrors.ErrOAuthExchangeFailed)
		assert.Nil(t, output)
	})

	t.Run("first login provisions a verified account", func(t *testing.T) {
		svc, m := newAccountService(t, 0)

		m.githubOAuth.EXPECT().ExchangeCode(ctx, "code", "").
			Return(&service.OAuthUser{Email: "dev@example.com", Name: "Dev"}, nil)
		m.userRepo.EXPECT().FindByEmail(ctx, "dev@example.com").Return(nil, repository.ErrUserNotFound)

		createdID := uuid.New()
		m.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				factory := mockRepo.NewMockRepositoryFactory(t)
				userRepo := mockRepo.NewMockUserRepository(t)

				factory.EXPECT().UserRepo().Return(userRepo)
				userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
					Run(func(_ context.Context, user *entity.User) {
						user.ID = createdID
						assert.Equal(t, entity.StrategyGithub, user.Strategy)
						assert.True(t, user.IsVerified)
						assert.Empty(t, user.PasswordHash)
					}).Return(nil)

				return fn(factory)
			})

		m.sessionUsecase.EXPECT().IssueTokenPair(ctx, mock.AnythingOfType("*usecase.IssueTokenPairInput")).
			RunAndReturn(func(_ context.Context, input *usecase.IssueTokenPairInput) (*usecase.TokenPairOutput, error) {
				assert.Equal(t, createdID, input.UserID)

				return &usecase.TokenPairOutput{
					AccessToken:  "access",
					RefreshToken: "refresh",
					DeviceID:     "device-1",
				}, nil
			})

		output, err := svc.OAuthCallback(ctx, entity.StrategyGithub, "code", "", "")

		require.NoError(t, err)
		assert.Equal(t, "access", output.AccessToken)
		assert.Equal(t, createdID, output.User.ID)
	})
}
