package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"keygate/config"
	deliverycontext "keygate/internal/delivery/context"
	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/repository"
	"keygate/internal/domain/service"
	"keygate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	verificationCodeTTL = 10 * time.Minute
	passwordResetTTL    = time.Hour

	verificationCodeLength  = 8
	credentialVersionLength = 5
	resetTokenBytes         = 32
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	sessionUsecase    usecase.SessionUsecase
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	mailSender        service.MailSender
	oauthProviders    map[entity.Strategy]service.OAuthProvider
	clientBaseURL     string
	maxActiveSessions int
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	SessionUsecase   usecase.SessionUsecase
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	MailSender       service.MailSender
	GitHubOAuth      service.OAuthProvider `name:"githubOAuth"`
	GoogleOAuth      service.OAuthProvider `name:"googleOAuth"`
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		sessionUsecase:   params.SessionUsecase,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		mailSender:       params.MailSender,
		oauthProviders: map[entity.Strategy]service.OAuthProvider{
			params.GitHubOAuth.Strategy(): params.GitHubOAuth,
			params.GoogleOAuth.Strategy(): params.GoogleOAuth,
		},
		clientBaseURL:     params.Config.Client.BaseURL,
		maxActiveSessions: params.Config.Auth.MaxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a pending account and emails it a verification code.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	credentialVersion, err := randomString(credentialVersionLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate credential version")
	}

	code, err := randomString(verificationCodeLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}

	user := &entity.User{
		Email:             input.Email,
		Username:          input.Username,
		Strategy:          entity.StrategyDefault,
		PasswordHash:      passwordHash,
		CredentialVersion: credentialVersion,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		codeRepo := repoFactory.VerificationCodeRepo()

		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrEmailTaken
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email")
		}

		if _, err := userRepo.FindByUsername(ctx, input.Username); err == nil {
			return domainerrors.ErrUsernameTaken
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return codeRepo.CreateVerificationCode(ctx, &entity.VerificationCode{
			UserID:    user.ID,
			Code:      code,
			ExpiresAt: time.Now().Add(verificationCodeTTL),
		})
	})
	if err != nil {
		return nil, err
	}

	if err := srv.mailSender.Send(ctx, verificationMail(user.Email, code)); err != nil {
		return nil, errors.Wrap(err, "failed to send verification mail")
	}

	srv.log(ctx).Info("Signup completed", slog.String("userID", user.ID.String()))

	return &usecase.SignupOutput{UserID: user.ID, Email: user.Email}, nil
}

// VerifyEmail consumes a verification code and activates the account.
func (srv *accountService) VerifyEmail(ctx context.Context, userID uuid.UUID, code string) (*usecase.AuthOutput, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.VerificationCodeRepo()
		userRepo := repoFactory.UserRepo()

		if _, err := codeRepo.ConsumeVerificationCode(ctx, userID, code); err != nil {
			if errors.Is(err, repository.ErrVerificationCodeNotFound) {
				return domainerrors.ErrVerificationCodeInvalid
			}

			return errors.Wrap(err, "failed to consume verification code")
		}

		verified, err := userRepo.MarkVerified(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to mark user verified")
		}
		user = verified

		return nil
	})
	if err != nil {
		return nil, err
	}

	return srv.issueFor(ctx, user, "", "")
}

// ResendVerificationCode invalidates prior codes and emails a new one.
func (srv *accountService) ResendVerificationCode(ctx context.Context, userID uuid.UUID) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}
	if user.IsVerified {
		return domainerrors.ErrAccountAlreadyVerified
	}

	code, err := randomString(verificationCodeLength)
	if err != nil {
		return errors.Wrap(err, "failed to generate verification code")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.VerificationCodeRepo()

		if err := codeRepo.DeleteVerificationCodesByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete old verification codes")
		}

		return codeRepo.CreateVerificationCode(ctx, &entity.VerificationCode{
			UserID:    userID,
			Code:      code,
			ExpiresAt: time.Now().Add(verificationCodeTTL),
		})
	})
	if err != nil {
		return err
	}

	if err := srv.mailSender.Send(ctx, verificationMail(user.Email, code)); err != nil {
		return errors.Wrap(err, "failed to send verification mail")
	}

	return nil
}

// Login authenticates an email-or-username identity with a password.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.findByIdentity(ctx, input.Identity)
	if err != nil {
		return nil, err
	}

	if !user.IsVerified {
		return nil, domainerrors.ErrAccountNotVerified
	}
	// OAuth-provisioned accounts carry no password; their identity lives with
	// the provider, so a password login surfaces as a missing account.
	if !user.HasPassword() {
		return nil, domainerrors.ErrAccountNotFound
	}
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	oldTokenHash, deviceID := srv.resolveOldSession(ctx, user.ID, input.OldRefreshToken)

	if deviceID == "" && srv.maxActiveSessions > 0 {
		count, err := srv.refreshTokenRepo.CountActiveSessionsByUserID(ctx, user.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count active sessions")
		}
		if count >= srv.maxActiveSessions {
			return nil, domainerrors.ErrSessionLimitExceeded
		}
	}

	return srv.issueFor(ctx, user, oldTokenHash, deviceID)
}

// Refresh rotates a presented refresh token into a fresh pair.
func (srv *accountService) Refresh(ctx context.Context, rawRefreshToken string) (*usecase.AuthOutput, error) {
	auth, err := srv.sessionUsecase.AuthenticateRefreshToken(ctx, rawRefreshToken)
	if err != nil {
		return nil, err
	}

	return srv.issueFor(ctx, auth.User, auth.Token.TokenHash, auth.Token.DeviceID)
}

// Logout ends the session behind a refresh token.
func (srv *accountService) Logout(ctx context.Context, rawRefreshToken string) error {
	return srv.sessionUsecase.EndSession(ctx, rawRefreshToken)
}

// ForgotPassword issues a reset token and mails the reset link.
func (srv *accountService) ForgotPassword(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}
	if !user.IsVerified {
		return domainerrors.ErrAccountNotFound
	}

	rawToken, err := srv.tokenService.NewOpaqueToken(resetTokenBytes)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.PasswordResetRepo().CreatePasswordReset(ctx, &entity.PasswordReset{
			Email:     email,
			TokenHash: srv.tokenService.HashOpaqueToken(rawToken),
			ExpiresAt: time.Now().Add(passwordResetTTL),
		})
	})
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s&email=%s", srv.clientBaseURL, rawToken, email)
	if err := srv.mailSender.Send(ctx, resetMail(email, link)); err != nil {
		return errors.Wrap(err, "failed to send reset mail")
	}

	srv.log(ctx).Info("Issued password reset", slog.String("userID", user.ID.String()))

	return nil
}

// ResetPassword consumes a reset token, replaces the password, and rotates the
// credential version. The token deletes run in the same transaction, so a
// successful reset always logs the account out everywhere.
func (srv *accountService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	credentialVersion, err := randomString(credentialVersionLength)
	if err != nil {
		return errors.Wrap(err, "failed to generate credential version")
	}

	tokenHash := srv.tokenService.HashOpaqueToken(input.RawToken)

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resetRepo := repoFactory.PasswordResetRepo()
		userRepo := repoFactory.UserRepo()

		record, err := resetRepo.FindPasswordReset(ctx, tokenHash, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrPasswordResetNotFound) {
				return domainerrors.ErrResetRecordNotFound
			}

			return errors.Wrap(err, "failed to find reset record")
		}

		user, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		if _, err := userRepo.UpdatePassword(ctx, user.ID, passwordHash, credentialVersion); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		if err := repoFactory.RefreshTokenRepo().DeleteRefreshTokensByUserID(ctx, user.ID); err != nil {
			return errors.Wrap(err, "failed to delete refresh tokens")
		}
		if err := repoFactory.ActiveTokenRepo().DeleteActiveTokensByUserID(ctx, user.ID); err != nil {
			return errors.Wrap(err, "failed to delete active tokens")
		}

		return resetRepo.DeletePasswordReset(ctx, record.ID)
	})
}

// GetAuthUser loads the account behind a verified access token.
func (srv *accountService) GetAuthUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// OAuthAuthorizationURL builds the provider consent URL for a login attempt.
func (srv *accountService) OAuthAuthorizationURL(strategy entity.Strategy, state, codeVerifier string) (string, error) {
	provider, ok := srv.oauthProviders[strategy]
	if !ok {
		return "", errors.Errorf("unknown oauth strategy: %s", strategy)
	}

	return provider.AuthorizationURL(state, codeVerifier), nil
}

// OAuthCallback exchanges an authorization code, provisions the account on
// first login, and issues a token pair.
func (srv *accountService) OAuthCallback(ctx context.Context, strategy entity.Strategy, code, codeVerifier, oldRefreshToken string) (*usecase.AuthOutput, error) {
	provider, ok := srv.oauthProviders[strategy]
	if !ok {
		return nil, errors.Errorf("unknown oauth strategy: %s", strategy)
	}

	oauthUser, err := provider.ExchangeCode(ctx, code, codeVerifier)
	if err != nil {
		srv.log(ctx).Warn("OAuth exchange failed", slog.String("strategy", string(strategy)), slog.Any("error", err))

		return nil, domainerrors.ErrOAuthExchangeFailed
	}

	user, err := srv.findOrProvisionOAuthUser(ctx, strategy, oauthUser)
	if err != nil {
		return nil, err
	}

	oldTokenHash, deviceID := srv.resolveOldSession(ctx, user.ID, oldRefreshToken)

	return srv.issueFor(ctx, user, oldTokenHash, deviceID)
}

// findOrProvisionOAuthUser returns the account matching the provider email,
// creating a verified one on first login.
func (srv *accountService) findOrProvisionOAuthUser(ctx context.Context, strategy entity.Strategy, oauthUser *service.OAuthUser) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, oauthUser.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user")
	}

	username, err := usernameFromEmail(oauthUser.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive username")
	}

	credentialVersion, err := randomString(credentialVersionLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate credential version")
	}

	user = &entity.User{
		Email:             oauthUser.Email,
		Username:          username,
		Strategy:          strategy,
		CredentialVersion: credentialVersion,
		IsVerified:        true,
		IsActive:          true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Provisioned OAuth account",
		slog.String("userID", user.ID.String()),
		slog.String("strategy", string(strategy)))

	return user, nil
}

// findByIdentity resolves a login identity: an email when it contains "@",
// otherwise a username.
func (srv *accountService) findByIdentity(ctx context.Context, identity string) (*entity.User, error) {
	var (
		user *entity.User
		err  error
	)
	if strings.Contains(identity, "@") {
		user, err = srv.userRepo.FindByEmail(ctx, identity)
	} else {
		user, err = srv.userRepo.FindByUsername(ctx, identity)
	}
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// resolveOldSession maps a raw refresh token presented alongside a login to
// the rotation inputs. An unknown, expired, or foreign token is ignored and
// the login proceeds on a fresh device slot.
func (srv *accountService) resolveOldSession(ctx context.Context, userID uuid.UUID, oldRefreshToken string) (oldTokenHash, deviceID string) {
	if oldRefreshToken == "" {
		return "", ""
	}

	auth, err := srv.sessionUsecase.AuthenticateRefreshToken(ctx, oldRefreshToken)
	if err != nil || auth.User.ID != userID {
		return "", ""
	}

	return auth.Token.TokenHash, auth.Token.DeviceID
}

// issueFor wraps token issuance into the flow-level auth output.
func (srv *accountService) issueFor(ctx context.Context, user *entity.User, oldTokenHash, deviceID string) (*usecase.AuthOutput, error) {
	pair, err := srv.sessionUsecase.IssueTokenPair(ctx, &usecase.IssueTokenPairInput{
		UserID:            user.ID,
		CredentialVersion: user.CredentialVersion,
		OldTokenHash:      oldTokenHash,
		DeviceID:          deviceID,
	})
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		DeviceID:     pair.DeviceID,
	}, nil
}
