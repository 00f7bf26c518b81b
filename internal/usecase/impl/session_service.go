// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

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

// sessionService implements the SessionUsecase interface. Issuance runs on the
// repositories directly, not inside a transaction: the steps are individually
// idempotent or harmless to repeat, and the worst partial-failure outcome is a
// prematurely revoked session that a fresh login repairs.
type sessionService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	activeTokenRepo  repository.ActiveTokenRepository
	tokenService     service.TokenService
	logger           *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	ActiveTokenRepo  repository.ActiveTokenRepository
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		activeTokenRepo:  params.ActiveTokenRepo,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueTokenPair runs the issuance sequence for logins and rotations.
func (srv *sessionService) IssueTokenPair(ctx context.Context, input *usecase.IssueTokenPairInput) (*usecase.TokenPairOutput, error) {
	// 1. Retire the refresh token being rotated. Best effort: a failure here
	// leaves a dangling row that expiry or the cleanup worker removes, and
	// must not block the user from getting new tokens.
	if input.OldTokenHash != "" {
		if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, input.OldTokenHash); err != nil {
			srv.log(ctx).Warn("Failed to delete rotated refresh token",
				slog.String("userID", input.UserID.String()),
				slog.Any("error", err))
		}
	}

	// 2. Resolve the device slot. Reusing a device revokes every access token
	// it still holds, so one device never accumulates live access tokens.
	deviceID := input.DeviceID
	if deviceID != "" {
		if err := srv.activeTokenRepo.DeleteActiveTokensByDeviceID(ctx, deviceID); err != nil {
			return nil, errors.Wrap(err, "failed to clear device access tokens")
		}
	} else {
		deviceID = uuid.New().String()
	}

	// 3. Sign the access token and persist its revocation handle.
	jti := uuid.New().String()
	accessToken, err := srv.tokenService.SignAccessToken(input.UserID, input.CredentialVersion, jti)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	if err := srv.activeTokenRepo.CreateActiveToken(ctx, &entity.ActiveToken{
		UserID:    input.UserID,
		JTI:       jti,
		DeviceID:  deviceID,
		ExpiresAt: time.Now().Add(srv.tokenService.ActiveTokenTTL()),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create active token")
	}

	// 4. Mint the replacement refresh token.
	pair, err := srv.tokenService.NewTokenPair()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    input.UserID,
		TokenHash: pair.Hashed,
		DeviceID:  deviceID,
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenTTL()),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token")
	}

	srv.log(ctx).Info("Issued token pair",
		slog.String("userID", input.UserID.String()),
		slog.String("deviceID", deviceID))

	return &usecase.TokenPairOutput{
		AccessToken:      accessToken,
		RefreshToken:     pair.Raw,
		RefreshTokenHash: pair.Hashed,
		DeviceID:         deviceID,
	}, nil
}

// AuthenticateRefreshToken resolves a raw refresh token to its record and owner.
func (srv *sessionService) AuthenticateRefreshToken(ctx context.Context, rawToken string) (*usecase.RefreshAuthOutput, error) {
	tokenHash := srv.tokenService.HashOpaqueToken(rawToken)

	token, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Row outlived its account. Treat like a revoked token and drop it.
			if delErr := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); delErr != nil {
				srv.log(ctx).Warn("Failed to delete orphaned refresh token", slog.Any("error", delErr))
			}

			return nil, domainerrors.ErrRefreshTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find token owner")
	}

	return &usecase.RefreshAuthOutput{User: user, Token: token}, nil
}

// EndSession terminates the session behind a raw refresh token. The record is
// read before deletion so the device blacklist wipe still knows which device
// to revoke.
func (srv *sessionService) EndSession(ctx context.Context, rawToken string) error {
	tokenHash := srv.tokenService.HashOpaqueToken(rawToken)

	token, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return domainerrors.ErrRefreshTokenNotFound
		}

		return errors.Wrap(err, "failed to find refresh token")
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		return errors.Wrap(err, "failed to delete refresh token")
	}

	if err := srv.activeTokenRepo.DeleteActiveTokensByDeviceID(ctx, token.DeviceID); err != nil {
		return errors.Wrap(err, "failed to revoke device access tokens")
	}

	srv.log(ctx).Info("Ended session",
		slog.String("userID", token.UserID.String()),
		slog.String("deviceID", token.DeviceID))

	return nil
}

// RevokeDevice revokes every outstanding access token of one device.
func (srv *sessionService) RevokeDevice(ctx context.Context, deviceID string) error {
	if err := srv.activeTokenRepo.DeleteActiveTokensByDeviceID(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to revoke device access tokens")
	}

	return nil
}

// RevokeAllSessions removes every refresh and active token of a user.
func (srv *sessionService) RevokeAllSessions(ctx context.Context, userID uuid.UUID) error {
	if err := srv.refreshTokenRepo.DeleteRefreshTokensByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete refresh tokens")
	}
	if err := srv.activeTokenRepo.DeleteActiveTokensByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete active tokens")
	}

	srv.log(ctx).Info("Revoked all sessions", slog.String("userID", userID.String()))

	return nil
}

// IsTokenBlacklisted reports whether an access token's jti has been revoked.
func (srv *sessionService) IsTokenBlacklisted(ctx context.Context, jti string) (bool, error) {
	_, err := srv.activeTokenRepo.FindActiveTokenByJTI(ctx, jti)
	if err != nil {
		if errors.Is(err, repository.ErrActiveTokenNotFound) {
			return true, nil
		}

		return false, errors.Wrap(err, "failed to check active token")
	}

	return false, nil
}

// GetActiveSessions lists a user's live device sessions, newest first.
func (srv *sessionService) GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.SessionInfo, error) {
	tokens, err := srv.refreshTokenRepo.FindRefreshTokensByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find refresh tokens")
	}

	now := time.Now()
	sessions := make([]*entity.SessionInfo, 0, len(tokens))
	for _, token := range tokens {
		sessions = append(sessions, &entity.SessionInfo{
			ID:        token.ID,
			UserID:    token.UserID,
			DeviceID:  token.DeviceID,
			CreatedAt: token.CreatedAt,
			ExpiresAt: token.ExpiresAt,
			IsActive:  token.ExpiresAt.After(now),
		})
	}

	return sessions, nil
}
