package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/repository"
	"keygate/internal/domain/service"
	mockRepo "keygate/internal/mocks/repository"
	mockService "keygate/internal/mocks/service"
	"keygate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceMocks struct {
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	activeTokenRepo  *mockRepo.MockActiveTokenRepository
	tokenService     *mockService.MockTokenService
}

func newSessionService(t *testing.T) (usecase.SessionUsecase, *sessionServiceMocks) {
	t.Helper()

	m := &sessionServiceMocks{
		userRepo:         mockRepo.NewMockUserRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		activeTokenRepo:  mockRepo.NewMockActiveTokenRepository(t),
		tokenService:     mockService.NewMockTokenService(t),
	}

	svc := NewSessionService(SessionServiceParams{
		UserRepo:         m.userRepo,
		RefreshTokenRepo: m.refreshTokenRepo,
		ActiveTokenRepo:  m.activeTokenRepo,
		TokenService:     m.tokenService,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, m
}

func TestSessionService_IssueTokenPair_FreshDevice(t *testing.T) {
	ctx := context.Background()
	svc, m := newSessionService(t)

	userID := uuid.New()

	m.tokenService.EXPECT().SignAccessToken(userID, "v1abc", mock.AnythingOfType("string")).Return("signed-access-token", nil)
	m.tokenService.EXPECT().ActiveTokenTTL().Return(16 * time.Minute)
	m.tokenService.EXPECT().RefreshTokenTTL().Return(7 * 24 * time.Hour)
	m.tokenService.EXPECT().NewTokenPair().Return(&service.TokenPair{Raw: "raw-refresh", Hashed: "hashed-refresh"}, nil)

	var issuedDeviceID string
	m.activeTokenRepo.EXPECT().CreateActiveToken(ctx, mock.AnythingOfType("*entity.ActiveToken")).
		Run(func(_ context.Context, token *entity.ActiveToken) {
			issuedDeviceID = token.DeviceID
			assert.Equal(t, userID, token.UserID)
			assert.NotEmpty(t, token.JTI)
			assert.True(t, token.ExpiresAt.After(time.Now()))
		}).Return(nil)
	m.refreshTokenRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(_ context.Context, token *entity.RefreshToken) {
			assert.Equal(t, userID, token.UserID)
			assert.Equal(t, "hashed-refresh", token.TokenHash)
			assert.Equal(t, issuedDeviceID, token.DeviceID)
		}).Return(nil)

	output, err := svc.IssueTokenPair(ctx, &usecase.IssueTokenPairInput{
		UserID:            userID,
		CredentialVersion: "v1abc",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-access-token", output.AccessToken)
	assert.Equal(t, "raw-refresh", output.RefreshToken)
	assert.Equal(t, "hashed-refresh", output.RefreshTokenHash)
	assert.NotEmpty(t, output.DeviceID)
	assert.Equal(t, issuedDeviceID, output.DeviceID)
}

func TestSessionService_IssueTokenPair_RotationReusesDevice(t *testing.T) {
	ctx := context.Background()
	svc, m := newSessionService(t)

	userID := uuid.New()
	deviceID := uuid.New().String()

	// Rotation retires the old token and wipes the device's access tokens.
	m.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "old-hash").Return(nil)
	m.activeTokenRepo.EXPECT().DeleteActiveTokensByDeviceID(ctx, deviceID).Return(nil)

	m.tokenService.EXPECT().SignAccessToken(userID, "v1abc", mock.AnythingOfType("string")).Return("signed-access-token", nil)
	m.tokenService.EXPECT().ActiveTokenTTL().Return(16 * time.Minute)
	m.tokenService.EXPECT().RefreshTokenTTL().Return(7 * 24 * time.Hour)
	m.tokenService.EXPECT().NewTokenPair().Return(&service.TokenPair{Raw: "raw-refresh", Hashed: "hashed-refresh"}, nil)

	m.activeTokenRepo.EXPECT().CreateActiveToken(ctx, mock.AnythingOfType("*entity.ActiveToken")).
		Run(func(_ context.Context, token *entity.ActiveToken) {
			assert.Equal(t, deviceID, token.DeviceID)
		}).Return(nil)
	m.refreshTokenRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(_ context.Context, token *entity.RefreshToken) {
			assert.Equal(t, deviceID, token.DeviceID)
		}).Return(nil)

	output, err := svc.IssueTokenPair(ctx, &usecase.IssueTokenPairInput{
		UserID:            userID,
		CredentialVersion: "v1abc",
		OldTokenHash:      "old-hash",
		DeviceID:          deviceID,
	})

	require.NoError(t, err)
	assert.Equal(t, deviceID, output.DeviceID)
}

func TestSessionService_IssueTokenPair_OldTokenDeleteFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	svc, m := newSessionService(t)

	userID := uuid.New()

	// Step one is best effort: a failed delete must not block issuance.
	m.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "old-hash").Return(errors.New("db down"))

	m.tokenService.EXPECT().SignAccessToken(userID, "v1abc", mock.AnythingOfType("string")).Return("signed-access-token", nil)
	m.tokenService.EXPECT().ActiveTokenTTL().Return(16 * time.Minute)
	m.tokenService.EXPECT().RefreshTokenTTL().Return(7 * 24 * time.Hour)
	m.tokenService.EXPECT().NewTokenPair().Return(&service.TokenPair{Raw: "raw-refresh", Hashed: "hashed-refresh"}, nil)
	m.activeTokenRepo.EXPECT().CreateActiveToken(ctx, mock.AnythingOfType("*entity.ActiveToken")).Return(nil)
	m.refreshTokenRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	output, err := svc.IssueTokenPair(ctx, &usecase.IssueTokenPairInput{
		UserID:            userID,
		CredentialVersion: "v1abc",
		OldTokenHash:      "old-hash",
	})

	require.NoError(t, err)
	assert.Equal(t, "raw-refresh", output.RefreshToken)
}

func TestSessionService_IssueTokenPair_DeviceWipeFailure(t *testing.T) {
	ctx := context.Background()
	svc, m := newSessionService(t)

	deviceID := uuid.New().String()

	m.activeTokenRepo.EXPECT().DeleteActiveTokensByDeviceID(ctx, deviceID).Return(errors.New("db down"))

	output, err := svc.IssueTokenPair(ctx, &usecase.IssueTokenPairInput{
		UserID:            uuid.New(),
		CredentialVersion: "v1abc",
		DeviceID:          deviceID,
	})

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestSessionService_AuthenticateRefreshToken_Success(t *testing.T) {
	ctx := context.Background()
	svc, m := newSessionService(t)

	userID := uuid.New()
	storedToken := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: "hashed-refresh",
		DeviceID:  uuid.New().String(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	user := &entity.User{ID: userID, Email: "user@example.com", IsVerified: true}

	m.tokenService.EXPECT().HashOpaqueToken("raw-refresh").Return("hashed-refresh")
	m.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "hashed-refresh").Return(storedToken, nil)
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	output, err := svc.AuthenticateRefreshToken(ctx, "raw-refresh")

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, storedToken, output.Token)
}

func TestSessionService_AuthenticateRefreshToken_UnknownToken(t *testing.T) {
	ctx := context.Background()
	svc, m := newSessionService(t)

	m.tokenService.EXPECT().HashOpaqueToken("raw-refresh").Return("hashed-refresh")
	m.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "hashed-refresh").Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := svc.AuthenticateRefreshToken(ctx, "raw-refresh")

	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenNotFound)
	assert.Nil(t, output)
}

func TestSessionService_AuthenticateRefreshToken_OrphanedToken(t *testing.T) {
	ctx := context.Background()
	svc, m := newSessionService(t)

	userID := uuid.New()
	storedToken := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: "hashed-refresh",
		DeviceID:  uuid.New().String(),
	}

	m.tokenService.EXPECT().HashOpaqueToken("raw-refresh").Return("hashed-refresh")
	m.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "hashed-refresh").Return(storedToken, nil)
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	// A token whose account is gone gets dropped on sight.
	m.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "hashed-refresh").Return(nil)

	output, err := svc.AuthenticateRefreshToken(ctx, "raw-refresh")

	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenNotFound)
	assert.Nil(t, output)
}

func TestSessionService_EndSession_RevokesDeviceTokens(t *testing.T) {
	ctx := context.Background()
	svc, m := newSessionService(t)

	deviceID := uuid.New().String()
	storedToken := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		TokenHash: "hashed-refresh",
		DeviceID:  deviceID,
	}

	m.tokenService.EXPECT().HashOpaqueToken("raw-refresh").Return("hashed-refresh")
	m.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "hashed-refresh").Return(storedToken, nil)
	m.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "hashed-refresh").Return(nil)
	m.activeTokenRepo.EXPECT().DeleteActiveTokensByDeviceID(ctx, deviceID).Return(nil)

	err := svc.EndSession(ctx, "raw-refresh")

	require.NoError(t, err)
}

func TestSessionService_EndSession_UnknownToken(t *testing.T) {
	ctx := context.Background()
	svc, m := newSessionService(t)

	m.tokenService.EXPECT().HashOpaqueToken("raw-refresh").Return("hashed-refresh")
	m.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "hashed-refresh").Return(nil, repository.ErrRefreshTokenNotFound)

	err := svc.EndSession(ctx, "raw-refresh")

	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenNotFound)
}

func TestSessionService_RevokeDevice(t *testing.T) {
	ctx := context.Background()
	svc, m := newSessionService(t)

	m.activeTokenRepo.EXPECT().DeleteActiveTokensByDeviceID(ctx, "device-1").Return(nil)

	err := svc.RevokeDevice(ctx, "device-1")

	require.NoError(t, err)
}

func TestSessionService_RevokeAllSessions(t *testing.T) {
	ctx := context.Background()
	svc, m := newSessionService(t)

	userID := uuid.New()

	m.refreshTokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)
	m.activeTokenRepo.EXPECT().DeleteActiveTokensByUserID(ctx, userID).Return(nil)

	err := svc.RevokeAllSessions(ctx, userID)

	require.NoError(t, err)
}

func TestSessionService_IsTokenBlacklisted(t *testing.T) {
	ctx := context.Background()

	t.Run("live row means not blacklisted", func(t *testing.T) {
		svc, m := newSessionService(t)

		m.activeTokenRepo.EXPECT().FindActiveTokenByJTI(ctx, "jti-live").Return(&entity.ActiveToken{JTI: "jti-live"}, nil)

		blacklisted, err := svc.IsTokenBlacklisted(ctx, "jti-live")

		require.NoError(t, err)
		assert.False(t, blacklisted)
	})

	t.Run("missing row means blacklisted", func(t *testing.T) {
		svc, m := newSessionService(t)

		m.activeTokenRepo.EXPECT().FindActiveTokenByJTI(ctx, "jti-gone").Return(nil, repository.ErrActiveTokenNotFound)

		blacklisted, err := svc.IsTokenBlacklisted(ctx, "jti-gone")

		require.NoError(t, err)
		assert.True(t, blacklisted)
	})

	t.Run("lookup failure is an error, not a revocation", func(t *testing.T) {
		svc, m := newSessionService(t)

		m.activeTokenRepo.EXPECT().FindActiveTokenByJTI(ctx, "jti-x").Return(nil, errors.New("db down"))

		blacklisted, err := svc.IsTokenBlacklisted(ctx, "jti-x")

		require.Error(t, err)
		assert.False(t, blacklisted)
	})
}

func TestSessionService_GetActiveSessions(t *testing.T) {
	ctx := context.Background()
	svc, m := newSessionService(t)

	userID := uuid.New()
	now := time.Now()
	tokens := []*entity.RefreshToken{
		{ID: uuid.New(), UserID: userID, DeviceID: "device-a", CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
		{ID: uuid.New(), UserID: userID, DeviceID: "device-b", CreatedAt: now.Add(-time.Hour), ExpiresAt: now.Add(30 * time.Minute)},
	}

	m.refreshTokenRepo.EXPECT().FindRefreshTokensByUserID(ctx, userID).Return(tokens, nil)

	sessions, err := svc.GetActiveSessions(ctx, userID)

	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "device-a", sessions[0].DeviceID)
	assert.Equal(t, "device-b", sessions[1].DeviceID)
	assert.True(t, sessions[0].IsActive)
}
