package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"keygate/config"
	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/repository"
	"keygate/internal/domain/service"
	"keygate/internal/infra/auth"
	mockRepo "keygate/internal/mocks/repository"
	"keygate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// In-memory stores standing in for the gorm repositories, so the lifecycle
// tests below can drive the real issuance/rotation/revocation sequence across
// multiple calls instead of scripting one call's expectations.

type fakeRefreshTokenStore struct {
	mu       sync.Mutex
	rows     map[string]*entity.RefreshToken
	removals map[string]int
}

func newFakeRefreshTokenStore() *fakeRefreshTokenStore {
	return &fakeRefreshTokenStore{
		rows:     make(map[string]*entity.RefreshToken),
		removals: make(map[string]int),
	}
}

func (s *fakeRefreshTokenStore) CreateRefreshToken(_ context.Context, token *entity.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *token
	clone.ID = uuid.New()
	s.rows[token.TokenHash] = &clone

	return nil
}

func (s *fakeRefreshTokenStore) FindRefreshTokenByHash(_ context.Context, tokenHash string) (*entity.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[tokenHash]
	if !ok || time.Now().After(row.ExpiresAt) {
		return nil, repository.ErrRefreshTokenNotFound
	}

	clone := *row

	return &clone, nil
}

func (s *fakeRefreshTokenStore) DeleteRefreshTokenByHash(_ context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[tokenHash]; ok {
		delete(s.rows, tokenHash)
		s.removals[tokenHash]++
	}

	return nil
}

func (s *fakeRefreshTokenStore) FindRefreshTokensByUserID(_ context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tokens []*entity.RefreshToken
	for _, row := range s.rows {
		if row.UserID == userID && time.Now().Before(row.ExpiresAt) {
			clone := *row
			tokens = append(tokens, &clone)
		}
	}

	return tokens, nil
}

func (s *fakeRefreshTokenStore) DeleteRefreshTokensByUserID(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for hash, row := range s.rows {
		if row.UserID == userID {
			delete(s.rows, hash)
		}
	}

	return nil
}

func (s *fakeRefreshTokenStore) DeleteExpiredRefreshTokens(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for hash, row := range s.rows {
		if time.Now().After(row.ExpiresAt) {
			delete(s.rows, hash)
		}
	}

	return nil
}

func (s *fakeRefreshTokenStore) CountActiveSessionsByUserID(_ context.Context, userID uuid.UUID) (int, error) {
	tokens, _ := s.FindRefreshTokensByUserID(context.Background(), userID)

	return len(tokens), nil
}

// removalCount reports how many times a delete actually removed the row with
// this hash, as opposed to hitting an already-absent one.
func (s *fakeRefreshTokenStore) removalCount(tokenHash string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removals[tokenHash]
}

type fakeActiveTokenStore struct {
	mu   sync.Mutex
	rows map[string]*entity.ActiveToken
}

func newFakeActiveTokenStore() *fakeActiveTokenStore {
	return &fakeActiveTokenStore{rows: make(map[string]*entity.ActiveToken)}
}

func (s *fakeActiveTokenStore) CreateActiveToken(_ context.Context, token *entity.ActiveToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *token
	clone.ID = uuid.New()
	s.rows[token.JTI] = &clone

	return nil
}

func (s *fakeActiveTokenStore) FindActiveTokenByJTI(_ context.Context, jti string) (*entity.ActiveToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[jti]
	if !ok || time.Now().After(row.ExpiresAt) {
		return nil, repository.ErrActiveTokenNotFound
	}

	clone := *row

	return &clone, nil
}

func (s *fakeActiveTokenStore) DeleteActiveTokensByDeviceID(_ context.Context, deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for jti, row := range s.rows {
		if row.DeviceID == deviceID {
			delete(s.rows, jti)
		}
	}

	return nil
}

func (s *fakeActiveTokenStore) DeleteActiveTokensByUserID(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for jti, row := range s.rows {
		if row.UserID == userID {
			delete(s.rows, jti)
		}
	}

	return nil
}

func (s *fakeActiveTokenStore) DeleteExpiredActiveTokens(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for jti, row := range s.rows {
		if time.Now().After(row.ExpiresAt) {
			delete(s.rows, jti)
		}
	}

	return nil
}

type sessionLifecycle struct {
	svc          usecase.SessionUsecase
	tokenSvc     service.TokenService
	refreshStore *fakeRefreshTokenStore
	activeStore  *fakeActiveTokenStore
	user         *entity.User
}

func newSessionLifecycle(t *testing.T) *sessionLifecycle {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "lifecycle-secret"
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	user := &entity.User{
		ID:                uuid.New(),
		Email:             "jane@example.com",
		Username:          "jane",
		CredentialVersion: "v1abc",
	}

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil).Maybe()

	refreshStore := newFakeRefreshTokenStore()
	activeStore := newFakeActiveTokenStore()

	svc := NewSessionService(SessionServiceParams{
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshStore,
		ActiveTokenRepo:  activeStore,
		TokenService:     tokenSvc,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &sessionLifecycle{
		svc:          svc,
		tokenSvc:     tokenSvc,
		refreshStore: refreshStore,
		activeStore:  activeStore,
		user:         user,
	}
}

func (l *sessionLifecycle) login(t *testing.T) *usecase.TokenPairOutput {
	t.Helper()

	out, err := l.svc.IssueTokenPair(context.Background(), &usecase.IssueTokenPairInput{
		UserID:            l.user.ID,
		CredentialVersion: l.user.CredentialVersion,
	})
	require.NoError(t, err)

	return out
}

// jtiOf extracts the revocation handle embedded in an access token.
func (l *sessionLifecycle) jtiOf(t *testing.T, accessToken string) string {
	t.Helper()

	claims, err := l.tokenSvc.VerifyAccessToken(accessToken)
	require.NoError(t, err)

	return claims.JTI
}

func TestSessionLifecycle_LogoutRevokesOnlyThatDevice(t *testing.T) {
	ctx := context.Background()
	l := newSessionLifecycle(t)

	device1 := l.login(t)
	device2 := l.login(t)
	require.NotEqual(t, device1.DeviceID, device2.DeviceID)

	require.NoError(t, l.svc.EndSession(ctx, device1.RefreshToken))

	revoked, err := l.svc.IsTokenBlacklisted(ctx, l.jtiOf(t, device1.AccessToken))
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = l.svc.IsTokenBlacklisted(ctx, l.jtiOf(t, device2.AccessToken))
	require.NoError(t, err)
	assert.False(t, revoked)

	// Device 2's refresh token still rotates normally.
	_, err = l.svc.AuthenticateRefreshToken(ctx, device2.RefreshToken)
	require.NoError(t, err)

	_, err = l.svc.AuthenticateRefreshToken(ctx, device1.RefreshToken)
	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenNotFound)
}

func TestSessionLifecycle_RotationRetiresPriorPair(t *testing.T) {
	ctx := context.Background()
	l := newSessionLifecycle(t)

	first := l.login(t)

	authed, err := l.svc.AuthenticateRefreshToken(ctx, first.RefreshToken)
	require.NoError(t, err)

	second, err := l.svc.IssueTokenPair(ctx, &usecase.IssueTokenPairInput{
		UserID:            authed.User.ID,
		CredentialVersion: authed.User.CredentialVersion,
		OldTokenHash:      authed.Token.TokenHash,
		DeviceID:          authed.Token.DeviceID,
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.AccessToken, second.AccessToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.Equal(t, first.DeviceID, second.DeviceID)

	// The consumed refresh token is gone; replaying it must fail.
	_, err = l.svc.AuthenticateRefreshToken(ctx, first.RefreshToken)
	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenNotFound)

	// The device wipe revoked the first access token; the new one is live.
	revoked, err := l.svc.IsTokenBlacklisted(ctx, l.jtiOf(t, first.AccessToken))
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = l.svc.IsTokenBlacklisted(ctx, l.jtiOf(t, second.AccessToken))
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestSessionLifecycle_ConcurrentRotationsOfOneToken(t *testing.T) {
	ctx := context.Background()
	l := newSessionLifecycle(t)

	first := l.login(t)

	input := &usecase.IssueTokenPairInput{
		UserID:            l.user.ID,
		CredentialVersion: l.user.CredentialVersion,
		OldTokenHash:      first.RefreshTokenHash,
		DeviceID:          first.DeviceID,
	}

	outputs := make([]*usecase.TokenPairOutput, 2)
	errs := make([]error, 2)

	var wg sync.WaitGroup
	for i := range outputs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outputs[i], errs[i] = l.svc.IssueTokenPair(ctx, input)
		}()
	}
	wg.Wait()

	// Both rotations mint a session; the retired row was observed by exactly
	// one of them.
	for i := range outputs {
		require.NoError(t, errs[i])
		require.NotNil(t, outputs[i])
	}
	assert.NotEqual(t, outputs[0].RefreshTokenHash, outputs[1].RefreshTokenHash)
	assert.Equal(t, 1, l.refreshStore.removalCount(first.RefreshTokenHash))

	for _, out := range outputs {
		_, err := l.refreshStore.FindRefreshTokenByHash(ctx, out.RefreshTokenHash)
		require.NoError(t, err)
	}
}
