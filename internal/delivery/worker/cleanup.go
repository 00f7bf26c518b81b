// Package worker hosts background jobs managed by the application lifecycle.
package worker

import (
	"context"
	"log/slog"

	"keygate/config"
	"keygate/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// CleanupWorker periodically sweeps expired rows out of the token tables.
// Expired rows are already treated as absent by every read path; the sweep
// only keeps the tables from growing without bound.
type CleanupWorker struct {
	refreshTokenRepo     repository.RefreshTokenRepository
	activeTokenRepo      repository.ActiveTokenRepository
	passwordResetRepo    repository.PasswordResetRepository
	verificationCodeRepo repository.VerificationCodeRepository
	schedule             string
	cron                 *cron.Cron
	logger               *slog.Logger
}

// CleanupWorkerParams holds dependencies for CleanupWorker, injected by Fx.
type CleanupWorkerParams struct {
	fx.In
	fx.Lifecycle

	RefreshTokenRepo     repository.RefreshTokenRepository
	ActiveTokenRepo      repository.ActiveTokenRepository
	PasswordResetRepo    repository.PasswordResetRepository
	VerificationCodeRepo repository.VerificationCodeRepository
	Config               *config.Config
	Logger               *slog.Logger
}

// NewCleanupWorker builds the worker and registers its lifecycle hooks.
func NewCleanupWorker(params CleanupWorkerParams) (*CleanupWorker, error) {
	worker := &CleanupWorker{
		refreshTokenRepo:     params.RefreshTokenRepo,
		activeTokenRepo:      params.ActiveTokenRepo,
		passwordResetRepo:    params.PasswordResetRepo,
		verificationCodeRepo: params.VerificationCodeRepo,
		schedule:             params.Config.Cleanup.Schedule,
		cron:                 cron.New(),
		logger:               params.Logger,
	}

	if _, err := worker.cron.AddFunc(worker.schedule, worker.sweep); err != nil {
		return nil, errors.Wrapf(err, "invalid cleanup schedule %q", worker.schedule)
	}

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			worker.cron.Start()
			worker.logger.Info("Cleanup worker started", slog.String("schedule", worker.schedule))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopped := worker.cron.Stop()
			select {
			case <-stopped.Done():
			case <-ctx.Done():
			}

			return nil
		},
	})

	return worker, nil
}

func (w *CleanupWorker) sweep() {
	ctx := context.Background()

	sweeps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"refresh_tokens", w.refreshTokenRepo.DeleteExpiredRefreshTokens},
		{"active_tokens", w.activeTokenRepo.DeleteExpiredActiveTokens},
		{"password_resets", w.passwordResetRepo.DeleteExpiredPasswordResets},
		{"verification_codes", w.verificationCodeRepo.DeleteExpiredVerificationCodes},
	}

	for _, sweep := range sweeps {
		if err := sweep.fn(ctx); err != nil {
			w.logger.Error("Cleanup sweep failed",
				slog.String("table", sweep.name),
				slog.Any("error", err))
		}
	}

	w.logger.Debug("Cleanup sweep completed")
}
