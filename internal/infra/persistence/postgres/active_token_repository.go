package postgres

import (
	"context"
	"time"

	"keygate/internal/domain/entity"
	domainerrors "keygate/internal/domain/errors"
	"keygate/internal/domain/repository"
	"keygate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activeTokenRepository implements the domain.ActiveTokenRepository interface.
type activeTokenRepository struct {
	db *gorm.DB
}

// NewActiveTokenRepository is the constructor for activeTokenRepository.
func NewActiveTokenRepository(db *gorm.DB) repository.ActiveTokenRepository {
	return &activeTokenRepository{db: db}
}

// CreateActiveToken persists the revocation handle for a freshly signed access token.
func (repo *activeTokenRepository) CreateActiveToken(ctx context.Context, token *entity.ActiveToken) error {
	tokenM := fromActiveTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("active token already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create active token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindActiveTokenByJTI retrieves the row matching an access token's jti claim.
// An expired row counts as absent: either way the token is revoked.
func (repo *activeTokenRepository) FindActiveTokenByJTI(ctx context.Context, jti string) (*entity.ActiveToken, error) {
	tokenM := new(model.ActiveTokenModel)

	err := repo.db.WithContext(ctx).
		Where("jti = ?", jti).
		First(tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActiveTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	if tokenM.ExpiresAt.Before(time.Now()) {
		return nil, repository.ErrActiveTokenNotFound
	}

	return toActiveTokenDomain(tokenM), nil
}

// DeleteActiveTokensByDeviceID bulk-deletes every row for one device.
func (repo *activeTokenRepository) DeleteActiveTokensByDeviceID(ctx context.Context, deviceID string) error {
	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Delete(&model.ActiveTokenModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteActiveTokensByUserID bulk-deletes every row for a user.
func (repo *activeTokenRepository) DeleteActiveTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.ActiveTokenModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteExpiredActiveTokens removes all expired rows.
func (repo *activeTokenRepository) DeleteExpiredActiveTokens(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.ActiveTokenModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// --- Mapper Functions ---

func toActiveTokenDomain(data *model.ActiveTokenModel) *entity.ActiveToken {
	if data == nil {
		return nil
	}

	return &entity.ActiveToken{
		ID:        data.ID,
		UserID:    data.UserID,
		JTI:       data.JTI,
		DeviceID:  data.DeviceID,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromActiveTokenDomain(data *entity.ActiveToken) *model.ActiveTokenModel {
	if data == nil {
		return nil
	}

	return &model.ActiveTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		JTI:       data.JTI,
		DeviceID:  data.DeviceID,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
