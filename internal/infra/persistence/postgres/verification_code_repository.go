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

// verificationCodeRepository implements the domain.VerificationCodeRepository interface.
type verificationCodeRepository struct {
	db *gorm.DB
}

// NewVerificationCodeRepository is the constructor for verificationCodeRepository.
func NewVerificationCodeRepository(db *gorm.DB) repository.VerificationCodeRepository {
	return &verificationCodeRepository{db: db}
}

// CreateVerificationCode persists a new code for the given user.
func (repo *verificationCodeRepository) CreateVerificationCode(ctx context.Context, code *entity.VerificationCode) error {
	codeM := fromVerificationCodeDomain(code)

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create verification code")
	}

	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

// ConsumeVerificationCode atomically marks an unused, unexpired code as used.
// The RowsAffected check on the guarded UPDATE is what makes the code single
// use even under concurrent submissions.
func (repo *verificationCodeRepository) ConsumeVerificationCode(ctx context.Context, userID uuid.UUID, code string) (*entity.VerificationCode, error) {
	result := repo.db.WithContext(ctx).Model(&model.VerificationCodeModel{}).
		Where("user_id = ? AND code = ? AND is_used = ? AND expires_at > ?", userID, code, false, time.Now()).
		Update("is_used", true)
	if result.Error != nil {
		return nil, errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrVerificationCodeNotFound
	}

	codeM := new(model.VerificationCodeModel)
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND code = ?", userID, code).
		First(codeM).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toVerificationCodeDomain(codeM), nil
}

// DeleteVerificationCodesByUserID removes every code for a user.
func (repo *verificationCodeRepository) DeleteVerificationCodesByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.VerificationCodeModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteExpiredVerificationCodes removes all expired rows.
func (repo *verificationCodeRepository) DeleteExpiredVerificationCodes(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.VerificationCodeModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// --- Mapper Functions ---

func toVerificationCodeDomain(data *model.VerificationCodeModel) *entity.VerificationCode {
	if data == nil {
		return nil
	}

	return &entity.VerificationCode{
		ID:        data.ID,
		UserID:    data.UserID,
		Code:      data.Code,
		IsUsed:    data.IsUsed,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromVerificationCodeDomain(data *entity.VerificationCode) *model.VerificationCodeModel {
	if data == nil {
		return nil
	}

	return &model.VerificationCodeModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Code:      data.Code,
		IsUsed:    data.IsUsed,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
