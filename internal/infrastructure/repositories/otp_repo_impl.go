package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"invest-portal.backend/internal/domain/entities"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/infrastructure/models"
)

// OTPRepository implements one-time code lifecycle operations
type OTPRepository struct {
	db *gorm.DB
}

// NewOTPRepository creates a new OTP repository
func NewOTPRepository(db *gorm.DB) *OTPRepository {
	return &OTPRepository{db: db}
}

// Create inserts a new code record
func (r *OTPRepository) Create(ctx context.Context, otp *entities.OTP) error {
	m := &models.OTP{
		ID:        otp.ID,
		UserID:    otp.UserID,
		Code:      otp.Code,
		Channel:   string(otp.Channel),
		ExpiresAt: otp.ExpiresAt,
		Used:      otp.Used,
		CreatedAt: otp.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetLatest returns the most recently issued record for (user, channel, code)
func (r *OTPRepository) GetLatest(ctx context.Context, userID uuid.UUID, channel entities.OTPChannel, code string) (*entities.OTP, error) {
	var m models.OTP
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND channel = ? AND code = ?", userID, string(channel), code).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return otpToEntity(&m), nil
}

// InvalidateUnused marks all unused codes for (user, channel) as used, so a
// re-issue leaves at most one live code.
func (r *OTPRepository) InvalidateUnused(ctx context.Context, userID uuid.UUID, channel entities.OTPChannel) error {
	return r.db.WithContext(ctx).
		Model(&models.OTP{}).
		Where("user_id = ? AND channel = ? AND used = ?", userID, string(channel), false).
		Update("used", true).Error
}

// MarkUsed flips the used flag exactly once. The conditional update is the
// single-use guarantee: a second caller sees zero rows affected.
func (r *OTPRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.OTP{}).
		Where("id = ? AND used = ?", id, false).
		Update("used", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.OTP{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.ErrCodeAlreadyUsed
	}
	return nil
}

func otpToEntity(m *models.OTP) *entities.OTP {
	return &entities.OTP{
		ID:        m.ID,
		UserID:    m.UserID,
		Code:      m.Code,
		Channel:   entities.OTPChannel(m.Channel),
		ExpiresAt: m.ExpiresAt,
		Used:      m.Used,
		CreatedAt: m.CreatedAt,
	}
}
