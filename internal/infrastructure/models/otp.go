package models

import (
	"time"

	"github.com/google/uuid"
)

type OTP struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_otps_user_channel"`
	Code      string    `gorm:"type:varchar(6);not null"`
	Channel   string    `gorm:"type:varchar(10);not null;index:idx_otps_user_channel"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}
