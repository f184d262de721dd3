package models

import (
	"time"

	"github.com/google/uuid"
)

type AdminUser struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Role        string    `gorm:"type:varchar(50);not null"`
	Permissions string    `gorm:"type:text;not null;default:'[]'"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
