package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Statement struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvestorID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Type              string    `gorm:"type:varchar(20);not null"`
	Period            string    `gorm:"type:varchar(50);not null"`
	Year              int       `gorm:"not null"`
	FilePath          string    `gorm:"type:text;not null"`
	UploadedByAdminID *string   `gorm:"type:uuid"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}
