package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Announcement struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title            string    `gorm:"type:varchar(255);not null"`
	Body             string    `gorm:"type:text;not null"`
	IsPublished      bool      `gorm:"not null;default:false"`
	PublishedAt      *time.Time
	CreatedByAdminID *string `gorm:"type:uuid"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}
