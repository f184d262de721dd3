package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvestorProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    *string   `gorm:"type:uuid;uniqueIndex"`
	FirstName string    `gorm:"type:varchar(100);not null"`
	LastName  string    `gorm:"type:varchar(100)"`
	Email     string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(32)"`
	KYCStatus string    `gorm:"type:varchar(20);not null;default:'pending'"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
