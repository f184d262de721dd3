package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email              *string   `gorm:"type:varchar(255);uniqueIndex"`
	Phone              *string   `gorm:"type:varchar(32);uniqueIndex"`
	FirstName          string    `gorm:"type:varchar(100);not null"`
	LastName           string    `gorm:"type:varchar(100)"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	ActiveSessionToken *string   `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}
