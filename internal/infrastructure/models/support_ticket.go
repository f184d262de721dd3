package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupportTicket struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Subject    string    `gorm:"type:varchar(255);not null"`
	Message    string    `gorm:"type:text;not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'open'"`
	AdminReply *string   `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}
