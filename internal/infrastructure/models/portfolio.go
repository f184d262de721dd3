package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Portfolio struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvestorID       uuid.UUID `gorm:"type:uuid;not null;index"`
	FundName         string    `gorm:"type:varchar(255);not null"`
	InvestedAmount   string    `gorm:"type:varchar(64);not null"`
	CurrentValue     string    `gorm:"type:varchar(64);not null"`
	ReturnPercent    string    `gorm:"type:varchar(32);not null;default:'0'"`
	IRRPercent       string    `gorm:"type:varchar(32);not null;default:'0'"`
	DeploymentStatus string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}
