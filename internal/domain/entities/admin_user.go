package entities

import (
	"time"

	"github.com/google/uuid"
)

// AdminRole represents elevated role tags
type AdminRole string

const (
	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleSuperAdmin AdminRole = "super_admin"
)

// AdminUser grants a user elevated capability. One per user.
type AdminUser struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Role        AdminRole `json:"role"`
	Permissions []string  `json:"permissions"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateAdminUserInput represents input for granting admin capability
type CreateAdminUserInput struct {
	UserID      uuid.UUID `json:"userId" binding:"required"`
	Role        AdminRole `json:"role" binding:"required"`
	Permissions []string  `json:"permissions"`
}
