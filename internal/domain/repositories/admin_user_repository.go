package repositories

import (
	"context"

	"github.com/google/uuid"
	"invest-portal.backend/internal/domain/entities"
)

// AdminUserRepository defines admin capability operations
type AdminUserRepository interface {
	// Upsert creates the admin record for a user or updates role and
	// permissions in place, so concurrent seed runs cannot duplicate rows.
	Upsert(ctx context.Context, admin *entities.AdminUser) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.AdminUser, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.AdminUser, error)
	List(ctx context.Context) ([]*entities.AdminUser, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
