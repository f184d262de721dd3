package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"invest-portal.backend/internal/domain/entities"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/infrastructure/models"
)

// AdminUserRepository implements admin capability operations
type AdminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository creates a new admin user repository
func NewAdminUserRepository(db *gorm.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

// Upsert creates or updates the admin record for a user. The conflict target
// is the unique user_id index, so concurrent seed runs cannot duplicate rows.
func (r *AdminUserRepository) Upsert(ctx context.Context, admin *entities.AdminUser) error {
	perms, err := json.Marshal(admin.Permissions)
	if err != nil {
		return err
	}
	m := &models.AdminUser{
		ID:          admin.ID,
		UserID:      admin.UserID,
		Role:        string(admin.Role),
		Permissions: string(perms),
		IsActive:    admin.IsActive,
		CreatedAt:   admin.CreatedAt,
		UpdatedAt:   admin.UpdatedAt,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role", "permissions", "is_active", "updated_at"}),
		}).
		Create(m).Error
}

// GetByUserID gets the admin record for a user
func (r *AdminUserRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.AdminUser, error) {
	var m models.AdminUser
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return adminToEntity(&m)
}

// GetByID gets an admin record by its own ID
func (r *AdminUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.AdminUser, error) {
	var m models.AdminUser
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return adminToEntity(&m)
}

// List returns all admin records
func (r *AdminUserRepository) List(ctx context.Context) ([]*entities.AdminUser, error) {
	var adminModels []models.AdminUser
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&adminModels).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.AdminUser, 0, len(adminModels))
	for i := range adminModels {
		admin, err := adminToEntity(&adminModels[i])
		if err != nil {
			return nil, err
		}
		out = append(out, admin)
	}
	return out, nil
}

// SetActive enables or disables an admin record
func (r *AdminUserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := r.db.WithContext(ctx).Model(&models.AdminUser{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_active":  active,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func adminToEntity(m *models.AdminUser) (*entities.AdminUser, error) {
	var perms []string
	if m.Permissions != "" {
		if err := json.Unmarshal([]byte(m.Permissions), &perms); err != nil {
			return nil, err
		}
	}
	return &entities.AdminUser{
		ID:          m.ID,
		UserID:      m.UserID,
		Role:        entities.AdminRole(m.Role),
		Permissions: perms,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}
