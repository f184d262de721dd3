package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"invest-portal.backend/internal/domain/entities"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/infrastructure/models"
)

// AnnouncementRepository implements announcement operations
type AnnouncementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// Create creates a new announcement
func (r *AnnouncementRepository) Create(ctx context.Context, a *entities.Announcement) error {
	m := &models.Announcement{
		ID:               a.ID,
		Title:            a.Title,
		Body:             a.Body,
		IsPublished:      a.IsPublished,
		PublishedAt:      a.PublishedAt.Ptr(),
		CreatedByAdminID: a.CreatedByAdminID.Ptr(),
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets an announcement by ID
func (r *AnnouncementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Announcement, error) {
	var m models.Announcement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return announcementToEntity(&m), nil
}

// ListPublished returns published announcements, newest first
func (r *AnnouncementRepository) ListPublished(ctx context.Context) ([]*entities.Announcement, error) {
	var announcementModels []models.Announcement
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("published_at DESC").
		Find(&announcementModels).Error
	if err != nil {
		return nil, err
	}
	return announcementsToEntities(announcementModels), nil
}

// ListAll returns every announcement for admin management
func (r *AnnouncementRepository) ListAll(ctx context.Context) ([]*entities.Announcement, error) {
	var announcementModels []models.Announcement
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&announcementModels).Error; err != nil {
		return nil, err
	}
	return announcementsToEntities(announcementModels), nil
}

// Update updates an announcement
func (r *AnnouncementRepository) Update(ctx context.Context, a *entities.Announcement) error {
	updates := map[string]interface{}{
		"title":        a.Title,
		"body":         a.Body,
		"is_published": a.IsPublished,
		"published_at": a.PublishedAt.Ptr(),
		"updated_at":   time.Now(),
	}
	result := r.db.WithContext(ctx).Model(&models.Announcement{}).Where("id = ?", a.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete soft deletes an announcement
func (r *AnnouncementRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Announcement{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func announcementsToEntities(announcementModels []models.Announcement) []*entities.Announcement {
	out := make([]*entities.Announcement, 0, len(announcementModels))
	for i := range announcementModels {
		out = append(out, announcementToEntity(&announcementModels[i]))
	}
	return out
}

func announcementToEntity(m *models.Announcement) *entities.Announcement {
	return &entities.Announcement{
		ID:               m.ID,
		Title:            m.Title,
		Body:             m.Body,
		IsPublished:      m.IsPublished,
		PublishedAt:      null.TimeFromPtr(m.PublishedAt),
		CreatedByAdminID: null.StringFromPtr(m.CreatedByAdminID),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
