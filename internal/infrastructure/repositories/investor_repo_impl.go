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

// InvestorRepository implements investor profile operations
type InvestorRepository struct {
	db *gorm.DB
}

// NewInvestorRepository creates a new investor repository
func NewInvestorRepository(db *gorm.DB) *InvestorRepository {
	return &InvestorRepository{db: db}
}

// Create creates a new investor profile. A second profile for the same user
// violates the sparse unique index and surfaces as ErrDuplicateKey.
func (r *InvestorRepository) Create(ctx context.Context, profile *entities.InvestorProfile) error {
	m := &models.InvestorProfile{
		ID:        profile.ID,
		UserID:    profile.UserID.Ptr(),
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
		Phone:     profile.Phone,
		KYCStatus: string(profile.KYCStatus),
		IsActive:  profile.IsActive,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateCreateError(err)
	}
	return nil
}

// GetByID gets an investor profile by ID
func (r *InvestorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.InvestorProfile, error) {
	var m models.InvestorProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return investorToEntity(&m), nil
}

// GetByUserID gets the investor profile linked to a login
func (r *InvestorRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.InvestorProfile, error) {
	var m models.InvestorProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID.String()).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return investorToEntity(&m), nil
}

// FindByNormalizedName returns active profiles whose lower-cased full name
// equals name. TRIM covers profiles without a last name.
func (r *InvestorRepository) FindByNormalizedName(ctx context.Context, name string) ([]*entities.InvestorProfile, error) {
	var profileModels []models.InvestorProfile
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("LOWER(TRIM(first_name || ' ' || last_name)) = ?", name).
		Find(&profileModels).Error
	if err != nil {
		return nil, err
	}
	out := make([]*entities.InvestorProfile, 0, len(profileModels))
	for i := range profileModels {
		out = append(out, investorToEntity(&profileModels[i]))
	}
	return out, nil
}

// Update updates an investor profile
func (r *InvestorRepository) Update(ctx context.Context, profile *entities.InvestorProfile) error {
	updates := map[string]interface{}{
		"first_name": profile.FirstName,
		"last_name":  profile.LastName,
		"email":      profile.Email,
		"phone":      profile.Phone,
		"kyc_status": string(profile.KYCStatus),
		"is_active":  profile.IsActive,
		"user_id":    profile.UserID.Ptr(),
		"updated_at": time.Now(),
	}
	result := r.db.WithContext(ctx).Model(&models.InvestorProfile{}).Where("id = ?", profile.ID).Updates(updates)
	if result.Error != nil {
		return translateCreateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists investor profiles with optional search filter
func (r *InvestorRepository) List(ctx context.Context, search string) ([]*entities.InvestorProfile, error) {
	var profileModels []models.InvestorProfile
	query := r.db.WithContext(ctx).Order("created_at DESC")

	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ?", searchTerm, searchTerm, searchTerm)
	}

	if err := query.Find(&profileModels).Error; err != nil {
		return nil, err
	}

	out := make([]*entities.InvestorProfile, 0, len(profileModels))
	for i := range profileModels {
		out = append(out, investorToEntity(&profileModels[i]))
	}
	return out, nil
}

// SoftDelete soft deletes an investor profile
func (r *InvestorRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.InvestorProfile{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func investorToEntity(m *models.InvestorProfile) *entities.InvestorProfile {
	return &entities.InvestorProfile{
		ID:        m.ID,
		UserID:    null.StringFromPtr(m.UserID),
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     m.Phone,
		KYCStatus: entities.KYCStatus(m.KYCStatus),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
