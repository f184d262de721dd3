package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"invest-portal.backend/internal/domain/entities"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/infrastructure/models"
)

// StatementRepository implements statement record operations
type StatementRepository struct {
	db *gorm.DB
}

// NewStatementRepository creates a new statement repository
func NewStatementRepository(db *gorm.DB) *StatementRepository {
	return &StatementRepository{db: db}
}

// Create creates a new statement record
func (r *StatementRepository) Create(ctx context.Context, s *entities.Statement) error {
	m := &models.Statement{
		ID:                s.ID,
		InvestorID:        s.InvestorID,
		Type:              string(s.Type),
		Period:            s.Period,
		Year:              s.Year,
		FilePath:          s.FilePath,
		UploadedByAdminID: s.UploadedByAdminID.Ptr(),
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a statement by ID
func (r *StatementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Statement, error) {
	var m models.Statement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return statementToEntity(&m), nil
}

// ListByInvestor returns all statements of one investor, newest first
func (r *StatementRepository) ListByInvestor(ctx context.Context, investorID uuid.UUID) ([]*entities.Statement, error) {
	var statementModels []models.Statement
	err := r.db.WithContext(ctx).
		Where("investor_id = ?", investorID).
		Order("year DESC, created_at DESC").
		Find(&statementModels).Error
	if err != nil {
		return nil, err
	}
	return statementsToEntities(statementModels), nil
}

// List returns all statement records
func (r *StatementRepository) List(ctx context.Context) ([]*entities.Statement, error) {
	var statementModels []models.Statement
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&statementModels).Error; err != nil {
		return nil, err
	}
	return statementsToEntities(statementModels), nil
}

// SoftDelete soft deletes a statement record
func (r *StatementRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Statement{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func statementsToEntities(statementModels []models.Statement) []*entities.Statement {
	out := make([]*entities.Statement, 0, len(statementModels))
	for i := range statementModels {
		out = append(out, statementToEntity(&statementModels[i]))
	}
	return out
}

func statementToEntity(m *models.Statement) *entities.Statement {
	return &entities.Statement{
		ID:                m.ID,
		InvestorID:        m.InvestorID,
		Type:              entities.StatementType(m.Type),
		Period:            m.Period,
		Year:              m.Year,
		FilePath:          m.FilePath,
		UploadedByAdminID: null.StringFromPtr(m.UploadedByAdminID),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
