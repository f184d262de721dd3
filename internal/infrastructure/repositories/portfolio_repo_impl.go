package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"invest-portal.backend/internal/domain/entities"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/infrastructure/models"
)

// PortfolioRepository implements portfolio holding operations
type PortfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository creates a new portfolio repository
func NewPortfolioRepository(db *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// Create creates a new portfolio holding
func (r *PortfolioRepository) Create(ctx context.Context, p *entities.Portfolio) error {
	m := &models.Portfolio{
		ID:               p.ID,
		InvestorID:       p.InvestorID,
		FundName:         p.FundName,
		InvestedAmount:   p.InvestedAmount.String(),
		CurrentValue:     p.CurrentValue.String(),
		ReturnPercent:    p.ReturnPercent.String(),
		IRRPercent:       p.IRRPercent.String(),
		DeploymentStatus: string(p.DeploymentStatus),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a portfolio holding by ID
func (r *PortfolioRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Portfolio, error) {
	var m models.Portfolio
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return portfolioToEntity(&m)
}

// ListByInvestor returns all holdings of one investor
func (r *PortfolioRepository) ListByInvestor(ctx context.Context, investorID uuid.UUID) ([]*entities.Portfolio, error) {
	var portfolioModels []models.Portfolio
	err := r.db.WithContext(ctx).
		Where("investor_id = ?", investorID).
		Order("created_at DESC").
		Find(&portfolioModels).Error
	if err != nil {
		return nil, err
	}
	out := make([]*entities.Portfolio, 0, len(portfolioModels))
	for i := range portfolioModels {
		p, err := portfolioToEntity(&portfolioModels[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Update updates a portfolio holding
func (r *PortfolioRepository) Update(ctx context.Context, p *entities.Portfolio) error {
	updates := map[string]interface{}{
		"fund_name":         p.FundName,
		"invested_amount":   p.InvestedAmount.String(),
		"current_value":     p.CurrentValue.String(),
		"return_percent":    p.ReturnPercent.String(),
		"irr_percent":       p.IRRPercent.String(),
		"deployment_status": string(p.DeploymentStatus),
		"updated_at":        time.Now(),
	}
	result := r.db.WithContext(ctx).Model(&models.Portfolio{}).Where("id = ?", p.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete soft deletes a portfolio holding
func (r *PortfolioRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Portfolio{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func portfolioToEntity(m *models.Portfolio) (*entities.Portfolio, error) {
	invested, err := decimal.NewFromString(m.InvestedAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid invested_amount %q: %w", m.InvestedAmount, err)
	}
	current, err := decimal.NewFromString(m.CurrentValue)
	if err != nil {
		return nil, fmt.Errorf("invalid current_value %q: %w", m.CurrentValue, err)
	}
	returnPct, err := decimal.NewFromString(m.ReturnPercent)
	if err != nil {
		return nil, fmt.Errorf("invalid return_percent %q: %w", m.ReturnPercent, err)
	}
	irrPct, err := decimal.NewFromString(m.IRRPercent)
	if err != nil {
		return nil, fmt.Errorf("invalid irr_percent %q: %w", m.IRRPercent, err)
	}

	return &entities.Portfolio{
		ID:               m.ID,
		InvestorID:       m.InvestorID,
		FundName:         m.FundName,
		InvestedAmount:   invested,
		CurrentValue:     current,
		ReturnPercent:    returnPct,
		IRRPercent:       irrPct,
		DeploymentStatus: entities.DeploymentStatus(m.DeploymentStatus),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}, nil
}
