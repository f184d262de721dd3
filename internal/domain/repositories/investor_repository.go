package repositories

import (
	"context"

	"github.com/google/uuid"
	"invest-portal.backend/internal/domain/entities"
)

// InvestorRepository defines investor profile operations
type InvestorRepository interface {
	Create(ctx context.Context, profile *entities.InvestorProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.InvestorProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.InvestorProfile, error)
	// FindByNormalizedName returns every active profile whose lower-cased
	// "first last" name equals name. The matcher treats >1 as ambiguous.
	FindByNormalizedName(ctx context.Context, name string) ([]*entities.InvestorProfile, error)
	Update(ctx context.Context, profile *entities.InvestorProfile) error
	List(ctx context.Context, search string) ([]*entities.InvestorProfile, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// PortfolioRepository defines portfolio holding operations
type PortfolioRepository interface {
	Create(ctx context.Context, p *entities.Portfolio) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Portfolio, error)
	ListByInvestor(ctx context.Context, investorID uuid.UUID) ([]*entities.Portfolio, error)
	Update(ctx context.Context, p *entities.Portfolio) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
