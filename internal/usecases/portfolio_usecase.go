package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"invest-portal.backend/internal/domain/entities"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/domain/repositories"
	"invest-portal.backend/pkg/utils"
)

// PortfolioUsecase handles fund holding management
type PortfolioUsecase struct {
	portfolioRepo repositories.PortfolioRepository
	investorRepo  repositories.InvestorRepository
}

// NewPortfolioUsecase creates a new portfolio usecase
func NewPortfolioUsecase(
	portfolioRepo repositories.PortfolioRepository,
	investorRepo repositories.InvestorRepository,
) *PortfolioUsecase {
	return &PortfolioUsecase{
		portfolioRepo: portfolioRepo,
		investorRepo:  investorRepo,
	}
}

// Create creates a holding for an investor. Amounts arrive as strings and
// are parsed as decimals; anything a decimal cannot represent is rejected.
func (u *PortfolioUsecase) Create(ctx context.Context, input *entities.CreatePortfolioInput) (*entities.Portfolio, error) {
	if _, err := u.investorRepo.GetByID(ctx, input.InvestorID); err != nil {
		return nil, err
	}

	invested, err := decimal.NewFromString(input.InvestedAmount)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput
	}
	current := invested
	if input.CurrentValue != "" {
		current, err = decimal.NewFromString(input.CurrentValue)
		if err != nil {
			return nil, domainerrors.ErrInvalidInput
		}
	}
	returnPct, err := parseOptionalDecimal(input.ReturnPercent)
	if err != nil {
		return nil, err
	}
	irrPct, err := parseOptionalDecimal(input.IRRPercent)
	if err != nil {
		return nil, err
	}

	status := entities.DeploymentPending
	if input.DeploymentStatus != "" {
		status = entities.DeploymentStatus(input.DeploymentStatus)
		switch status {
		case entities.DeploymentPending, entities.DeploymentPartial, entities.DeploymentDeployed:
		default:
			return nil, domainerrors.ErrInvalidInput
		}
	}

	now := time.Now()
	portfolio := &entities.Portfolio{
		ID:               utils.GenerateUUIDv7(),
		InvestorID:       input.InvestorID,
		FundName:         input.FundName,
		InvestedAmount:   invested,
		CurrentValue:     current,
		ReturnPercent:    returnPct,
		IRRPercent:       irrPct,
		DeploymentStatus: status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := u.portfolioRepo.Create(ctx, portfolio); err != nil {
		return nil, err
	}
	return portfolio, nil
}

// Get returns one holding
func (u *PortfolioUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Portfolio, error) {
	return u.portfolioRepo.GetByID(ctx, id)
}

// ListByInvestor lists an investor's holdings
func (u *PortfolioUsecase) ListByInvestor(ctx context.Context, investorID uuid.UUID) ([]*entities.Portfolio, error) {
	return u.portfolioRepo.ListByInvestor(ctx, investorID)
}

// Update applies edits to a holding
func (u *PortfolioUsecase) Update(ctx context.Context, p *entities.Portfolio) error {
	return u.portfolioRepo.Update(ctx, p)
}

// Delete removes a holding
func (u *PortfolioUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.portfolioRepo.SoftDelete(ctx, id)
}

func parseOptionalDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domainerrors.ErrInvalidInput
	}
	return d, nil
}
