package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"invest-portal.backend/internal/domain/entities"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/domain/repositories"
	"invest-portal.backend/pkg/utils"
)

// InvestorUsecase handles investor profile management
type InvestorUsecase struct {
	investorRepo repositories.InvestorRepository
	userRepo     repositories.UserRepository
}

// NewInvestorUsecase creates a new investor usecase
func NewInvestorUsecase(
	investorRepo repositories.InvestorRepository,
	userRepo repositories.UserRepository,
) *InvestorUsecase {
	return &InvestorUsecase{
		investorRepo: investorRepo,
		userRepo:     userRepo,
	}
}

// Create creates an investor profile, optionally linked to a login
func (u *InvestorUsecase) Create(ctx context.Context, input *entities.CreateInvestorInput) (*entities.InvestorProfile, error) {
	now := time.Now()
	profile := &entities.InvestorProfile{
		ID:        utils.GenerateUUIDv7(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		KYCStatus: entities.KYCPending,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.UserID != "" {
		userID, err := uuid.Parse(input.UserID)
		if err != nil {
			return nil, domainerrors.ErrInvalidInput
		}
		if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
			return nil, err
		}
		profile.UserID = null.StringFrom(userID.String())
	}

	if err := u.investorRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Get returns one investor profile
func (u *InvestorUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.InvestorProfile, error) {
	return u.investorRepo.GetByID(ctx, id)
}

// GetByUserID returns the profile linked to a login
func (u *InvestorUsecase) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.InvestorProfile, error) {
	return u.investorRepo.GetByUserID(ctx, userID)
}

// List lists profiles with an optional name/email search
func (u *InvestorUsecase) List(ctx context.Context, search string) ([]*entities.InvestorProfile, error) {
	return u.investorRepo.List(ctx, search)
}

// Update applies edits to a profile
func (u *InvestorUsecase) Update(ctx context.Context, profile *entities.InvestorProfile) error {
	return u.investorRepo.Update(ctx, profile)
}

// LinkUser attaches a login to an existing profile. The sparse unique index
// on user_id rejects linking one login to two profiles.
func (u *InvestorUsecase) LinkUser(ctx context.Context, profileID, userID uuid.UUID) (*entities.InvestorProfile, error) {
	profile, err := u.investorRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	profile.UserID = null.StringFrom(userID.String())
	if err := u.investorRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Deactivate soft deletes a profile so it no longer matches or lists
func (u *InvestorUsecase) Deactivate(ctx context.Context, id uuid.UUID) error {
	return u.investorRepo.SoftDelete(ctx, id)
}
