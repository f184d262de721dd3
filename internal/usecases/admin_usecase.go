package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"invest-portal.backend/internal/domain/entities"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/domain/repositories"
	"invest-portal.backend/pkg/utils"
)

// AdminUsecase manages elevated capability grants and the bootstrap seeding
// the CLIs use. Seeding is find-or-create end to end: the unique index on
// users and the admin upsert keep concurrent runs from duplicating rows.
type AdminUsecase struct {
	userRepo     repositories.UserRepository
	adminRepo    repositories.AdminUserRepository
	investorRepo repositories.InvestorRepository
	auth         *AuthUsecase
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	userRepo repositories.UserRepository,
	adminRepo repositories.AdminUserRepository,
	investorRepo repositories.InvestorRepository,
	auth *AuthUsecase,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:     userRepo,
		adminRepo:    adminRepo,
		investorRepo: investorRepo,
		auth:         auth,
	}
}

// Grant gives a user admin capability, or updates the existing grant
func (u *AdminUsecase) Grant(ctx context.Context, input *entities.CreateAdminUserInput) (*entities.AdminUser, error) {
	switch input.Role {
	case entities.AdminRoleAdmin, entities.AdminRoleSuperAdmin:
	default:
		return nil, domainerrors.ErrInvalidInput
	}
	if _, err := u.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	now := time.Now()
	admin := &entities.AdminUser{
		ID:          utils.GenerateUUIDv7(),
		UserID:      input.UserID,
		Role:        input.Role,
		Permissions: input.Permissions,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.adminRepo.Upsert(ctx, admin); err != nil {
		return nil, err
	}
	// the upsert may have kept an earlier row; read back the stored record
	return u.adminRepo.GetByUserID(ctx, input.UserID)
}

// List lists all admin grants
func (u *AdminUsecase) List(ctx context.Context) ([]*entities.AdminUser, error) {
	return u.adminRepo.List(ctx)
}

// Get returns one admin grant
func (u *AdminUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.AdminUser, error) {
	return u.adminRepo.GetByID(ctx, id)
}

// SetActive enables or disables a grant without deleting its history
func (u *AdminUsecase) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return u.adminRepo.SetActive(ctx, id, active)
}

// ensureUser finds the login for an email or creates it
func (u *AdminUsecase) ensureUser(ctx context.Context, email, password, first, last, phone string) (*entities.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	user, err = u.auth.Register(ctx, &entities.CreateUserInput{
		Email:     email,
		Phone:     phone,
		FirstName: first,
		LastName:  last,
		Password:  password,
	})
	if err == nil {
		return user, nil
	}
	// lost a race with a concurrent seed run; the row exists now
	if errors.Is(err, domainerrors.ErrDuplicateKey) {
		return u.userRepo.GetByEmail(ctx, email)
	}
	return nil, err
}

// SeedAdmin bootstraps an admin login: find-or-create the user, then upsert
// the grant.
func (u *AdminUsecase) SeedAdmin(ctx context.Context, email, password string, role entities.AdminRole, phone string) (*entities.AdminUser, error) {
	user, err := u.ensureUser(ctx, email, password, "Portal", "Admin", phone)
	if err != nil {
		return nil, err
	}
	return u.Grant(ctx, &entities.CreateAdminUserInput{
		UserID: user.ID,
		Role:   role,
	})
}

// SeedInvestor bootstraps an investor login with a linked profile
func (u *AdminUsecase) SeedInvestor(ctx context.Context, email, password, first, last, phone string) (*entities.InvestorProfile, error) {
	user, err := u.ensureUser(ctx, email, password, first, last, phone)
	if err != nil {
		return nil, err
	}

	profile, err := u.investorRepo.GetByUserID(ctx, user.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	profile = &entities.InvestorProfile{
		ID:        utils.GenerateUUIDv7(),
		UserID:    null.StringFrom(user.ID.String()),
		FirstName: first,
		LastName:  last,
		Email:     email,
		Phone:     phone,
		KYCStatus: entities.KYCVerified,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.investorRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateKey) {
			return u.investorRepo.GetByUserID(ctx, user.ID)
		}
		return nil, err
	}
	return profile, nil
}
