package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"invest-portal.backend/internal/domain/entities"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/domain/repositories"
)

// RoleResolverUsecase resolves the capability of a login by probing the admin
// and investor collections independently.
type RoleResolverUsecase struct {
	adminRepo    repositories.AdminUserRepository
	investorRepo repositories.InvestorRepository
}

// NewRoleResolverUsecase creates a new role resolver
func NewRoleResolverUsecase(
	adminRepo repositories.AdminUserRepository,
	investorRepo repositories.InvestorRepository,
) *RoleResolverUsecase {
	return &RoleResolverUsecase{
		adminRepo:    adminRepo,
		investorRepo: investorRepo,
	}
}

// Resolve returns the role resolution for a user. A login holding both an
// active admin record and an investor profile reports the admin role as
// primary but keeps its investor linkage. Neither resolves to role "none".
func (u *RoleResolverUsecase) Resolve(ctx context.Context, userID uuid.UUID) (*entities.RoleResolution, error) {
	resolution := &entities.RoleResolution{Role: entities.RoleNone}

	admin, err := u.adminRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if admin != nil && admin.IsActive {
		resolution.Role = entities.RoleAdmin
		resolution.AdminID = &admin.ID
		resolution.Permissions = admin.Permissions
		if admin.Role == entities.AdminRoleSuperAdmin {
			resolution.Role = entities.RoleSuperAdmin
			resolution.IsSuperAdmin = true
		}
	}

	investor, err := u.investorRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if investor != nil {
		resolution.InvestorID = &investor.ID
		if resolution.Role == entities.RoleNone {
			resolution.Role = entities.RoleInvestor
		}
	}

	return resolution, nil
}
