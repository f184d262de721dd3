package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"invest-portal.backend/internal/domain/entities"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/usecases"
	"invest-portal.backend/pkg/jwt"
)

type adminFixture struct {
	userRepo     *MockUserRepository
	adminRepo    *MockAdminUserRepository
	investorRepo *MockInvestorRepository
	uc           *usecases.AdminUsecase
}

func newAdminFixture() *adminFixture {
	f := &adminFixture{
		userRepo:     new(MockUserRepository),
		adminRepo:    new(MockAdminUserRepository),
		investorRepo: new(MockInvestorRepository),
	}
	resolver := usecases.NewRoleResolverUsecase(f.adminRepo, f.investorRepo)
	auth := usecases.NewAuthUsecase(
		f.userRepo,
		new(MockOTPRepository),
		jwt.NewSessionService("secret", time.Hour),
		new(MockSessionCache),
		resolver,
		&captureSender{},
		5*time.Minute,
	)
	f.uc = usecases.NewAdminUsecase(f.userRepo, f.adminRepo, f.investorRepo, auth)
	return f
}

func TestAdminUsecase_GrantValidatesRole(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	_, err := f.uc.Grant(ctx, &entities.CreateAdminUserInput{UserID: uuid.New(), Role: "owner"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestAdminUsecase_GrantUpsertsAndReadsBack(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()
	userID := uuid.New()

	stored := &entities.AdminUser{ID: uuid.New(), UserID: userID, Role: entities.AdminRoleAdmin, IsActive: true}
	f.userRepo.On("GetByID", ctx, userID).Return(&entities.User{ID: userID}, nil)
	f.adminRepo.On("Upsert", ctx, mock.AnythingOfType("*entities.AdminUser")).Return(nil)
	f.adminRepo.On("GetByUserID", ctx, userID).Return(stored, nil)

	admin, err := f.uc.Grant(ctx, &entities.CreateAdminUserInput{UserID: userID, Role: entities.AdminRoleAdmin})
	require.NoError(t, err)
	require.Equal(t, stored.ID, admin.ID)
}

func TestAdminUsecase_SeedAdminFindsExistingUser(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()
	userID := uuid.New()

	existing := &entities.User{ID: userID, Email: null.StringFrom("root@invest.io")}
	f.userRepo.On("GetByEmail", ctx, "root@invest.io").Return(existing, nil)
	f.userRepo.On("GetByID", ctx, userID).Return(existing, nil)
	f.adminRepo.On("Upsert", ctx, mock.AnythingOfType("*entities.AdminUser")).Return(nil)
	f.adminRepo.On("GetByUserID", ctx, userID).Return(&entities.AdminUser{
		ID:     uuid.New(),
		UserID: userID,
		Role:   entities.AdminRoleSuperAdmin,
	}, nil)

	admin, err := f.uc.SeedAdmin(ctx, "root@invest.io", "ignored-existing", entities.AdminRoleSuperAdmin, "")
	require.NoError(t, err)
	require.Equal(t, entities.AdminRoleSuperAdmin, admin.Role)
	// no new user was created
	f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminUsecase_SeedInvestorCreatesUserAndProfile(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	f.userRepo.On("GetByEmail", ctx, "anujr3259@gmail.com").Return(nil, domainerrors.ErrNotFound)
	f.userRepo.On("Create", ctx, mock.AnythingOfType("*entities.User")).Return(nil)
	f.investorRepo.On("GetByUserID", ctx, mock.AnythingOfType("uuid.UUID")).Return(nil, domainerrors.ErrNotFound)
	f.investorRepo.On("Create", ctx, mock.AnythingOfType("*entities.InvestorProfile")).Return(nil)

	profile, err := f.uc.SeedInvestor(ctx, "anujr3259@gmail.com", "anujr3259", "Anuj", "Investor", "")
	require.NoError(t, err)
	require.Equal(t, "Anuj", profile.FirstName)
	require.True(t, profile.UserID.Valid)
	require.Equal(t, entities.KYCVerified, profile.KYCStatus)
}

func TestAdminUsecase_SeedInvestorIdempotent(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()
	userID := uuid.New()

	existingUser := &entities.User{ID: userID, Email: null.StringFrom("anujr3259@gmail.com")}
	existingProfile := &entities.InvestorProfile{ID: uuid.New(), UserID: null.StringFrom(userID.String())}
	f.userRepo.On("GetByEmail", ctx, "anujr3259@gmail.com").Return(existingUser, nil)
	f.investorRepo.On("GetByUserID", ctx, userID).Return(existingProfile, nil)

	profile, err := f.uc.SeedInvestor(ctx, "anujr3259@gmail.com", "anujr3259", "Anuj", "Investor", "")
	require.NoError(t, err)
	require.Equal(t, existingProfile.ID, profile.ID)
	f.investorRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
