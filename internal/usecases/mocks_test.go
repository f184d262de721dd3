package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"invest-portal.backend/internal/domain/entities"
	"invest-portal.backend/pkg/redis"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByPhone(ctx context.Context, phone string) (*entities.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateSessionToken(ctx context.Context, id uuid.UUID, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search string) ([]*entities.User, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]*entities.User), args.Error(1)
}

// Mock OTPRepository
type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) Create(ctx context.Context, otp *entities.OTP) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockOTPRepository) GetLatest(ctx context.Context, userID uuid.UUID, channel entities.OTPChannel, code string) (*entities.OTP, error) {
	args := m.Called(ctx, userID, channel, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.OTP), args.Error(1)
}

func (m *MockOTPRepository) InvalidateUnused(ctx context.Context, userID uuid.UUID, channel entities.OTPChannel) error {
	args := m.Called(ctx, userID, channel)
	return args.Error(0)
}

func (m *MockOTPRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock AdminUserRepository
type MockAdminUserRepository struct {
	mock.Mock
}

func (m *MockAdminUserRepository) Upsert(ctx context.Context, admin *entities.AdminUser) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminUserRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.AdminUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.AdminUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepository) List(ctx context.Context) ([]*entities.AdminUser, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

// Mock InvestorRepository
type MockInvestorRepository struct {
	mock.Mock
}

func (m *MockInvestorRepository) Create(ctx context.Context, profile *entities.InvestorProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockInvestorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.InvestorProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InvestorProfile), args.Error(1)
}

func (m *MockInvestorRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.InvestorProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InvestorProfile), args.Error(1)
}

func (m *MockInvestorRepository) FindByNormalizedName(ctx context.Context, name string) ([]*entities.InvestorProfile, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.InvestorProfile), args.Error(1)
}

func (m *MockInvestorRepository) Update(ctx context.Context, profile *entities.InvestorProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockInvestorRepository) List(ctx context.Context, search string) ([]*entities.InvestorProfile, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]*entities.InvestorProfile), args.Error(1)
}

func (m *MockInvestorRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock PortfolioRepository
type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) Create(ctx context.Context, p *entities.Portfolio) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPortfolioRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Portfolio, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) ListByInvestor(ctx context.Context, investorID uuid.UUID) ([]*entities.Portfolio, error) {
	args := m.Called(ctx, investorID)
	return args.Get(0).([]*entities.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) Update(ctx context.Context, p *entities.Portfolio) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPortfolioRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock StatementRepository
type MockStatementRepository struct {
	mock.Mock
}

func (m *MockStatementRepository) Create(ctx context.Context, s *entities.Statement) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStatementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Statement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Statement), args.Error(1)
}

func (m *MockStatementRepository) ListByInvestor(ctx context.Context, investorID uuid.UUID) ([]*entities.Statement, error) {
	args := m.Called(ctx, investorID)
	return args.Get(0).([]*entities.Statement), args.Error(1)
}

func (m *MockStatementRepository) List(ctx context.Context) ([]*entities.Statement, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Statement), args.Error(1)
}

func (m *MockStatementRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock AnnouncementRepository
type MockAnnouncementRepository struct {
	mock.Mock
}

func (m *MockAnnouncementRepository) Create(ctx context.Context, a *entities.Announcement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Announcement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) ListPublished(ctx context.Context) ([]*entities.Announcement, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) ListAll(ctx context.Context) ([]*entities.Announcement, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) Update(ctx context.Context, a *entities.Announcement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock SupportTicketRepository
type MockSupportTicketRepository struct {
	mock.Mock
}

func (m *MockSupportTicketRepository) Create(ctx context.Context, t *entities.SupportTicket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockSupportTicketRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.SupportTicket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SupportTicket), args.Error(1)
}

func (m *MockSupportTicketRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.SupportTicket, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entities.SupportTicket), args.Error(1)
}

func (m *MockSupportTicketRepository) List(ctx context.Context, status string) ([]*entities.SupportTicket, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]*entities.SupportTicket), args.Error(1)
}

func (m *MockSupportTicketRepository) Update(ctx context.Context, t *entities.SupportTicket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

// Mock SessionCache
type MockSessionCache struct {
	mock.Mock
}

func (m *MockSessionCache) SaveSession(ctx context.Context, userID string, data *redis.SessionData, expiration time.Duration) error {
	args := m.Called(ctx, userID, data, expiration)
	return args.Error(0)
}

func (m *MockSessionCache) GetSession(ctx context.Context, userID string) (*redis.SessionData, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*redis.SessionData), args.Error(1)
}

func (m *MockSessionCache) DeleteSession(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// captureSender records the last issued code instead of delivering it
type captureSender struct {
	lastUser    *entities.User
	lastChannel entities.OTPChannel
	lastCode    string
}

func (c *captureSender) Send(_ context.Context, user *entities.User, channel entities.OTPChannel, code string) error {
	c.lastUser = user
	c.lastChannel = channel
	c.lastCode = code
	return nil
}
