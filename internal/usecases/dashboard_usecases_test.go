package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"invest-portal.backend/internal/domain/entities"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/usecases"
)

func TestPortfolioUsecase_CreateParsesDecimals(t *testing.T) {
	portfolioRepo := new(MockPortfolioRepository)
	investorRepo := new(MockInvestorRepository)
	uc := usecases.NewPortfolioUsecase(portfolioRepo, investorRepo)
	ctx := context.Background()
	investorID := uuid.New()

	investorRepo.On("GetByID", ctx, investorID).Return(&entities.InvestorProfile{ID: investorID}, nil)
	portfolioRepo.On("Create", ctx, mock.AnythingOfType("*entities.Portfolio")).Return(nil)

	p, err := uc.Create(ctx, &entities.CreatePortfolioInput{
		InvestorID:     investorID,
		FundName:       "Growth Fund II",
		InvestedAmount: "250000.00",
		ReturnPercent:  "12.5",
	})
	require.NoError(t, err)
	require.Equal(t, "250000", p.InvestedAmount.String())
	// current value defaults to the invested amount
	require.True(t, p.CurrentValue.Equal(p.InvestedAmount))
	require.Equal(t, entities.DeploymentPending, p.DeploymentStatus)

	_, err = uc.Create(ctx, &entities.CreatePortfolioInput{
		InvestorID:     investorID,
		FundName:       "Bad Fund",
		InvestedAmount: "not-money",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = uc.Create(ctx, &entities.CreatePortfolioInput{
		InvestorID:       investorID,
		FundName:         "Bad Status",
		InvestedAmount:   "10",
		DeploymentStatus: "halfway",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestAnnouncementUsecase_PublishStampsOnce(t *testing.T) {
	repo := new(MockAnnouncementRepository)
	uc := usecases.NewAnnouncementUsecase(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*entities.Announcement")).Return(nil)

	draft, err := uc.Create(ctx, "Fund III first close", "Details to follow.", false, "")
	require.NoError(t, err)
	require.False(t, draft.PublishedAt.Valid)

	published, err := uc.Create(ctx, "Q2 reports", "Live now.", true, uuid.New().String())
	require.NoError(t, err)
	require.True(t, published.PublishedAt.Valid)

	// publishing an existing draft stamps PublishedAt
	repo.On("GetByID", ctx, draft.ID).Return(draft, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*entities.Announcement")).Return(nil)
	updated, err := uc.Update(ctx, draft.ID, draft.Title, draft.Body, true)
	require.NoError(t, err)
	require.True(t, updated.IsPublished)
	require.True(t, updated.PublishedAt.Valid)
	stamp := updated.PublishedAt.Time

	// unpublishing and republishing keeps the original timestamp
	repo.On("GetByID", ctx, updated.ID).Return(updated, nil)
	unpublished, err := uc.Update(ctx, updated.ID, updated.Title, updated.Body, false)
	require.NoError(t, err)
	require.False(t, unpublished.IsPublished)
	require.Equal(t, stamp, unpublished.PublishedAt.Time)
}

func TestSupportUsecase_CreateAndReply(t *testing.T) {
	repo := new(MockSupportTicketRepository)
	uc := usecases.NewSupportUsecase(repo)
	ctx := context.Background()
	userID := uuid.New()

	_, err := uc.Create(ctx, userID, "", "body")
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	repo.On("Create", ctx, mock.AnythingOfType("*entities.SupportTicket")).Return(nil)
	ticket, err := uc.Create(ctx, userID, "Login issue", "OTP never arrives.")
	require.NoError(t, err)
	require.Equal(t, entities.TicketOpen, ticket.Status)

	_, err = uc.Reply(ctx, ticket.ID, "on it", "escalated")
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	repo.On("GetByID", ctx, ticket.ID).Return(ticket, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*entities.SupportTicket")).Return(nil)
	replied, err := uc.Reply(ctx, ticket.ID, "Fixed, try again.", entities.TicketResolved)
	require.NoError(t, err)
	require.Equal(t, entities.TicketResolved, replied.Status)
	require.Equal(t, "Fixed, try again.", replied.AdminReply.String)

	_, err = uc.List(ctx, "bogus")
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestInvestorUsecase_CreateAndLink(t *testing.T) {
	investorRepo := new(MockInvestorRepository)
	userRepo := new(MockUserRepository)
	uc := usecases.NewInvestorUsecase(investorRepo, userRepo)
	ctx := context.Background()
	userID := uuid.New()

	_, err := uc.Create(ctx, &entities.CreateInvestorInput{FirstName: "Bad", UserID: "not-a-uuid"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	userRepo.On("GetByID", ctx, userID).Return(&entities.User{ID: userID}, nil)
	investorRepo.On("Create", ctx, mock.AnythingOfType("*entities.InvestorProfile")).Return(nil)

	profile, err := uc.Create(ctx, &entities.CreateInvestorInput{
		FirstName: "Maya",
		LastName:  "Patel",
		UserID:    userID.String(),
	})
	require.NoError(t, err)
	require.Equal(t, userID.String(), profile.UserID.String)
	require.Equal(t, entities.KYCPending, profile.KYCStatus)
	require.True(t, profile.IsActive)

	// linking an unlinked profile to a login
	unlinked := &entities.InvestorProfile{ID: uuid.New(), FirstName: "Solo"}
	investorRepo.On("GetByID", ctx, unlinked.ID).Return(unlinked, nil)
	investorRepo.On("Update", ctx, mock.AnythingOfType("*entities.InvestorProfile")).Return(nil)
	linked, err := uc.LinkUser(ctx, unlinked.ID, userID)
	require.NoError(t, err)
	require.Equal(t, userID.String(), linked.UserID.String)
}
