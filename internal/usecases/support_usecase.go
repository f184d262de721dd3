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

// SupportUsecase handles support tickets for both sides of the desk
type SupportUsecase struct {
	ticketRepo repositories.SupportTicketRepository
}

// NewSupportUsecase creates a new support usecase
func NewSupportUsecase(ticketRepo repositories.SupportTicketRepository) *SupportUsecase {
	return &SupportUsecase{ticketRepo: ticketRepo}
}

// Create opens a ticket for a logged-in user
func (u *SupportUsecase) Create(ctx context.Context, userID uuid.UUID, subject, message string) (*entities.SupportTicket, error) {
	if subject == "" || message == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	now := time.Now()
	ticket := &entities.SupportTicket{
		ID:        utils.GenerateUUIDv7(),
		UserID:    userID,
		Subject:   subject,
		Message:   message,
		Status:    entities.TicketOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// ListForUser lists the caller's own tickets
func (u *SupportUsecase) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entities.SupportTicket, error) {
	return u.ticketRepo.ListByUser(ctx, userID)
}

// List lists tickets for the admin dashboard, optionally by status
func (u *SupportUsecase) List(ctx context.Context, status string) ([]*entities.SupportTicket, error) {
	if status != "" {
		switch entities.TicketStatus(status) {
		case entities.TicketOpen, entities.TicketInProgress, entities.TicketResolved:
		default:
			return nil, domainerrors.ErrInvalidInput
		}
	}
	return u.ticketRepo.List(ctx, status)
}

// Reply records an admin reply and moves the ticket to the given status
func (u *SupportUsecase) Reply(ctx context.Context, id uuid.UUID, reply string, status entities.TicketStatus) (*entities.SupportTicket, error) {
	switch status {
	case entities.TicketOpen, entities.TicketInProgress, entities.TicketResolved:
	default:
		return nil, domainerrors.ErrInvalidInput
	}

	ticket, err := u.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reply != "" {
		ticket.AdminReply = null.StringFrom(reply)
	}
	ticket.Status = status
	if err := u.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}
