package repositories

import (
	"context"

	"github.com/google/uuid"
	"invest-portal.backend/internal/domain/entities"
)

// AnnouncementRepository defines announcement operations
type AnnouncementRepository interface {
	Create(ctx context.Context, a *entities.Announcement) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Announcement, error)
	ListPublished(ctx context.Context) ([]*entities.Announcement, error)
	ListAll(ctx context.Context) ([]*entities.Announcement, error)
	Update(ctx context.Context, a *entities.Announcement) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// SupportTicketRepository defines support request operations
type SupportTicketRepository interface {
	Create(ctx context.Context, t *entities.SupportTicket) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.SupportTicket, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.SupportTicket, error)
	List(ctx context.Context, status string) ([]*entities.SupportTicket, error)
	Update(ctx context.Context, t *entities.SupportTicket) error
}
