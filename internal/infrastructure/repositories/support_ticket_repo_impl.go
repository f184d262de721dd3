package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"invest-portal.backend/internal/domain/entities"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/infrastructure/models"
)

// SupportTicketRepository implements support request operations
type SupportTicketRepository struct {
	db *gorm.DB
}

// NewSupportTicketRepository creates a new support ticket repository
func NewSupportTicketRepository(db *gorm.DB) *SupportTicketRepository {
	return &SupportTicketRepository{db: db}
}

// Create creates a new support ticket
func (r *SupportTicketRepository) Create(ctx context.Context, t *entities.SupportTicket) error {
	m := &models.SupportTicket{
		ID:         t.ID,
		UserID:     t.UserID,
		Subject:    t.Subject,
		Message:    t.Message,
		Status:     string(t.Status),
		AdminReply: t.AdminReply.Ptr(),
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a support ticket by ID
func (r *SupportTicketRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.SupportTicket, error) {
	var m models.SupportTicket
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return ticketToEntity(&m), nil
}

// ListByUser returns all tickets raised by one user
func (r *SupportTicketRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.SupportTicket, error) {
	var ticketModels []models.SupportTicket
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ticketModels).Error
	if err != nil {
		return nil, err
	}
	return ticketsToEntities(ticketModels), nil
}

// List returns all tickets, optionally filtered by status
func (r *SupportTicketRepository) List(ctx context.Context, status string) ([]*entities.SupportTicket, error) {
	var ticketModels []models.SupportTicket
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, err
	}
	return ticketsToEntities(ticketModels), nil
}

// Update updates a support ticket (status, admin reply)
func (r *SupportTicketRepository) Update(ctx context.Context, t *entities.SupportTicket) error {
	updates := map[string]interface{}{
		"status":      string(t.Status),
		"admin_reply": t.AdminReply.Ptr(),
		"updated_at":  time.Now(),
	}
	result := r.db.WithContext(ctx).Model(&models.SupportTicket{}).Where("id = ?", t.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func ticketsToEntities(ticketModels []models.SupportTicket) []*entities.SupportTicket {
	out := make([]*entities.SupportTicket, 0, len(ticketModels))
	for i := range ticketModels {
		out = append(out, ticketToEntity(&ticketModels[i]))
	}
	return out
}

func ticketToEntity(m *models.SupportTicket) *entities.SupportTicket {
	return &entities.SupportTicket{
		ID:         m.ID,
		UserID:     m.UserID,
		Subject:    m.Subject,
		Message:    m.Message,
		Status:     entities.TicketStatus(m.Status),
		AdminReply: null.StringFromPtr(m.AdminReply),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
