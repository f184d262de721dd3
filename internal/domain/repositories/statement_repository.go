package repositories

import (
	"context"

	"github.com/google/uuid"
	"invest-portal.backend/internal/domain/entities"
)

// StatementRepository defines statement record operations
type StatementRepository interface {
	Create(ctx context.Context, s *entities.Statement) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Statement, error)
	ListByInvestor(ctx context.Context, investorID uuid.UUID) ([]*entities.Statement, error)
	List(ctx context.Context) ([]*entities.Statement, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
