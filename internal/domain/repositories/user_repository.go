package repositories

import (
	"context"

	"github.com/google/uuid"
	"invest-portal.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByPhone(ctx context.Context, phone string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	// UpdateSessionToken stores the current session token; empty clears it.
	UpdateSessionToken(ctx context.Context, id uuid.UUID, token string) error
	List(ctx context.Context, search string) ([]*entities.User, error)
}

// OTPRepository defines one-time code lifecycle operations
type OTPRepository interface {
	Create(ctx context.Context, otp *entities.OTP) error
	// GetLatest returns the most recently issued code record for (user,
	// channel, code), used or not.
	GetLatest(ctx context.Context, userID uuid.UUID, channel entities.OTPChannel, code string) (*entities.OTP, error)
	// InvalidateUnused marks every unused code for (user, channel) as used so
	// at most one live code exists after a re-issue.
	InvalidateUnused(ctx context.Context, userID uuid.UUID, channel entities.OTPChannel) error
	// MarkUsed flips the used flag; ErrCodeAlreadyUsed when it was already set.
	MarkUsed(ctx context.Context, id uuid.UUID) error
}
