package entities

import (
	"time"

	"github.com/google/uuid"
)

// OTP is a single-use login code. At most one live (unused, unexpired) code
// exists per (user, channel); issuing a new one retires the previous.
type OTP struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	Code      string     `json:"-"`
	Channel   OTPChannel `json:"channel"`
	ExpiresAt time.Time  `json:"expiresAt"`
	Used      bool       `json:"used"`
	CreatedAt time.Time  `json:"createdAt"`
}
