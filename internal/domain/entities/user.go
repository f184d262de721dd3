package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// OTPChannel identifies how a one-time code is delivered
type OTPChannel string

const (
	OTPChannelEmail OTPChannel = "email"
	OTPChannelPhone OTPChannel = "phone"
)

// User represents a portal login
type User struct {
	ID                 uuid.UUID   `json:"id"`
	Email              null.String `json:"email,omitempty"`
	Phone              null.String `json:"phone,omitempty"`
	FirstName          string      `json:"firstName"`
	LastName           string      `json:"lastName"`
	PasswordHash       string      `json:"-"`
	ActiveSessionToken null.String `json:"-"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// FullName returns the display name used across dashboards
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
	FirstName string `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName" binding:"max=100"`
	Password  string `json:"password" binding:"required,min=8"`
}

// LoginInput represents the first step of login (password check, OTP issue)
type LoginInput struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
}

// VerifyOTPInput represents the second step of login
type VerifyOTPInput struct {
	UserID  uuid.UUID  `json:"userId" binding:"required"`
	Channel OTPChannel `json:"channel" binding:"required"`
	Code    string     `json:"code" binding:"required,len=6"`
}

// LoginChallenge is returned after a successful password check; the session
// is only issued once the OTP is verified.
type LoginChallenge struct {
	UserID  uuid.UUID  `json:"userId"`
	Channel OTPChannel `json:"channel"`
	// Code is never serialized; it is handed to the delivery collaborator.
	Code string `json:"-"`
}

// AuthResponse represents a completed login
type AuthResponse struct {
	SessionToken string          `json:"-"`
	User         *User           `json:"user"`
	Role         *RoleResolution `json:"role"`
}
