package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// KYCStatus represents investor identity-verification progress
type KYCStatus string

const (
	KYCPending   KYCStatus = "pending"
	KYCSubmitted KYCStatus = "submitted"
	KYCVerified  KYCStatus = "verified"
	KYCRejected  KYCStatus = "rejected"
)

// InvestorProfile holds investor identity and KYC fields. The linked login is
// optional: a profile may predate its user account.
type InvestorProfile struct {
	ID        uuid.UUID   `json:"id"`
	UserID    null.String `json:"userId,omitempty"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	KYCStatus KYCStatus   `json:"kycStatus"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// NormalizedName returns the lower-cased, whitespace-collapsed full name used
// for statement row matching.
func (p *InvestorProfile) NormalizedName() string {
	return NormalizeInvestorName(p.FirstName + " " + p.LastName)
}

// NormalizeInvestorName lower-cases a name and collapses runs of whitespace.
func NormalizeInvestorName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// CreateInvestorInput represents input for creating an investor profile
type CreateInvestorInput struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName" binding:"max=100"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
}
