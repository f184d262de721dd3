package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeploymentStatus tracks how much of the committed capital is deployed
type DeploymentStatus string

const (
	DeploymentPending  DeploymentStatus = "pending"
	DeploymentPartial  DeploymentStatus = "partial"
	DeploymentDeployed DeploymentStatus = "deployed"
)

// Portfolio is one fund holding of an investor. Money fields are decimals
// serialized as strings; they must never pass through a float.
type Portfolio struct {
	ID               uuid.UUID        `json:"id"`
	InvestorID       uuid.UUID        `json:"investorId"`
	FundName         string           `json:"fundName"`
	InvestedAmount   decimal.Decimal  `json:"investedAmount"`
	CurrentValue     decimal.Decimal  `json:"currentValue"`
	ReturnPercent    decimal.Decimal  `json:"returnPercent"`
	IRRPercent       decimal.Decimal  `json:"irrPercent"`
	DeploymentStatus DeploymentStatus `json:"deploymentStatus"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// CreatePortfolioInput represents input for creating a portfolio holding
type CreatePortfolioInput struct {
	InvestorID       uuid.UUID `json:"investorId" binding:"required"`
	FundName         string    `json:"fundName" binding:"required"`
	InvestedAmount   string    `json:"investedAmount" binding:"required"`
	CurrentValue     string    `json:"currentValue"`
	ReturnPercent    string    `json:"returnPercent"`
	IRRPercent       string    `json:"irrPercent"`
	DeploymentStatus string    `json:"deploymentStatus"`
}
