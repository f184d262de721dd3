package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"invest-portal.backend/internal/domain/entities"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/interfaces/http/middleware"
	"invest-portal.backend/internal/interfaces/http/response"
	"invest-portal.backend/internal/usecases"
)

// PortfolioHandler handles fund holdings, admin side and investor side
type PortfolioHandler struct {
	portfolioUsecase *usecases.PortfolioUsecase
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(portfolioUsecase *usecases.PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{portfolioUsecase: portfolioUsecase}
}

// ListByInvestor lists holdings of one investor
// GET /api/v1/admin/investors/:id/portfolios
func (h *PortfolioHandler) ListByInvestor(c *gin.Context) {
	investorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid investor id"))
		return
	}

	holdings, err := h.portfolioUsecase.ListByInvestor(c.Request.Context(), investorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"portfolios": holdings})
}

// Create creates a holding
// POST /api/v1/admin/portfolios
func (h *PortfolioHandler) Create(c *gin.Context) {
	var input entities.CreatePortfolioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	portfolio, err := h.portfolioUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"portfolio": portfolio})
}

type updatePortfolioInput struct {
	FundName         string `json:"fundName" binding:"required"`
	InvestedAmount   string `json:"investedAmount" binding:"required"`
	CurrentValue     string `json:"currentValue" binding:"required"`
	ReturnPercent    string `json:"returnPercent"`
	IRRPercent       string `json:"irrPercent"`
	DeploymentStatus string `json:"deploymentStatus" binding:"required"`
}

// Update edits a holding
// PUT /api/v1/admin/portfolios/:id
func (h *PortfolioHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid portfolio id"))
		return
	}

	var input updatePortfolioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	portfolio, err := h.portfolioUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	invested, err := decimal.NewFromString(input.InvestedAmount)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid investedAmount"))
		return
	}
	current, err := decimal.NewFromString(input.CurrentValue)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid currentValue"))
		return
	}

	portfolio.FundName = input.FundName
	portfolio.InvestedAmount = invested
	portfolio.CurrentValue = current
	if input.ReturnPercent != "" {
		pct, err := decimal.NewFromString(input.ReturnPercent)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid returnPercent"))
			return
		}
		portfolio.ReturnPercent = pct
	}
	if input.IRRPercent != "" {
		pct, err := decimal.NewFromString(input.IRRPercent)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid irrPercent"))
			return
		}
		portfolio.IRRPercent = pct
	}
	switch entities.DeploymentStatus(input.DeploymentStatus) {
	case entities.DeploymentPending, entities.DeploymentPartial, entities.DeploymentDeployed:
		portfolio.DeploymentStatus = entities.DeploymentStatus(input.DeploymentStatus)
	default:
		response.Error(c, domainerrors.BadRequest("invalid deploymentStatus"))
		return
	}

	if err := h.portfolioUsecase.Update(c.Request.Context(), portfolio); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"portfolio": portfolio})
}

// Delete removes a holding
// DELETE /api/v1/admin/portfolios/:id
func (h *PortfolioHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid portfolio id"))
		return
	}

	if err := h.portfolioUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "portfolio deleted"})
}

// Mine lists the session investor's own holdings
// GET /api/v1/me/portfolio
func (h *PortfolioHandler) Mine(c *gin.Context) {
	resolution, ok := middleware.GetRole(c)
	if !ok || resolution.InvestorID == nil {
		response.Error(c, domainerrors.Forbidden("investor profile required"))
		return
	}

	holdings, err := h.portfolioUsecase.ListByInvestor(c.Request.Context(), *resolution.InvestorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"portfolios": holdings})
}
