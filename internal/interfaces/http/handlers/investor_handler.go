package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"invest-portal.backend/internal/domain/entities"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/interfaces/http/response"
	"invest-portal.backend/internal/usecases"
)

// InvestorHandler handles admin-side investor profile management
type InvestorHandler struct {
	investorUsecase *usecases.InvestorUsecase
}

// NewInvestorHandler creates a new investor handler
func NewInvestorHandler(investorUsecase *usecases.InvestorUsecase) *InvestorHandler {
	return &InvestorHandler{investorUsecase: investorUsecase}
}

// List lists investor profiles, filtered by ?search=
// GET /api/v1/admin/investors
func (h *InvestorHandler) List(c *gin.Context) {
	profiles, err := h.investorUsecase.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"investors": profiles})
}

// Get returns one investor profile
// GET /api/v1/admin/investors/:id
func (h *InvestorHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid investor id"))
		return
	}

	profile, err := h.investorUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"investor": profile})
}

// Create creates an investor profile
// POST /api/v1/admin/investors
func (h *InvestorHandler) Create(c *gin.Context) {
	var input entities.CreateInvestorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.investorUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"investor": profile})
}

type updateInvestorInput struct {
	FirstName string `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName" binding:"max=100"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
	KYCStatus string `json:"kycStatus"`
	IsActive  *bool  `json:"isActive"`
}

// Update edits an investor profile
// PUT /api/v1/admin/investors/:id
func (h *InvestorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid investor id"))
		return
	}

	var input updateInvestorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.investorUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	profile.FirstName = input.FirstName
	profile.LastName = input.LastName
	profile.Email = input.Email
	profile.Phone = input.Phone
	if input.KYCStatus != "" {
		switch entities.KYCStatus(input.KYCStatus) {
		case entities.KYCPending, entities.KYCSubmitted, entities.KYCVerified, entities.KYCRejected:
			profile.KYCStatus = entities.KYCStatus(input.KYCStatus)
		default:
			response.Error(c, domainerrors.BadRequest("invalid kyc status"))
			return
		}
	}
	if input.IsActive != nil {
		profile.IsActive = *input.IsActive
	}

	if err := h.investorUsecase.Update(c.Request.Context(), profile); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"investor": profile})
}

type linkUserInput struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
}

// LinkUser attaches a login to a profile
// PUT /api/v1/admin/investors/:id/user
func (h *InvestorHandler) LinkUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid investor id"))
		return
	}

	var input linkUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.investorUsecase.LinkUser(c.Request.Context(), id, input.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"investor": profile})
}

// Deactivate removes an investor profile
// DELETE /api/v1/admin/investors/:id
func (h *InvestorHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid investor id"))
		return
	}

	if err := h.investorUsecase.Deactivate(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "investor deactivated"})
}
