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

// AdminUserHandler manages admin grants, super-admin only
type AdminUserHandler struct {
	adminUsecase *usecases.AdminUsecase
}

// NewAdminUserHandler creates a new admin user handler
func NewAdminUserHandler(adminUsecase *usecases.AdminUsecase) *AdminUserHandler {
	return &AdminUserHandler{adminUsecase: adminUsecase}
}

// List lists all admin grants
// GET /api/v1/admin/admins
func (h *AdminUserHandler) List(c *gin.Context) {
	admins, err := h.adminUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"admins": admins})
}

// Get returns one admin grant
// GET /api/v1/admin/admins/:id
func (h *AdminUserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid admin id"))
		return
	}

	admin, err := h.adminUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"admin": admin})
}

// Grant creates or updates an admin grant
// POST /api/v1/admin/admins
func (h *AdminUserHandler) Grant(c *gin.Context) {
	var input entities.CreateAdminUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	admin, err := h.adminUsecase.Grant(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"admin": admin})
}

type setActiveInput struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// SetActive enables or disables a grant
// PUT /api/v1/admin/admins/:id/active
func (h *AdminUserHandler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid admin id"))
		return
	}

	var input setActiveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.adminUsecase.SetActive(c.Request.Context(), id, *input.IsActive); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "admin updated"})
}
