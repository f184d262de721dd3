package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"invest-portal.backend/internal/domain/entities"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/interfaces/http/middleware"
	"invest-portal.backend/internal/interfaces/http/response"
	"invest-portal.backend/internal/usecases"
)

// SupportHandler handles support tickets
type SupportHandler struct {
	supportUsecase *usecases.SupportUsecase
}

// NewSupportHandler creates a new support handler
func NewSupportHandler(supportUsecase *usecases.SupportUsecase) *SupportHandler {
	return &SupportHandler{supportUsecase: supportUsecase}
}

type createTicketInput struct {
	Subject string `json:"subject" binding:"required,min=1,max=200"`
	Message string `json:"message" binding:"required"`
}

// Create opens a ticket for the session user
// POST /api/v1/support
func (h *SupportHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	var input createTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	ticket, err := h.supportUsecase.Create(c.Request.Context(), userID, input.Subject, input.Message)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"ticket": ticket})
}

// Mine lists the session user's own tickets
// GET /api/v1/support
func (h *SupportHandler) Mine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	tickets, err := h.supportUsecase.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tickets": tickets})
}

// List lists tickets for the admin dashboard, filtered by ?status=
// GET /api/v1/admin/support
func (h *SupportHandler) List(c *gin.Context) {
	tickets, err := h.supportUsecase.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tickets": tickets})
}

type replyTicketInput struct {
	Reply  string `json:"reply"`
	Status string `json:"status" binding:"required"`
}

// Reply records an admin reply and a status move
// PUT /api/v1/admin/support/:id
func (h *SupportHandler) Reply(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid ticket id"))
		return
	}

	var input replyTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	ticket, err := h.supportUsecase.Reply(c.Request.Context(), id, input.Reply, entities.TicketStatus(input.Status))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ticket": ticket})
}
