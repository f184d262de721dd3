package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/interfaces/http/middleware"
	"invest-portal.backend/internal/interfaces/http/response"
	"invest-portal.backend/internal/usecases"
)

// AnnouncementHandler handles announcements for both dashboards
type AnnouncementHandler struct {
	announcementUsecase *usecases.AnnouncementUsecase
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementUsecase *usecases.AnnouncementUsecase) *AnnouncementHandler {
	return &AnnouncementHandler{announcementUsecase: announcementUsecase}
}

type announcementInput struct {
	Title     string `json:"title" binding:"required,min=1,max=200"`
	Body      string `json:"body" binding:"required"`
	Published bool   `json:"published"`
}

// ListPublished lists what any logged-in user may read
// GET /api/v1/announcements
func (h *AnnouncementHandler) ListPublished(c *gin.Context) {
	announcements, err := h.announcementUsecase.ListPublished(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"announcements": announcements})
}

// ListAll lists drafts and published for the admin dashboard
// GET /api/v1/admin/announcements
func (h *AnnouncementHandler) ListAll(c *gin.Context) {
	announcements, err := h.announcementUsecase.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"announcements": announcements})
}

// Create creates an announcement
// POST /api/v1/admin/announcements
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var input announcementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	var adminID string
	if resolution, ok := middleware.GetRole(c); ok && resolution.AdminID != nil {
		adminID = resolution.AdminID.String()
	}

	announcement, err := h.announcementUsecase.Create(c.Request.Context(), input.Title, input.Body, input.Published, adminID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"announcement": announcement})
}

// Update edits an announcement, including its publish flag
// PUT /api/v1/admin/announcements/:id
func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid announcement id"))
		return
	}

	var input announcementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	announcement, err := h.announcementUsecase.Update(c.Request.Context(), id, input.Title, input.Body, input.Published)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"announcement": announcement})
}

// Delete removes an announcement
// DELETE /api/v1/admin/announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid announcement id"))
		return
	}

	if err := h.announcementUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "announcement deleted"})
}
