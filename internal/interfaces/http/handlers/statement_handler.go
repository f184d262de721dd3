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

// maxStatementUpload caps the statement CSV size at 5 MiB
const maxStatementUpload = 5 << 20

// StatementHandler handles statement CSV imports and statement listings
type StatementHandler struct {
	statementUsecase *usecases.StatementUsecase
}

// NewStatementHandler creates a new statement handler
func NewStatementHandler(statementUsecase *usecases.StatementUsecase) *StatementHandler {
	return &StatementHandler{statementUsecase: statementUsecase}
}

// Import accepts a multipart CSV upload and matches rows to investors
// POST /api/v1/admin/statements/import
func (h *StatementHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("missing file field"))
		return
	}
	if fileHeader.Size > maxStatementUpload {
		response.Error(c, domainerrors.BadRequest("upload too large"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, domainerrors.BadRequest("unreadable upload"))
		return
	}
	defer file.Close()

	var adminID string
	if resolution, ok := middleware.GetRole(c); ok && resolution.AdminID != nil {
		adminID = resolution.AdminID.String()
	}

	result, err := h.statementUsecase.Import(c.Request.Context(), file, adminID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"matched":   result.Matched,
		"unmatched": result.Unmatched,
	})
}

// List lists every statement record
// GET /api/v1/admin/statements
func (h *StatementHandler) List(c *gin.Context) {
	statements, err := h.statementUsecase.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"statements": statements})
}

// ListByInvestor lists one investor's statements
// GET /api/v1/admin/investors/:id/statements
func (h *StatementHandler) ListByInvestor(c *gin.Context) {
	investorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid investor id"))
		return
	}

	statements, err := h.statementUsecase.ListForInvestor(c.Request.Context(), investorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"statements": statements})
}

// Delete removes a statement record
// DELETE /api/v1/admin/statements/:id
func (h *StatementHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid statement id"))
		return
	}

	if err := h.statementUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "statement deleted"})
}

// Mine lists the session investor's own statements
// GET /api/v1/me/statements
func (h *StatementHandler) Mine(c *gin.Context) {
	resolution, ok := middleware.GetRole(c)
	if !ok || resolution.InvestorID == nil {
		response.Error(c, domainerrors.Forbidden("investor profile required"))
		return
	}

	statements, err := h.statementUsecase.ListForInvestor(c.Request.Context(), *resolution.InvestorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"statements": statements})
}
