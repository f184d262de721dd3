package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "invest-portal.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Bare domain errors are mapped to their
// HTTP status first; anything unknown becomes a 500.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.FromDomain(err)
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message, // backward compatibility
	})
}

// AbortError aborts the request with an error response, for middleware
func AbortError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
