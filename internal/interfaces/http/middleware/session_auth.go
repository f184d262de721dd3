package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/interfaces/http/response"
	"invest-portal.backend/pkg/jwt"
)

const (
	// UserIDKey is the context key for the authenticated user ID
	UserIDKey = "userId"
	// SessionTokenIDKey is the context key for the presented token ID
	SessionTokenIDKey = "sessionTokenId"
)

// ActiveTokenSource looks up a user's currently valid session token ID.
// Empty means no active session.
type ActiveTokenSource interface {
	ActiveTokenID(ctx context.Context, userID uuid.UUID) (string, error)
}

// SessionAuth authenticates requests by session cookie. The JWT proves who
// signed the cookie; the token ID comparison enforces the single active
// session: a newer login overwrites the stored ID and older cookies stop
// matching.
func SessionAuth(sessions *jwt.SessionService, tokens ActiveTokenSource, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(cookieName)
		if err != nil || cookie == "" {
			response.AbortError(c, domainerrors.Unauthorized("session cookie missing"))
			return
		}

		claims, err := sessions.ValidateToken(cookie)
		if err != nil {
			response.AbortError(c, domainerrors.Unauthorized("invalid session"))
			return
		}

		activeTokenID, err := tokens.ActiveTokenID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.AbortError(c, domainerrors.Unauthorized("invalid session"))
			return
		}
		if activeTokenID == "" || activeTokenID != claims.TokenID {
			response.AbortError(c, domainerrors.ErrSessionInvalidated)
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(SessionTokenIDKey, claims.TokenID)
		c.Next()
	}
}

// GetUserID gets the authenticated user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}
