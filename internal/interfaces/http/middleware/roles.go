package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"invest-portal.backend/internal/domain/entities"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/interfaces/http/response"
)

// RoleKey is the context key for the resolved role
const RoleKey = "roleResolution"

// RoleSource resolves the capability of an authenticated user
type RoleSource interface {
	Resolve(ctx context.Context, userID uuid.UUID) (*entities.RoleResolution, error)
}

// ResolveRole loads the role resolution for the authenticated user into the
// request context. It must run after SessionAuth.
func ResolveRole(roles RoleSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			response.AbortError(c, domainerrors.Unauthorized("not authenticated"))
			return
		}

		resolution, err := roles.Resolve(c.Request.Context(), userID)
		if err != nil {
			response.AbortError(c, err)
			return
		}

		c.Set(RoleKey, resolution)
		c.Next()
	}
}

// GetRole gets the resolved role from context
func GetRole(c *gin.Context) (*entities.RoleResolution, bool) {
	value, exists := c.Get(RoleKey)
	if !exists {
		return nil, false
	}
	resolution, ok := value.(*entities.RoleResolution)
	return resolution, ok
}

// RequireAdmin passes admins and super-admins only
func RequireAdmin() gin.HandlerFunc {
	return requireRoles(entities.RoleAdmin, entities.RoleSuperAdmin)
}

// RequireSuperAdmin passes super-admins only
func RequireSuperAdmin() gin.HandlerFunc {
	return requireRoles(entities.RoleSuperAdmin)
}

// RequireInvestor passes users with an investor profile, including admins
// who also hold one.
func RequireInvestor() gin.HandlerFunc {
	return func(c *gin.Context) {
		resolution, ok := GetRole(c)
		if !ok {
			response.AbortError(c, domainerrors.Unauthorized("not authenticated"))
			return
		}
		if resolution.InvestorID == nil {
			response.AbortError(c, domainerrors.Forbidden("investor profile required"))
			return
		}
		c.Next()
	}
}

func requireRoles(allowed ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		resolution, ok := GetRole(c)
		if !ok {
			response.AbortError(c, domainerrors.Unauthorized("not authenticated"))
			return
		}
		for _, role := range allowed {
			if resolution.Role == role {
				c.Next()
				return
			}
		}
		response.AbortError(c, domainerrors.Forbidden("insufficient role"))
	}
}
