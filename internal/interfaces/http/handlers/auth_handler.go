package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"invest-portal.backend/internal/domain/entities"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/interfaces/http/middleware"
	"invest-portal.backend/internal/interfaces/http/response"
	"invest-portal.backend/internal/usecases"
)

// AuthHandler handles the two-step login, session introspection and logout
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
	resolver    *usecases.RoleResolverUsecase
	cookieName  string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase, resolver *usecases.RoleResolverUsecase, cookieName string) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		resolver:    resolver,
		cookieName:  cookieName,
	}
}

// Register creates a login
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

// Login handles the password step and issues a one-time code
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	challenge, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	// the code itself never leaves through this endpoint
	response.Success(c, http.StatusOK, gin.H{
		"otpRequired": true,
		"userId":      challenge.UserID,
		"channel":     challenge.Channel,
	})
}

// VerifyOTP handles the code step and sets the session cookie
// POST /api/v1/auth/verify-otp
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var input entities.VerifyOTPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	auth, err := h.authUsecase.VerifyOTP(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	maxAge := int(h.authUsecase.SessionExpiry().Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, auth.SessionToken, maxAge, "/", "", false, true)

	response.Success(c, http.StatusOK, gin.H{
		"user": auth.User,
		"role": auth.Role,
	})
}

// CurrentUser returns the user behind the session cookie
// GET /api/v1/auth/user
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	user, err := h.authUsecase.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// Role returns the role resolution for the session user
// GET /api/v1/user/role
func (h *AuthHandler) Role(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	resolution, err := h.resolver.Resolve(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, resolution)
}

// Logout invalidates the active session and clears the cookie
// POST /api/v1/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	if err := h.authUsecase.Logout(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}
