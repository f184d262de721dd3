package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"invest-portal.backend/internal/interfaces/http/handlers"
	"invest-portal.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	investorHandler     *handlers.InvestorHandler
	portfolioHandler    *handlers.PortfolioHandler
	statementHandler    *handlers.StatementHandler
	announcementHandler *handlers.AnnouncementHandler
	supportHandler      *handlers.SupportHandler
	adminUserHandler    *handlers.AdminUserHandler
	sessionAuth         gin.HandlerFunc
	resolveRole         gin.HandlerFunc
	statementsDir       string
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/verify-otp", d.authHandler.VerifyOTP)
		}

		// Session-gated routes
		authed := v1.Group("")
		authed.Use(d.sessionAuth)
		{
			authed.GET("/auth/user", d.authHandler.CurrentUser)
			authed.GET("/user/role", d.authHandler.Role)
			authed.POST("/logout", d.authHandler.Logout)

			// any logged-in user may read published announcements
			authed.GET("/announcements", d.announcementHandler.ListPublished)

			// support tickets, own tickets only
			authed.POST("/support", d.supportHandler.Create)
			authed.GET("/support", d.supportHandler.Mine)
		}

		// Investor dashboard routes
		me := v1.Group("/me")
		me.Use(d.sessionAuth, d.resolveRole, middleware.RequireInvestor())
		{
			me.GET("/portfolio", d.portfolioHandler.Mine)
			me.GET("/statements", d.statementHandler.Mine)
			me.POST("/tickets", d.supportHandler.Create)
			me.GET("/tickets", d.supportHandler.Mine)
		}

		// Admin dashboard routes
		admin := v1.Group("/admin")
		admin.Use(d.sessionAuth, d.resolveRole, middleware.RequireAdmin())
		{
			admin.GET("/investors", d.investorHandler.List)
			admin.POST("/investors", d.investorHandler.Create)
			admin.GET("/investors/:id", d.investorHandler.Get)
			admin.PUT("/investors/:id", d.investorHandler.Update)
			admin.PUT("/investors/:id/user", d.investorHandler.LinkUser)
			admin.DELETE("/investors/:id", d.investorHandler.Deactivate)
			admin.GET("/investors/:id/portfolios", d.portfolioHandler.ListByInvestor)
			admin.GET("/investors/:id/statements", d.statementHandler.ListByInvestor)

			admin.POST("/portfolios", d.portfolioHandler.Create)
			admin.PUT("/portfolios/:id", d.portfolioHandler.Update)
			admin.DELETE("/portfolios/:id", d.portfolioHandler.Delete)

			admin.POST("/statements/import", d.statementHandler.Import)
			admin.GET("/statements", d.statementHandler.List)
			admin.DELETE("/statements/:id", d.statementHandler.Delete)

			admin.GET("/announcements", d.announcementHandler.ListAll)
			admin.POST("/announcements", d.announcementHandler.Create)
			admin.PUT("/announcements/:id", d.announcementHandler.Update)
			admin.DELETE("/announcements/:id", d.announcementHandler.Delete)

			admin.GET("/support", d.supportHandler.List)
			admin.PUT("/support/:id", d.supportHandler.Reply)

			// grant management, super-admin only
			admins := admin.Group("/admins")
			admins.Use(middleware.RequireSuperAdmin())
			{
				admins.GET("", d.adminUserHandler.List)
				admins.GET("/:id", d.adminUserHandler.Get)
				admins.POST("", d.adminUserHandler.Grant)
				admins.PUT("/:id/active", d.adminUserHandler.SetActive)
			}
		}
	}

	// Rendered statement PDFs, session-gated
	files := r.Group("/statements")
	files.Use(d.sessionAuth)
	files.Static("/", d.statementsDir)

	// Unversioned aliases the frontend still calls
	api := r.Group("/api")
	api.Use(d.sessionAuth)
	{
		api.GET("/auth/user", d.authHandler.CurrentUser)
		api.GET("/user/role", d.authHandler.Role)
		api.POST("/logout", d.authHandler.Logout)
	}
}

// applyCORSMiddleware echoes allow-listed origins and answers preflights.
// Credentials are always allowed because the session rides on a cookie.
func applyCORSMiddleware(r *gin.Engine, allowedOrigins []string) {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "invest-portal-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
