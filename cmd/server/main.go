package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"invest-portal.backend/internal/config"
	"invest-portal.backend/internal/infrastructure/repositories"
	"invest-portal.backend/internal/interfaces/http/handlers"
	"invest-portal.backend/internal/interfaces/http/middleware"
	"invest-portal.backend/internal/usecases"
	"invest-portal.backend/pkg/jwt"
	"invest-portal.backend/pkg/logger"
	"invest-portal.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize session token service
	sessionService := jwt.NewSessionService(cfg.Session.Secret, cfg.Session.Expiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	otpRepo := repositories.NewOTPRepository(db)
	adminRepo := repositories.NewAdminUserRepository(db)
	investorRepo := repositories.NewInvestorRepository(db)
	portfolioRepo := repositories.NewPortfolioRepository(db)
	statementRepo := repositories.NewStatementRepository(db)
	announcementRepo := repositories.NewAnnouncementRepository(db)
	supportTicketRepo := repositories.NewSupportTicketRepository(db)

	// Initialize session cache
	sessionStore, err := newSessionStore(cfg.Session.EncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize usecases
	resolver := usecases.NewRoleResolverUsecase(adminRepo, investorRepo)
	authUsecase := usecases.NewAuthUsecase(userRepo, otpRepo, sessionService, sessionStore, resolver, usecases.LogOTPSender{}, cfg.OTP.TTL)
	investorUsecase := usecases.NewInvestorUsecase(investorRepo, userRepo)
	portfolioUsecase := usecases.NewPortfolioUsecase(portfolioRepo, investorRepo)
	statementUsecase := usecases.NewStatementUsecase(investorRepo, statementRepo)
	announcementUsecase := usecases.NewAnnouncementUsecase(announcementRepo)
	supportUsecase := usecases.NewSupportUsecase(supportTicketRepo)
	adminUsecase := usecases.NewAdminUsecase(userRepo, adminRepo, investorRepo, authUsecase)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, resolver, cfg.Session.CookieName)
	investorHandler := handlers.NewInvestorHandler(investorUsecase)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioUsecase)
	statementHandler := handlers.NewStatementHandler(statementUsecase)
	announcementHandler := handlers.NewAnnouncementHandler(announcementUsecase)
	supportHandler := handlers.NewSupportHandler(supportUsecase)
	adminUserHandler := handlers.NewAdminUserHandler(adminUsecase)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r, cfg.CORS.AllowedOrigins)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		investorHandler:     investorHandler,
		portfolioHandler:    portfolioHandler,
		statementHandler:    statementHandler,
		announcementHandler: announcementHandler,
		supportHandler:      supportHandler,
		adminUserHandler:    adminUserHandler,
		sessionAuth:         middleware.SessionAuth(sessionService, authUsecase, cfg.Session.CookieName),
		resolveRole:         middleware.ResolveRole(resolver),
		statementsDir:       cfg.Statements.Dir,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
	}()

	// Start server
	log.Printf("🚀 Invest Portal Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
