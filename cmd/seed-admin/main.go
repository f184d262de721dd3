package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"invest-portal.backend/internal/config"
	"invest-portal.backend/internal/domain/entities"
	"invest-portal.backend/internal/infrastructure/repositories"
	"invest-portal.backend/internal/usecases"
	"invest-portal.backend/pkg/jwt"
)

var openSeedDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{PrepareStmt: false})
}

var openSeedSQLDB = func(db *gorm.DB) (io.Closer, error) {
	return db.DB()
}

type seedAdminRuntime interface {
	SeedAdmin(ctx context.Context, email, password string, role entities.AdminRole, phone string) (*entities.AdminUser, error)
}

type seedAdminDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (seedAdminRuntime, io.Closer, error)
	out     io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultSeedAdminDeps() seedAdminDeps {
	return seedAdminDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (seedAdminRuntime, io.Closer, error) {
			db, err := openSeedDB(cfg.Database.URL())
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}
			sqlDB, err := openSeedSQLDB(db)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}

			userRepo := repositories.NewUserRepository(db)
			otpRepo := repositories.NewOTPRepository(db)
			adminRepo := repositories.NewAdminUserRepository(db)
			investorRepo := repositories.NewInvestorRepository(db)
			resolver := usecases.NewRoleResolverUsecase(adminRepo, investorRepo)
			sessions := jwt.NewSessionService(cfg.Session.Secret, cfg.Session.Expiry)
			// the session cache is only touched on login, never while seeding
			authUsecase := usecases.NewAuthUsecase(userRepo, otpRepo, sessions, nil, resolver, usecases.LogOTPSender{}, cfg.OTP.TTL)
			return usecases.NewAdminUsecase(userRepo, adminRepo, investorRepo, authUsecase), sqlDB, nil
		},
		out: os.Stdout,
	}
}

func parseRole(role string) (entities.AdminRole, error) {
	switch entities.AdminRole(role) {
	case entities.AdminRoleAdmin, entities.AdminRoleSuperAdmin:
		return entities.AdminRole(role), nil
	default:
		return "", fmt.Errorf("invalid --role %q, want admin or super_admin", role)
	}
}

func runSeedAdmin(args []string, deps seedAdminDeps) error {
	if deps.loadEnv == nil {
		deps.loadEnv = func() error { return godotenv.Load() }
	}
	if deps.loadCfg == nil {
		deps.loadCfg = config.Load
	}
	if deps.prepare == nil {
		def := defaultSeedAdminDeps()
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = os.Stdout
	}

	fs := flag.NewFlagSet("seed-admin", flag.ContinueOnError)
	emailFlag := fs.String("email", "", "admin login email (required)")
	passwordFlag := fs.String("password", "", "admin login password (required)")
	roleFlag := fs.String("role", string(entities.AdminRoleSuperAdmin), "admin role: admin or super_admin")
	phoneFlag := fs.String("phone", "", "admin phone (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *emailFlag == "" || *passwordFlag == "" {
		return fmt.Errorf("--email and --password are required")
	}
	role, err := parseRole(*roleFlag)
	if err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	runtime, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := runtime.SeedAdmin(ctx, *emailFlag, *passwordFlag, role, *phoneFlag)
	if err != nil {
		return fmt.Errorf("failed seeding admin: %w", err)
	}

	_, _ = fmt.Fprintln(deps.out, "Seeded admin grant")
	_, _ = fmt.Fprintf(deps.out, "admin_id=%s\n", admin.ID.String())
	_, _ = fmt.Fprintf(deps.out, "user_id=%s\n", admin.UserID.String())
	_, _ = fmt.Fprintf(deps.out, "role=%s\n", admin.Role)
	return nil
}

func main() {
	if err := runSeedAdmin(os.Args[1:], defaultSeedAdminDeps()); err != nil {
		log.Fatal(err)
	}
}
