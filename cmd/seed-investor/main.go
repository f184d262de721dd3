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

type seedInvestorRuntime interface {
	SeedInvestor(ctx context.Context, email, password, first, last, phone string) (*entities.InvestorProfile, error)
}

type seedInvestorDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (seedInvestorRuntime, io.Closer, error)
	out     io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultSeedInvestorDeps() seedInvestorDeps {
	return seedInvestorDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (seedInvestorRuntime, io.Closer, error) {
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

func runSeedInvestor(args []string, deps seedInvestorDeps) error {
	if deps.loadEnv == nil {
		deps.loadEnv = func() error { return godotenv.Load() }
	}
	if deps.loadCfg == nil {
		deps.loadCfg = config.Load
	}
	if deps.prepare == nil {
		def := defaultSeedInvestorDeps()
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = os.Stdout
	}

	fs := flag.NewFlagSet("seed-investor", flag.ContinueOnError)
	emailFlag := fs.String("email", "", "investor login email (required)")
	passwordFlag := fs.String("password", "", "investor login password (required)")
	firstFlag := fs.String("first", "", "investor first name (required)")
	lastFlag := fs.String("last", "", "investor last name")
	phoneFlag := fs.String("phone", "", "investor phone (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *emailFlag == "" || *passwordFlag == "" || *firstFlag == "" {
		return fmt.Errorf("--email, --password and --first are required")
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

	profile, err := runtime.SeedInvestor(ctx, *emailFlag, *passwordFlag, *firstFlag, *lastFlag, *phoneFlag)
	if err != nil {
		return fmt.Errorf("failed seeding investor: %w", err)
	}

	_, _ = fmt.Fprintln(deps.out, "Seeded investor profile")
	_, _ = fmt.Fprintf(deps.out, "investor_id=%s\n", profile.ID.String())
	_, _ = fmt.Fprintf(deps.out, "user_id=%s\n", profile.UserID.String)
	_, _ = fmt.Fprintf(deps.out, "name=%s %s\n", profile.FirstName, profile.LastName)
	return nil
}

func main() {
	if err := runSeedInvestor(os.Args[1:], defaultSeedInvestorDeps()); err != nil {
		log.Fatal(err)
	}
}
