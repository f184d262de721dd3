package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"invest-portal.backend/internal/domain/entities"
	domainerrors "invest-portal.backend/internal/domain/errors"
	"invest-portal.backend/internal/domain/repositories"
	"invest-portal.backend/pkg/crypto"
	"invest-portal.backend/pkg/jwt"
	"invest-portal.backend/pkg/logger"
	"invest-portal.backend/pkg/redis"
	"invest-portal.backend/pkg/utils"
)

// OTPSender delivers a one-time code to the user over the chosen channel.
// Actual email/SMS delivery is external; the default sender only logs.
type OTPSender interface {
	Send(ctx context.Context, user *entities.User, channel entities.OTPChannel, code string) error
}

// LogOTPSender logs issued codes at debug level for development setups.
type LogOTPSender struct{}

func (LogOTPSender) Send(ctx context.Context, user *entities.User, channel entities.OTPChannel, code string) error {
	logger.Debug(ctx, "otp issued",
		zap.String("user_id", user.ID.String()),
		zap.String("channel", string(channel)),
		zap.String("code", code),
	)
	return nil
}

// SessionCache is the redis-backed fast path for active session lookups.
// The users table stays the source of truth.
type SessionCache interface {
	SaveSession(ctx context.Context, userID string, data *redis.SessionData, expiration time.Duration) error
	GetSession(ctx context.Context, userID string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, userID string) error
}

// AuthUsecase handles registration, the two-step OTP login and sessions
type AuthUsecase struct {
	userRepo     repositories.UserRepository
	otpRepo      repositories.OTPRepository
	sessions     *jwt.SessionService
	sessionCache SessionCache
	resolver     *RoleResolverUsecase
	sender       OTPSender
	otpTTL       time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	otpRepo repositories.OTPRepository,
	sessions *jwt.SessionService,
	sessionCache SessionCache,
	resolver *RoleResolverUsecase,
	sender OTPSender,
	otpTTL time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		otpRepo:      otpRepo,
		sessions:     sessions,
		sessionCache: sessionCache,
		resolver:     resolver,
		sender:       sender,
		otpTTL:       otpTTL,
	}
}

// SessionExpiry returns the configured session lifetime, used for cookie
// max-age.
func (u *AuthUsecase) SessionExpiry() time.Duration {
	return u.sessions.Expiry()
}

// Register creates a login. At least one of email or phone is required; a
// unique-index violation surfaces as DuplicateKey.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	if input.Email == "" && input.Phone == "" {
		return nil, domainerrors.ErrInvalidInput
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.Email != "" {
		user.Email = null.StringFrom(input.Email)
	}
	if input.Phone != "" {
		user.Phone = null.StringFrom(input.Phone)
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login is the first step: password check, then a fresh one-time code. The
// same InvalidCredentials error covers unknown identifier and wrong password.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.LoginChallenge, error) {
	if input.Email == "" && input.Phone == "" {
		return nil, domainerrors.ErrInvalidInput
	}

	var (
		user    *entities.User
		channel entities.OTPChannel
		err     error
	)
	if input.Email != "" {
		user, err = u.userRepo.GetByEmail(ctx, input.Email)
		channel = entities.OTPChannelEmail
	} else {
		user, err = u.userRepo.GetByPhone(ctx, input.Phone)
		channel = entities.OTPChannelPhone
	}
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	code, err := u.issueOTP(ctx, user, channel)
	if err != nil {
		return nil, err
	}

	return &entities.LoginChallenge{
		UserID:  user.ID,
		Channel: channel,
		Code:    code,
	}, nil
}

// issueOTP retires any live code for (user, channel) and inserts a new one,
// so at most one code can ever verify.
func (u *AuthUsecase) issueOTP(ctx context.Context, user *entities.User, channel entities.OTPChannel) (string, error) {
	if err := u.otpRepo.InvalidateUnused(ctx, user.ID, channel); err != nil {
		return "", err
	}

	code, err := crypto.GenerateOTPCode()
	if err != nil {
		return "", err
	}

	now := time.Now()
	otp := &entities.OTP{
		ID:        utils.GenerateUUIDv7(),
		UserID:    user.ID,
		Code:      code,
		Channel:   channel,
		ExpiresAt: now.Add(u.otpTTL),
		CreatedAt: now,
	}
	if err := u.otpRepo.Create(ctx, otp); err != nil {
		return "", err
	}

	if err := u.sender.Send(ctx, user, channel, code); err != nil {
		return "", err
	}
	return code, nil
}

// VerifyOTP is the second step: check the code, then mint the session. The
// new session token overwrites any previous one, which is what enforces a
// single active session per user.
func (u *AuthUsecase) VerifyOTP(ctx context.Context, input *entities.VerifyOTPInput) (*entities.AuthResponse, error) {
	otp, err := u.otpRepo.GetLatest(ctx, input.UserID, input.Channel, input.Code)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCode
		}
		return nil, err
	}
	if otp.Used {
		return nil, domainerrors.ErrCodeAlreadyUsed
	}
	if time.Now().After(otp.ExpiresAt) {
		return nil, domainerrors.ErrCodeExpired
	}
	if err := u.otpRepo.MarkUsed(ctx, otp.ID); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	tokenID, err := crypto.GenerateSessionTokenID()
	if err != nil {
		return nil, err
	}
	sessionToken, err := u.sessions.GenerateToken(user.ID, tokenID)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.UpdateSessionToken(ctx, user.ID, tokenID); err != nil {
		return nil, err
	}

	// cache failure is not fatal: the middleware falls back to the database
	cacheErr := u.sessionCache.SaveSession(ctx, user.ID.String(), &redis.SessionData{
		UserID:   user.ID.String(),
		TokenID:  tokenID,
		IssuedAt: time.Now(),
	}, u.sessions.Expiry())
	if cacheErr != nil {
		logger.Warn(ctx, "session cache write failed", zap.Error(cacheErr), zap.String("user_id", user.ID.String()))
	}

	role, err := u.resolver.Resolve(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	user.ActiveSessionToken = null.StringFrom(tokenID)
	return &entities.AuthResponse{
		SessionToken: sessionToken,
		User:         user,
		Role:         role,
	}, nil
}

// ActiveTokenID returns the user's current session token ID, empty when the
// user has no active session. Redis is the fast path, the database the truth.
func (u *AuthUsecase) ActiveTokenID(ctx context.Context, userID uuid.UUID) (string, error) {
	if data, err := u.sessionCache.GetSession(ctx, userID.String()); err == nil && data != nil {
		return data.TokenID, nil
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.ActiveSessionToken.String, nil
}

// CurrentUser loads the user behind an authenticated session
func (u *AuthUsecase) CurrentUser(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// Logout clears the stored session token and the cached session record
func (u *AuthUsecase) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := u.userRepo.UpdateSessionToken(ctx, userID, ""); err != nil {
		return err
	}
	if err := u.sessionCache.DeleteSession(ctx, userID.String()); err != nil {
		logger.Warn(ctx, "session cache delete failed", zap.Error(err), zap.String("user_id", userID.String()))
	}
	return nil
}
