package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/apierror"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/dto"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/model"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/repository"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/storage"
)

const resetTokenTTL = time.Hour

// ResetMailer delivers password-reset links without blocking the request.
type ResetMailer interface {
	EnqueueReset(to, resetURL string)
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	Logout(ctx context.Context, rawToken string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
}

type authService struct {
	users     repository.UserRepository
	rdb       *redis.Client // nil when redis is not configured
	mailer    ResetMailer
	secret    string
	tokenTTL  time.Duration
	publicURL string
	log       zerolog.Logger
}

func NewAuthService(users repository.UserRepository, rdb *redis.Client, mailer ResetMailer, secret string, tokenTTL time.Duration, publicURL string, log zerolog.Logger) AuthService {
	return &authService{
		users:     users,
		rdb:       rdb,
		mailer:    mailer,
		secret:    secret,
		tokenTTL:  tokenTTL,
		publicURL: publicURL,
		log:       log.With().Str("component", "auth_service").Logger(),
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindByLogin(ctx, req.Username)
	if errors.Is(err, storage.ErrNoRows) {
		return nil, apierror.Unauthorized("invalid username or password")
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apierror.Unauthorized("invalid username or password")
	}

	token, err := SignToken(s.secret, user, s.tokenTTL)
	if err != nil {
		return nil, apierror.Storage("sign token", err)
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.tokenTTL.Seconds()),
		User: dto.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		},
	}, nil
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apierror.Storage("hash password", err)
	}
	user := &model.User{
		Username:    req.Username,
		Email:       req.Email,
		Password:    string(hash),
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Role:        "client",
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

// Logout puts the token on the redis deny-list until its natural expiry.
// Without redis there is nothing to revoke server-side; the client just
// drops the token.
func (s *authService) Logout(ctx context.Context, rawToken string) error {
	if s.rdb == nil || rawToken == "" {
		return nil
	}
	claims, err := ParseToken(s.secret, rawToken)
	if err != nil {
		return nil // already unusable
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.Set(ctx, DenyKey(rawToken), "1", ttl).Err(); err != nil {
		s.log.Error().Err(err).Msg("failed to deny-list token")
		return apierror.Storage("deny-list token", err)
	}
	return nil
}

// ForgotPassword always succeeds from the caller's point of view so the
// endpoint cannot be used to probe which emails are registered.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, storage.ErrNoRows) {
		s.log.Info().Str("email", email).Msg("password reset requested for unknown email")
		return nil
	}
	if err != nil {
		return err
	}

	reset := &model.PasswordReset{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.users.CreatePasswordReset(ctx, reset); err != nil {
		return err
	}
	resetURL := fmt.Sprintf("%s/reset-password/%s", s.publicURL, reset.Token)
	s.mailer.EnqueueReset(user.Email, resetURL)
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, token, password string) error {
	reset, err := s.users.FindValidReset(ctx, token)
	if errors.Is(err, storage.ErrNoRows) {
		return apierror.Validation("reset link is invalid or expired")
	}
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apierror.Storage("hash password", err)
	}
	if err := s.users.UpdatePassword(ctx, reset.UserID, string(hash)); err != nil {
		return err
	}
	return s.users.ConsumeReset(ctx, reset.ID)
}
