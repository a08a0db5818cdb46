package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/grievance-service/internal/auth"
	"github.com/spec-kit/grievance-service/internal/config"
	"github.com/spec-kit/grievance-service/internal/domain"
	"github.com/spec-kit/grievance-service/internal/repository"
	apperrors "github.com/spec-kit/grievance-service/pkg/util"
)

// AuthService coordinates signup, login and the password reset flow.
type AuthService struct {
	actors     repository.ActorRepository
	resets     repository.PasswordResetRepository
	directory  *DirectoryService
	tokenMgr   *auth.TokenManager
	bcryptCost int
	resetTTL   time.Duration
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	ActorRepo         repository.ActorRepository
	PasswordResetRepo repository.PasswordResetRepository
	Directory         *DirectoryService
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		actors:     deps.ActorRepo,
		resets:     deps.PasswordResetRepo,
		directory:  deps.Directory,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
		resetTTL:   time.Duration(cfg.Auth.PasswordResetTTLMinutes) * time.Minute,
	}
}

// Signup creates a new actor account. Duplicate emails are rejected
// before any row is written.
func (s *AuthService) Signup(ctx context.Context, input ActorCreateInput) (*domain.Actor, error) {
	return s.directory.CreateActor(ctx, input)
}

// Login authenticates by email and password and issues a bearer token.
// Unknown emails and wrong passwords are indistinguishable to callers.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Actor, string, time.Time, error) {
	actor, err := s.actors.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("incorrect email or password")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(actor.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("incorrect email or password")
	}

	token, exp, err := s.tokenMgr.GenerateToken(actor.ID, actor.Role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return actor, token, exp, nil
}

// RequestPasswordReset persists a single-use expiring reset token for
// the account. Setting a new password requires this token, so holding
// an email address alone is not enough to take over an account.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (*domain.PasswordResetToken, error) {
	actor, err := s.actors.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("actor", map[string]any{"email": email})
		}
		return nil, apperrors.MapError(err)
	}

	token := &domain.PasswordResetToken{
		ActorID:   actor.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.resetTTL),
	}
	if err := s.resets.Create(ctx, token); err != nil {
		return nil, apperrors.MapError(err)
	}
	return token, nil
}

// ConfirmPasswordReset validates the reset token and updates the
// password hash. Used or expired tokens are rejected.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, tokenStr, newPassword string) error {
	token, err := s.resets.GetByToken(ctx, tokenStr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthorized("invalid reset token")
		}
		return apperrors.MapError(err)
	}
	if token.UsedAt != nil || time.Now().After(token.ExpiresAt) {
		return apperrors.NewUnauthorized("reset token expired or used")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.MapError(err)
	}

	actor, err := s.actors.GetByID(ctx, token.ActorID)
	if err != nil {
		return apperrors.MapError(err)
	}
	actor.PasswordHash = hash
	if err := s.actors.Update(ctx, actor); err != nil {
		return apperrors.MapError(err)
	}
	return s.resets.MarkUsed(ctx, token.ID)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
