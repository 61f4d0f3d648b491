package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/projecthub/projecthub-api/internal/api/metrics"
	"github.com/projecthub/projecthub-api/internal/core/domain"
	"github.com/projecthub/projecthub-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users   ports.UserRepository
	hasher  ports.PasswordHasher
	tokens  ports.TokenService
	limiter ports.LoginLimiter
	log     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, limiter ports.LoginLimiter, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, limiter: limiter, log: log}
}

// Register creates a new account. Name and email must both be unused.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if _, err := s.users.FindByName(ctx, name); err == nil {
		metrics.RegistrationsTotal.WithLabelValues("name_taken").Inc()
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		metrics.RegistrationsTotal.WithLabelValues("email_taken").Inc()
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return created, nil
}

// Login authenticates by account name and returns a signed token. An unknown
// name and a wrong password are deliberately indistinguishable to the caller:
// both surface as ErrInvalidCredentials. The internal log records the cause.
func (s *AuthService) Login(ctx context.Context, name, password string) (string, *domain.User, error) {
	if s.limiter != nil && s.limiter.TooManyFailures(ctx, name) {
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Str("name", name).Msg("login rejected: unknown user")
			s.recordFailure(ctx, name)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		s.log.Debug().Str("name", name).Msg("login rejected: password mismatch")
		s.recordFailure(ctx, name)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	if s.limiter != nil {
		s.limiter.Reset(ctx, name)
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, name string) {
	metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
	if s.limiter != nil {
		s.limiter.RecordFailure(ctx, name)
	}
}
