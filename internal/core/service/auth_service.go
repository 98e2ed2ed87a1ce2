package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/boardhq/board-api/internal/core/domain"
	"github.com/boardhq/board-api/internal/core/ports"
	"github.com/boardhq/board-api/internal/pkg/token"
)

// AuthService implements signup, signin, and the forgot-password stub.
type AuthService struct {
	repo   ports.UserRepository
	tokens *token.Manager
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *token.Manager, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// SignUp hashes the password and persists the new user. The plaintext is not
// retained anywhere past the bcrypt call.
func (s *AuthService) SignUp(ctx context.Context, username, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrHashingFailed, err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Msg("user registered")
	return created, nil
}

// SignIn verifies the credentials and issues a token. An unknown email and a
// wrong password both fail with ErrInvalidCredentials so the response never
// reveals which half was wrong.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("user signed in")
	return signed, nil
}

// ForgotPassword is a stub: it confirms the account exists and nothing more.
// No reset token is generated and no mail is sent.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if _, err := s.repo.FindByEmail(ctx, email); err != nil {
		return err
	}
	s.logger.Info().Str("email", email).Msg("password reset requested")
	return nil
}
