package ports

import (
	"context"

	"github.com/boardhq/board-api/internal/core/domain"
)

type AuthService interface {
	SignUp(ctx context.Context, username, email, password string) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	ForgotPassword(ctx context.Context, email string) error
}
