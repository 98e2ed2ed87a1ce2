package ports

import (
	"context"

	"github.com/boardhq/board-api/internal/core/domain"
)

// UserRepository defines the interface for user credential persistence.
// Create assigns the ID and timestamps; a duplicate email fails with
// domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
