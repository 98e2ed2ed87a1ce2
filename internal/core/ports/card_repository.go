package ports

import (
	"context"

	"github.com/boardhq/board-api/internal/core/domain"
)

// CardRepository defines persistence operations for cards. Create assigns the
// ID and timestamps at insert time; List returns every card ordered by
// creation time, newest first.
type CardRepository interface {
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)
	FindByID(ctx context.Context, id string) (*domain.Card, error)
	List(ctx context.Context) ([]domain.Card, error)
}
