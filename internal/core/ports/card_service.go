package ports

import (
	"context"

	"github.com/boardhq/board-api/internal/core/domain"
)

// CreateCardInput carries all data needed to create a new card. CreatedBy is
// the authenticated user's email taken from the verified token claims, never
// from the request body. IdempotencyKey is optional; when it repeats, the
// previously created card is returned without a second insert.
type CreateCardInput struct {
	Title          string
	Description    string
	Category       string
	ProjectName    string
	CreatedBy      string
	IdempotencyKey string
}

// CardService defines use-case operations for the board.
type CardService interface {
	AddCard(ctx context.Context, input CreateCardInput) (*domain.Card, error)
	ListBoard(ctx context.Context) ([]domain.Card, error)
}
