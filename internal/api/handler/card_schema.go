package handler

import (
	"time"

	"github.com/boardhq/board-api/internal/core/domain"
)

type addCardRequest struct {
	Title       string `json:"title"        validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ProjectName string `json:"project_name"`
}

// cardResponse is the transport view of a card, kept separate from the domain
// type so the JSON contract is not coupled to internal changes.
type cardResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ProjectName string    `json:"project_name,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toCardResponse(card domain.Card) cardResponse {
	return cardResponse{
		ID:          card.ID,
		Title:       card.Title,
		Description: card.Description,
		Category:    card.Category,
		ProjectName: card.ProjectName,
		CreatedBy:   card.CreatedBy,
		CreatedAt:   card.CreatedAt.UTC(),
		UpdatedAt:   card.UpdatedAt.UTC(),
	}
}

func toBoardResponse(cards []domain.Card) []cardResponse {
	out := make([]cardResponse, len(cards))
	for i, card := range cards {
		out[i] = toCardResponse(card)
	}
	return out
}
