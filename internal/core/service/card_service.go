package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/boardhq/board-api/internal/core/domain"
	"github.com/boardhq/board-api/internal/core/ports"
)

// IdempotencyStore abstracts the replay-protection store (Redis). Get returns
// the card ID previously recorded under key, or empty when the key is new.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, cardID string) error
}

type CardService struct {
	repo   ports.CardRepository
	idem   IdempotencyStore
	logger zerolog.Logger
}

func NewCardService(repo ports.CardRepository, idem IdempotencyStore, logger zerolog.Logger) *CardService {
	return &CardService{repo: repo, idem: idem, logger: logger}
}

// AddCard persists a new card. If an idempotency key is provided and already
// seen, the previously created card is returned without a second insert. The
// store assigns the ID and both timestamps.
func (s *CardService) AddCard(ctx context.Context, input ports.CreateCardInput) (*domain.Card, error) {
	if input.IdempotencyKey != "" && s.idem != nil {
		if existing := s.replay(ctx, input.IdempotencyKey); existing != nil {
			return existing, nil
		}
	}

	card := &domain.Card{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		ProjectName: input.ProjectName,
		CreatedBy:   input.CreatedBy,
	}

	created, err := s.repo.Create(ctx, card)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create card")
		return nil, err
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Set(ctx, input.IdempotencyKey, created.ID); err != nil {
			s.logger.Warn().Err(err).Str("card_id", created.ID).Msg("failed to set idempotency key")
		}
	}

	s.logger.Info().Str("card_id", created.ID).Str("created_by", input.CreatedBy).Msg("card created")
	return created, nil
}

// replay resolves an already-seen idempotency key back to its card. Store
// failures degrade to a normal create rather than failing the request.
func (s *CardService) replay(ctx context.Context, key string) *domain.Card {
	id, err := s.idem.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Msg("idempotency check failed, creating anyway")
		return nil
	}
	if id == "" {
		return nil
	}

	card, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrCardNotFound) {
			s.logger.Warn().Err(err).Str("card_id", id).Msg("idempotent replay lookup failed")
		}
		return nil
	}

	s.logger.Info().Str("card_id", card.ID).Msg("idempotent replay")
	return card
}

// ListBoard returns every card, newest first.
func (s *CardService) ListBoard(ctx context.Context) ([]domain.Card, error) {
	cards, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list cards")
		return nil, err
	}
	return cards, nil
}
