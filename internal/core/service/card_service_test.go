package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/boardhq/board-api/internal/core/domain"
	"github.com/boardhq/board-api/internal/core/ports"
)

type stubCardRepo struct {
	cards   []domain.Card
	inserts int
	now     time.Time
}

func newStubCardRepo() *stubCardRepo {
	return &stubCardRepo{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (r *stubCardRepo) Create(_ context.Context, card *domain.Card) (*domain.Card, error) {
	r.inserts++
	r.now = r.now.Add(time.Second)
	created := *card
	created.ID = fmt.Sprintf("card_%d", r.inserts)
	created.CreatedAt = r.now
	created.UpdatedAt = r.now
	r.cards = append(r.cards, created)
	return &created, nil
}

func (r *stubCardRepo) FindByID(_ context.Context, id string) (*domain.Card, error) {
	for _, c := range r.cards {
		if c.ID == id {
			clone := c
			return &clone, nil
		}
	}
	return nil, domain.ErrCardNotFound
}

func (r *stubCardRepo) List(_ context.Context) ([]domain.Card, error) {
	out := make([]domain.Card, len(r.cards))
	for i, c := range r.cards {
		out[len(r.cards)-1-i] = c
	}
	return out, nil
}

type stubIdemStore struct {
	keys map[string]string
}

func newStubIdemStore() *stubIdemStore {
	return &stubIdemStore{keys: make(map[string]string)}
}

func (s *stubIdemStore) Get(_ context.Context, key string) (string, error) {
	return s.keys[key], nil
}

func (s *stubIdemStore) Set(_ context.Context, key, cardID string) error {
	s.keys[key] = cardID
	return nil
}

func TestCardService_AddCard(t *testing.T) {
	repo := newStubCardRepo()
	svc := NewCardService(repo, nil, zerolog.Nop())

	card, err := svc.AddCard(context.Background(), ports.CreateCardInput{
		Title:       "write report",
		Description: "quarterly numbers",
		Category:    "todo",
		CreatedBy:   "alice@example.com",
	})
	if err != nil {
		t.Fatalf("AddCard returned error: %v", err)
	}
	if card.ID == "" {
		t.Fatalf("expected store-assigned ID")
	}
	if card.CreatedAt.IsZero() || card.UpdatedAt.IsZero() {
		t.Fatalf("expected store-assigned timestamps")
	}
	if card.CreatedBy != "alice@example.com" {
		t.Fatalf("expected creator to be recorded, got %q", card.CreatedBy)
	}
}

func TestCardService_ListBoard_NewestFirst(t *testing.T) {
	repo := newStubCardRepo()
	svc := NewCardService(repo, nil, zerolog.Nop())

	for _, title := range []string{"c1", "c2", "c3"} {
		if _, err := svc.AddCard(context.Background(), ports.CreateCardInput{Title: title}); err != nil {
			t.Fatalf("AddCard(%s): %v", title, err)
		}
	}

	cards, err := svc.ListBoard(context.Background())
	if err != nil {
		t.Fatalf("ListBoard returned error: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}
	for i, want := range []string{"c3", "c2", "c1"} {
		if cards[i].Title != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, cards[i].Title)
		}
	}
}

func TestCardService_AddCard_IdempotentReplay(t *testing.T) {
	repo := newStubCardRepo()
	svc := NewCardService(repo, newStubIdemStore(), zerolog.Nop())

	input := ports.CreateCardInput{Title: "once", IdempotencyKey: "key-1"}

	first, err := svc.AddCard(context.Background(), input)
	if err != nil {
		t.Fatalf("first AddCard: %v", err)
	}
	second, err := svc.AddCard(context.Background(), input)
	if err != nil {
		t.Fatalf("second AddCard: %v", err)
	}

	if repo.inserts != 1 {
		t.Fatalf("expected 1 insert, got %d", repo.inserts)
	}
	if first.ID != second.ID {
		t.Fatalf("expected replay to return the original card: %s vs %s", first.ID, second.ID)
	}
}

func TestCardService_AddCard_DistinctKeys(t *testing.T) {
	repo := newStubCardRepo()
	svc := NewCardService(repo, newStubIdemStore(), zerolog.Nop())

	_, _ = svc.AddCard(context.Background(), ports.CreateCardInput{Title: "a", IdempotencyKey: "k1"})
	_, _ = svc.AddCard(context.Background(), ports.CreateCardInput{Title: "b", IdempotencyKey: "k2"})

	if repo.inserts != 2 {
		t.Fatalf("expected 2 inserts, got %d", repo.inserts)
	}
}
