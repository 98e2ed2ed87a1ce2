package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/boardhq/board-api/internal/api/middleware"
	"github.com/boardhq/board-api/internal/core/domain"
	"github.com/boardhq/board-api/internal/core/ports"
)

type stubCardService struct {
	addCardFn   func(ctx context.Context, input ports.CreateCardInput) (*domain.Card, error)
	listBoardFn func(ctx context.Context) ([]domain.Card, error)
}

func (s *stubCardService) AddCard(ctx context.Context, input ports.CreateCardInput) (*domain.Card, error) {
	return s.addCardFn(ctx, input)
}

func (s *stubCardService) ListBoard(ctx context.Context) ([]domain.Card, error) {
	return s.listBoardFn(ctx)
}

func newAuthedContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newTestContext(t, method, path, body)
	c.Set(middleware.ContextEmailKey, "alice@example.com")
	return c, rec
}

func TestCardHandler_Add_Success(t *testing.T) {
	stub := &stubCardService{
		addCardFn: func(ctx context.Context, input ports.CreateCardInput) (*domain.Card, error) {
			if input.Title != "t" || input.CreatedBy != "alice@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Card{
				ID:        "c1",
				Title:     input.Title,
				CreatedBy: input.CreatedBy,
				CreatedAt: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
				UpdatedAt: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	h := NewCardHandler(stub)

	c, rec := newAuthedContext(t, http.MethodPost, "/addcard", `{"title":"t"}`)

	if err := h.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["title"] != "t" {
		t.Fatalf("unexpected title: %v", resp["title"])
	}
	if resp["created_at"] == nil || resp["created_at"] == "" {
		t.Fatalf("expected timestamp in response")
	}
}

func TestCardHandler_Add_PassesIdempotencyKey(t *testing.T) {
	var gotKey string
	stub := &stubCardService{
		addCardFn: func(ctx context.Context, input ports.CreateCardInput) (*domain.Card, error) {
			gotKey = input.IdempotencyKey
			return &domain.Card{ID: "c1", Title: input.Title}, nil
		},
	}
	h := NewCardHandler(stub)

	c, _ := newAuthedContext(t, http.MethodPost, "/addcard", `{"title":"t"}`)
	c.Request().Header.Set("Idempotency-Key", "key-42")

	if err := h.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotKey != "key-42" {
		t.Fatalf("expected idempotency key to be forwarded, got %q", gotKey)
	}
}

func TestCardHandler_Add_MissingTitle(t *testing.T) {
	stub := &stubCardService{
		addCardFn: func(ctx context.Context, input ports.CreateCardInput) (*domain.Card, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewCardHandler(stub)

	c, rec := newAuthedContext(t, http.MethodPost, "/addcard", `{"description":"no title"}`)

	_ = h.Add(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCardHandler_Add_NoClaims(t *testing.T) {
	stub := &stubCardService{
		addCardFn: func(ctx context.Context, input ports.CreateCardInput) (*domain.Card, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewCardHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/addcard", strings.NewReader(`{"title":"t"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Add(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestCardHandler_List_NewestFirst(t *testing.T) {
	stub := &stubCardService{
		listBoardFn: func(ctx context.Context) ([]domain.Card, error) {
			return []domain.Card{
				{ID: "c3", Title: "third"},
				{ID: "c2", Title: "second"},
				{ID: "c1", Title: "first"},
			}, nil
		},
	}
	h := NewCardHandler(stub)

	c, rec := newAuthedContext(t, http.MethodGet, "/listboard", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(resp))
	}
	for i, want := range []string{"third", "second", "first"} {
		if resp[i]["title"] != want {
			t.Fatalf("position %d: expected %s, got %v", i, want, resp[i]["title"])
		}
	}
}

func TestCardHandler_List_Empty(t *testing.T) {
	stub := &stubCardService{
		listBoardFn: func(ctx context.Context) ([]domain.Card, error) {
			return []domain.Card{}, nil
		},
	}
	h := NewCardHandler(stub)

	c, rec := newAuthedContext(t, http.MethodGet, "/listboard", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}
