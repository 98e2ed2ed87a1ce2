package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/boardhq/board-api/internal/api/metrics"
	"github.com/boardhq/board-api/internal/core/ports"
)

// CardHandler handles HTTP requests for board cards.
type CardHandler struct {
	service ports.CardService
}

func NewCardHandler(service ports.CardService) *CardHandler {
	return &CardHandler{service: service}
}

// Add handles POST /addcard.
//
// @Summary      Add a card to the board
// @Tags         cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string          false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      addCardRequest  true   "Card details"
// @Success      200              {object}  cardResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Router       /addcard [post]
func (h *CardHandler) Add(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req addCardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	card, err := h.service.AddCard(c.Request().Context(), ports.CreateCardInput{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		ProjectName:    req.ProjectName,
		CreatedBy:      email,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	metrics.CardsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, toCardResponse(*card))
}

// List handles GET /listboard.
//
// @Summary      List all cards, newest first
// @Tags         cards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   cardResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /listboard [get]
func (h *CardHandler) List(c echo.Context) error {
	if _, err := ctxEmail(c); err != nil {
		return err
	}

	cards, err := h.service.ListBoard(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, toBoardResponse(cards))
}
