package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/boardhq/board-api/internal/api/middleware"
)

// ctxEmail extracts the verified email injected by the Auth middleware.
// Presence proves the middleware ran; a protected handler reached without it
// is a wiring error and rejects with 401 rather than proceeding anonymously.
func ctxEmail(c echo.Context) (string, error) {
	email, _ := c.Get(middleware.ContextEmailKey).(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, nil
}
