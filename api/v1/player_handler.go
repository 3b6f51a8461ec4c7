package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	api_middleware "github.com/thesrcielos/SnakeArena/api/middleware"
	"github.com/thesrcielos/SnakeArena/internal/apperrors"
	"github.com/thesrcielos/SnakeArena/internal/player"
)

type PlayerHandler struct {
	players *player.Service
}

func NewPlayerHandler(players *player.Service) *PlayerHandler {
	return &PlayerHandler{players: players}
}

func (h *PlayerHandler) RegisterRoutes(g *echo.Group, requireSession echo.MiddlewareFunc) {
	g.GET("", h.GetPlayers)
	g.GET("/:id", h.GetPlayer)
	g.PUT("", h.UpdatePlayer, requireSession)
	g.DELETE("", h.LeavePlayer, requireSession)
}

func (h *PlayerHandler) GetPlayers(c echo.Context) error {
	players, err := h.players.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, players)
}

func (h *PlayerHandler) GetPlayer(c echo.Context) error {
	p, err := h.players.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlayerHandler) UpdatePlayer(c echo.Context) error {
	u, ok := api_middleware.CurrentUser(c)
	if !ok {
		return apperrors.Unauthorized("Not authenticated")
	}

	var req player.UpdateRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation(INVALID_REQUEST)
	}
	p, err := h.players.Track(c.Request().Context(), u, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlayerHandler) LeavePlayer(c echo.Context) error {
	u, ok := api_middleware.CurrentUser(c)
	if !ok {
		return apperrors.Unauthorized("Not authenticated")
	}
	if err := h.players.Remove(c.Request().Context(), u.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
