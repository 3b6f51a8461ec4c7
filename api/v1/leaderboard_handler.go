package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	api_middleware "github.com/thesrcielos/SnakeArena/api/middleware"
	"github.com/thesrcielos/SnakeArena/internal/apperrors"
	"github.com/thesrcielos/SnakeArena/internal/leaderboard"
)

type LeaderboardHandler struct {
	scores *leaderboard.Service
}

func NewLeaderboardHandler(scores *leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{scores: scores}
}

// ScoreRequest uses a pointer so a missing score is told apart from zero.
type ScoreRequest struct {
	Score *int             `json:"score"`
	Mode  leaderboard.Mode `json:"mode"`
}

type ScoreResponse struct {
	Success bool `json:"success"`
	Rank    int  `json:"rank"`
}

func (h *LeaderboardHandler) RegisterRoutes(g *echo.Group, requireSession echo.MiddlewareFunc) {
	g.GET("", h.GetLeaderboard)
	g.POST("", h.SubmitScore, requireSession)
}

func (h *LeaderboardHandler) GetLeaderboard(c echo.Context) error {
	q := leaderboard.Query{
		Mode:  leaderboard.Mode(c.QueryParam("mode")),
		Limit: leaderboard.DefaultLimit,
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > leaderboard.MaxLimit {
			return apperrors.Validation("limit must be between 1 and 100")
		}
		q.Limit = limit
	}

	entries, err := h.scores.Top(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *LeaderboardHandler) SubmitScore(c echo.Context) error {
	u, ok := api_middleware.CurrentUser(c)
	if !ok {
		return apperrors.Unauthorized("Not authenticated")
	}

	var req ScoreRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation(INVALID_REQUEST)
	}
	if req.Score == nil {
		return apperrors.Validation("score is required")
	}

	rank, err := h.scores.SubmitScore(c.Request().Context(), leaderboard.Submission{
		UserID:   u.ID,
		Username: u.Username,
		Score:    *req.Score,
		Mode:     req.Mode,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ScoreResponse{Success: true, Rank: rank})
}
