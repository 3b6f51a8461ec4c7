package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	api_middleware "github.com/thesrcielos/SnakeArena/api/middleware"
	v1 "github.com/thesrcielos/SnakeArena/api/v1"
	"github.com/thesrcielos/SnakeArena/internal/leaderboard"
	"github.com/thesrcielos/SnakeArena/internal/player"
	"github.com/thesrcielos/SnakeArena/internal/user"
	"github.com/thesrcielos/SnakeArena/websocket"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Users        *user.UserService
	Tokens       *user.TokenManager
	Scores       *leaderboard.Service
	Players      *player.Service
	Spectators   *websocket.SpectatorHandler
	Log          *zap.SugaredLogger
	CORSOrigins  []string
	SecureCookie bool
	StaticDir    string
}

func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = v1.HTTPErrorHandler(cfg.Log)

	e.Use(middleware.Recover())
	e.Use(api_middleware.RequestLogger(cfg.Log))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	requireSession := api_middleware.RequireSession(cfg.Tokens.Secret(), cfg.Users)

	v1.NewAuthHandler(cfg.Users, cfg.SecureCookie).RegisterRoutes(e.Group("/auth"), requireSession)
	v1.NewLeaderboardHandler(cfg.Scores).RegisterRoutes(e.Group("/leaderboard"), requireSession)
	v1.NewPlayerHandler(cfg.Players).RegisterRoutes(e.Group("/players"), requireSession)
	if cfg.Spectators != nil {
		e.GET("/players/live", cfg.Spectators.Spectate)
	}

	v1.RegisterStaticRoutes(e, cfg.StaticDir)
	return e
}
