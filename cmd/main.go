package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thesrcielos/SnakeArena/api"
	"github.com/thesrcielos/SnakeArena/internal/config"
	"github.com/thesrcielos/SnakeArena/internal/leaderboard"
	"github.com/thesrcielos/SnakeArena/internal/player"
	"github.com/thesrcielos/SnakeArena/internal/user"
	"github.com/thesrcielos/SnakeArena/pkg/db"
	"github.com/thesrcielos/SnakeArena/pkg/logger"
	"github.com/thesrcielos/SnakeArena/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading configuration: %v", err)
	}
	if err := cfg.ValidateServer(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logg, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	defer logg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.Open(cfg)
	if err != nil {
		logg.Fatalw("database unavailable", "error", err)
	}
	if err := gdb.AutoMigrate(&user.User{}, &leaderboard.Entry{}, &player.ActivePlayer{}); err != nil {
		logg.Fatalw("error migrating database", "error", err)
	}

	rdb, err := db.OpenRedis(ctx, cfg)
	if err != nil {
		logg.Fatalw("redis unavailable", "error", err)
	}
	defer rdb.Close()

	tokens := user.NewTokenManager([]byte(cfg.JWTSecret), cfg.SessionTTL)
	users := user.NewUserService(user.NewUserRepository(gdb), tokens, user.NewRedisRevocationList(rdb), cfg.BcryptCost)
	scores := leaderboard.NewService(leaderboard.NewRepository(gdb))

	publisher := player.NewRedisPublisher(rdb, logg)
	players := player.NewService(player.NewRepository(gdb), publisher, logg)
	spectators := websocket.NewSpectatorHandler(players, logg)
	if err := publisher.Subscribe(ctx, spectators.Forward); err != nil {
		logg.Fatalw("error subscribing to player events", "error", err)
	}

	e := api.NewRouter(api.RouterConfig{
		Users:        users,
		Tokens:       tokens,
		Scores:       scores,
		Players:      players,
		Spectators:   spectators,
		Log:          logg,
		CORSOrigins:  cfg.CORSOrigins,
		SecureCookie: cfg.CookieSecure,
		StaticDir:    cfg.StaticDir,
	})

	go func() {
		logg.Infow("server listening", "port", cfg.Port, "env", cfg.AppEnv)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatalw("server stopped", "error", err)
		}
	}()

	<-ctx.Done()
	logg.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Errorw("error during shutdown", "error", err)
	}
}
