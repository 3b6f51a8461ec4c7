package main

import (
	"context"
	"log"

	"github.com/thesrcielos/SnakeArena/internal/config"
	"github.com/thesrcielos/SnakeArena/internal/leaderboard"
	"github.com/thesrcielos/SnakeArena/internal/player"
	"github.com/thesrcielos/SnakeArena/internal/seed"
	"github.com/thesrcielos/SnakeArena/internal/user"
	"github.com/thesrcielos/SnakeArena/pkg/db"
	"github.com/thesrcielos/SnakeArena/pkg/logger"
)

// The seeder writes straight to the database. Sessions are never issued, so
// it needs neither redis nor JWT_SECRET.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading configuration: %v", err)
	}

	logg, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	defer logg.Sync()

	gdb, err := db.Open(cfg)
	if err != nil {
		logg.Fatalw("database unavailable", "error", err)
	}
	logg.Info("creating tables")
	if err := gdb.AutoMigrate(&user.User{}, &leaderboard.Entry{}, &player.ActivePlayer{}); err != nil {
		logg.Fatalw("error migrating database", "error", err)
	}

	users := user.NewUserService(user.NewUserRepository(gdb), nil, nil, cfg.BcryptCost)
	seeder := seed.NewSeeder(
		users,
		leaderboard.NewService(leaderboard.NewRepository(gdb)),
		player.NewService(player.NewRepository(gdb), nil, logg),
		logg,
		nil,
	)
	if _, err := seeder.Run(context.Background()); err != nil {
		logg.Fatalw("error seeding data", "error", err)
	}
}
