package seed

import (
	"context"
	"math/rand/v2"

	"github.com/thesrcielos/SnakeArena/internal/leaderboard"
	"github.com/thesrcielos/SnakeArena/internal/player"
	"github.com/thesrcielos/SnakeArena/internal/user"
	"go.uber.org/zap"
)

const DemoPassword = "password"

var DemoUsers = []user.SignupRequest{
	{Username: "SnakeMaster", Email: "snake@example.com", Password: DemoPassword},
	{Username: "PixelPython", Email: "pixel@example.com", Password: DemoPassword},
	{Username: "NeonNibbler", Email: "neon@example.com", Password: DemoPassword},
	{Username: "RetroReptile", Email: "retro@example.com", Password: DemoPassword},
	{Username: "ArcadeAce", Email: "arcade@example.com", Password: DemoPassword},
}

var ActiveUsernames = []string{"NeonNibbler", "RetroReptile"}

type Seeder struct {
	users   *user.UserService
	scores  *leaderboard.Service
	players *player.Service
	log     *zap.SugaredLogger
	rng     *rand.Rand
}

func NewSeeder(users *user.UserService, scores *leaderboard.Service, players *player.Service, log *zap.SugaredLogger, rng *rand.Rand) *Seeder {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Seeder{users: users, scores: scores, players: players, log: log, rng: rng}
}

// Run fills an empty database with demo users, one score per mode for each
// of them and a couple of active players. It reports false and writes
// nothing when any user already exists.
func (s *Seeder) Run(ctx context.Context) (bool, error) {
	exists, err := s.users.HasUsers(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		s.log.Info("data already exists, skipping seed")
		return false, nil
	}

	s.log.Info("seeding users")
	byName := make(map[string]*user.User, len(DemoUsers))
	for _, req := range DemoUsers {
		u, err := s.users.Register(ctx, req)
		if err != nil {
			return false, err
		}
		byName[u.Username] = u
	}

	s.log.Info("seeding leaderboard")
	for _, req := range DemoUsers {
		u := byName[req.Username]
		for _, mode := range leaderboard.Modes {
			if err := s.scores.Insert(ctx, &leaderboard.Entry{
				UserID:   u.ID,
				Username: u.Username,
				Score:    s.between(500, 3000),
				Mode:     mode,
			}); err != nil {
				return false, err
			}
		}
	}

	s.log.Info("seeding active players")
	for _, name := range ActiveUsernames {
		u, ok := byName[name]
		if !ok {
			continue
		}
		if _, err := s.players.Upsert(ctx, &player.ActivePlayer{
			ID:           u.ID,
			Username:     u.Username,
			CurrentScore: s.between(100, 1000),
			Mode:         leaderboard.Modes[s.rng.IntN(len(leaderboard.Modes))],
		}); err != nil {
			return false, err
		}
	}

	s.log.Info("seeding complete")
	return true, nil
}

// between returns a value in [lo, hi].
func (s *Seeder) between(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}
