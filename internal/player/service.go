package player

import (
	"context"
	"time"

	"github.com/thesrcielos/SnakeArena/internal/apperrors"
	"github.com/thesrcielos/SnakeArena/internal/user"
	"go.uber.org/zap"
)

type Service struct {
	repo Repository
	pub  Publisher
	log  *zap.SugaredLogger
	now  func() time.Time
}

func NewService(repo Repository, pub Publisher, log *zap.SugaredLogger) *Service {
	if pub == nil {
		pub = NopPublisher{}
	}
	return &Service{repo: repo, pub: pub, log: log, now: time.Now}
}

// Track creates or updates the caller's active game. Concurrent updates for
// the same user are last-writer-wins.
func (s *Service) Track(ctx context.Context, u *user.User, req UpdateRequest) (*ActivePlayer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.Upsert(ctx, &ActivePlayer{
		ID:           u.ID,
		Username:     u.Username,
		CurrentScore: req.CurrentScore,
		Mode:         req.Mode,
	})
}

func (s *Service) Upsert(ctx context.Context, p *ActivePlayer) (*ActivePlayer, error) {
	if p.StartedAt.IsZero() {
		p.StartedAt = s.now().UTC()
	}
	stored, err := s.repo.Upsert(ctx, p)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, Event{Type: EventPlayerUpdate, Player: *stored})
	return stored, nil
}

func (s *Service) Get(ctx context.Context, id string) (*ActivePlayer, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("Player not found")
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]ActivePlayer, error) {
	return s.repo.List(ctx)
}

// Remove ends the user's active game. Removing a missing player is not an error.
func (s *Service) Remove(ctx context.Context, id string) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if removed {
		s.publish(ctx, Event{Type: EventPlayerLeave, Player: ActivePlayer{ID: id}})
	}
	return nil
}

func (s *Service) publish(ctx context.Context, event Event) {
	if err := s.pub.Publish(ctx, event); err != nil {
		s.log.Warnw("error publishing player event", "type", event.Type, "player", event.Player.ID, "error", err)
	}
}
