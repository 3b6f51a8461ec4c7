package leaderboard

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// SubmitScore appends one entry and returns its rank within the mode:
// 1 + the number of entries with a strictly greater score, counted after the
// insert is durable. Equal scores share a rank. No rank is returned when the
// insert fails. Concurrent submissions are not serialized, so two racing top
// scores may both observe rank 1.
func (s *Service) SubmitScore(ctx context.Context, sub Submission) (int, error) {
	if err := sub.Validate(); err != nil {
		return 0, err
	}

	entry := &Entry{
		ID:       uuid.NewString(),
		UserID:   sub.UserID,
		Username: sub.Username,
		Score:    sub.Score,
		Mode:     sub.Mode,
		PlayedAt: s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return 0, err
	}

	higher, err := s.repo.CountHigher(ctx, entry.Mode, entry.Score)
	if err != nil {
		return 0, err
	}
	return int(higher) + 1, nil
}

func (s *Service) Top(ctx context.Context, q Query) ([]Entry, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Top(ctx, q.Mode, q.Limit)
}

// Insert records an entry as is. Used for seeding historical data.
func (s *Service) Insert(ctx context.Context, entry *Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.PlayedAt.IsZero() {
		entry.PlayedAt = s.now().UTC()
	}
	return s.repo.Insert(ctx, entry)
}
