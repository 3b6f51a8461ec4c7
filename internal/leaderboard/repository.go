package leaderboard

import (
	"context"

	"github.com/thesrcielos/SnakeArena/internal/apperrors"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, entry *Entry) error
	CountHigher(ctx context.Context, mode Mode, score int) (int64, error)
	Top(ctx context.Context, mode Mode, limit int) ([]Entry, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Insert(ctx context.Context, entry *Entry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return apperrors.Storage("Error saving score", err)
	}
	return nil
}

func (r *GormRepository) CountHigher(ctx context.Context, mode Mode, score int) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Entry{}).
		Where("mode = ? AND score > ?", mode, score).
		Count(&n).Error
	if err != nil {
		return 0, apperrors.Storage("Error computing rank", err)
	}
	return n, nil
}

// Top orders by score, then earliest submission, then id so ties list the
// same way on every call.
func (r *GormRepository) Top(ctx context.Context, mode Mode, limit int) ([]Entry, error) {
	query := r.db.WithContext(ctx).
		Order("score DESC").
		Order("played_at ASC").
		Order("id ASC").
		Limit(limit)
	if mode != "" {
		query = query.Where("mode = ?", mode)
	}

	entries := []Entry{}
	if err := query.Find(&entries).Error; err != nil {
		return nil, apperrors.Storage("Error getting leaderboard", err)
	}
	return entries, nil
}
