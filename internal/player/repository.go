package player

import (
	"context"
	"errors"

	"github.com/thesrcielos/SnakeArena/internal/apperrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Upsert(ctx context.Context, p *ActivePlayer) (*ActivePlayer, error)
	Get(ctx context.Context, id string) (*ActivePlayer, error)
	List(ctx context.Context) ([]ActivePlayer, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Upsert inserts the row or, when the id exists, overwrites only the current
// score and mode. Username and start time stay as first recorded.
func (r *GormRepository) Upsert(ctx context.Context, p *ActivePlayer) (*ActivePlayer, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"current_score", "mode"}),
	}).Create(p).Error
	if err != nil {
		return nil, apperrors.Storage("Error saving active player", err)
	}

	stored, err := r.Get(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, apperrors.Storage("Error saving active player", errors.New("row missing after upsert"))
	}
	return stored, nil
}

// Get returns (nil, nil) when no player has that id.
func (r *GormRepository) Get(ctx context.Context, id string) (*ActivePlayer, error) {
	var p ActivePlayer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Storage("Error getting active player", err)
	}
	return &p, nil
}

func (r *GormRepository) List(ctx context.Context) ([]ActivePlayer, error) {
	players := []ActivePlayer{}
	if err := r.db.WithContext(ctx).Order("started_at ASC").Find(&players).Error; err != nil {
		return nil, apperrors.Storage("Error getting active players", err)
	}
	return players, nil
}

func (r *GormRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ActivePlayer{})
	if result.Error != nil {
		return false, apperrors.Storage("Error removing active player", result.Error)
	}
	return result.RowsAffected > 0, nil
}
