package player

import (
	"time"

	"github.com/thesrcielos/SnakeArena/internal/apperrors"
	"github.com/thesrcielos/SnakeArena/internal/leaderboard"
)

// ActivePlayer is keyed by user id, so a user has at most one live game.
type ActivePlayer struct {
	ID           string           `gorm:"primaryKey;size:36" json:"id"`
	Username     string           `gorm:"size:30;not null" json:"username"`
	CurrentScore int              `gorm:"not null" json:"currentScore"`
	Mode         leaderboard.Mode `gorm:"size:16;not null" json:"mode"`
	StartedAt    time.Time        `gorm:"not null" json:"startedAt"`
}

type UpdateRequest struct {
	CurrentScore int              `json:"currentScore"`
	Mode         leaderboard.Mode `json:"mode"`
}

func (r *UpdateRequest) Validate() error {
	if r.CurrentScore < 0 {
		return apperrors.Validation("currentScore must be a non-negative integer")
	}
	if !r.Mode.Valid() {
		return apperrors.Validation("mode must be 'walls' or 'pass-through'")
	}
	return nil
}

const (
	EventPlayerUpdate = "PLAYER_UPDATE"
	EventPlayerLeave  = "PLAYER_LEAVE"
)

type Event struct {
	Type   string       `json:"type"`
	Player ActivePlayer `json:"player"`
}
