package leaderboard

import (
	"time"

	"github.com/thesrcielos/SnakeArena/internal/apperrors"
)

type Mode string

const (
	ModeWalls       Mode = "walls"
	ModePassThrough Mode = "pass-through"
)

var Modes = []Mode{ModeWalls, ModePassThrough}

func (m Mode) Valid() bool {
	return m == ModeWalls || m == ModePassThrough
}

func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", apperrors.Validation("mode must be 'walls' or 'pass-through'")
	}
	return m, nil
}

// Entry is one submitted score. Username is copied at submission time and
// never follows later renames. Rows are append-only.
type Entry struct {
	ID       string    `gorm:"primaryKey;size:36" json:"id"`
	UserID   string    `gorm:"size:36;index;not null" json:"userId"`
	Username string    `gorm:"size:30;not null" json:"username"`
	Score    int       `gorm:"not null;index:idx_leaderboard_mode_score,priority:2" json:"score"`
	Mode     Mode      `gorm:"size:16;not null;index:idx_leaderboard_mode_score,priority:1" json:"mode"`
	PlayedAt time.Time `gorm:"not null" json:"playedAt"`
}

func (Entry) TableName() string {
	return "leaderboard_entries"
}

type Submission struct {
	UserID   string
	Username string
	Score    int
	Mode     Mode
}

func (s *Submission) Validate() error {
	if s.UserID == "" {
		return apperrors.Unauthorized("Not authenticated")
	}
	if s.Score < 0 {
		return apperrors.Validation("score must be a non-negative integer")
	}
	if !s.Mode.Valid() {
		return apperrors.Validation("mode must be 'walls' or 'pass-through'")
	}
	return nil
}

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Query selects the top entries. An empty Mode spans every mode.
type Query struct {
	Mode  Mode
	Limit int
}

func (q *Query) Validate() error {
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit < 1 || q.Limit > MaxLimit {
		return apperrors.Validation("limit must be between 1 and 100")
	}
	if q.Mode != "" && !q.Mode.Valid() {
		return apperrors.Validation("mode must be 'walls' or 'pass-through'")
	}
	return nil
}
