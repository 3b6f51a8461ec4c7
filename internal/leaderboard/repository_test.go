package leaderboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thesrcielos/SnakeArena/pkg/db"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) (*Service, *gorm.DB) {
	gdb, err := db.OpenInMemory()
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&Entry{}))
	return NewService(NewRepository(gdb)), gdb
}

func countEntries(t *testing.T, gdb *gorm.DB, mode Mode) int64 {
	var n int64
	require.NoError(t, gdb.Model(&Entry{}).Where("mode = ?", mode).Count(&n).Error)
	return n
}

func submit(t *testing.T, s *Service, user string, score int, mode Mode) int {
	rank, err := s.SubmitScore(ctx, Submission{UserID: user, Username: user, Score: score, Mode: mode})
	require.NoError(t, err)
	return rank
}

func TestRank_ExampleScenario(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Equal(t, 1, submit(t, s, "A", 1500, ModeWalls))
	assert.Equal(t, 1, submit(t, s, "B", 2000, ModeWalls))

	top, err := s.Top(ctx, Query{Mode: ModeWalls})
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Username)
	assert.Equal(t, 2000, top[0].Score)
	assert.Equal(t, "A", top[1].Username)
	assert.Equal(t, 1500, top[1].Score)
}

func TestRank_CountsStrictlyGreaterInSameMode(t *testing.T) {
	s, gdb := newTestStore(t)
	for _, score := range []int{3000, 2500, 2500, 100} {
		submit(t, s, "seed", score, ModeWalls)
	}
	submit(t, s, "other-mode", 9999, ModePassThrough)

	before := countEntries(t, gdb, ModeWalls)
	rank := submit(t, s, "me", 2000, ModeWalls)

	assert.Equal(t, 4, rank)
	assert.Equal(t, before+1, countEntries(t, gdb, ModeWalls))
	assert.Equal(t, int64(1), countEntries(t, gdb, ModePassThrough))
}

func TestRank_TiesShareRank(t *testing.T) {
	s, _ := newTestStore(t)
	submit(t, s, "leader", 5000, ModeWalls)

	first := submit(t, s, "A", 1200, ModeWalls)
	second := submit(t, s, "B", 1200, ModeWalls)

	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second)
}

func TestRank_ZeroScore(t *testing.T) {
	s, _ := newTestStore(t)
	submit(t, s, "A", 10, ModePassThrough)

	assert.Equal(t, 2, submit(t, s, "B", 0, ModePassThrough))
}

func TestTop_LimitOrderAndFilter(t *testing.T) {
	s, _ := newTestStore(t)
	scores := []int{10, 50, 30, 70, 20}
	for _, score := range scores {
		submit(t, s, "w", score, ModeWalls)
		submit(t, s, "p", score+1, ModePassThrough)
	}

	top, err := s.Top(ctx, Query{Mode: ModeWalls, Limit: 3})
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, []int{70, 50, 30}, []int{top[0].Score, top[1].Score, top[2].Score})
	for _, e := range top {
		assert.Equal(t, ModeWalls, e.Mode)
	}

	all, err := s.Top(ctx, Query{Limit: 100})
	require.NoError(t, err)
	require.Len(t, all, 10)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].Score, all[i].Score)
	}
}

func TestTop_TieBreakEarliestFirst(t *testing.T) {
	s, _ := newTestStore(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.Insert(ctx, &Entry{UserID: "late", Username: "late", Score: 100, Mode: ModeWalls, PlayedAt: base.Add(time.Hour)}))
	require.NoError(t, s.Insert(ctx, &Entry{UserID: "early", Username: "early", Score: 100, Mode: ModeWalls, PlayedAt: base}))

	top, err := s.Top(ctx, Query{Mode: ModeWalls})
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "early", top[0].Username)
	assert.Equal(t, "late", top[1].Username)
}

func TestTop_Empty(t *testing.T) {
	s, _ := newTestStore(t)

	top, err := s.Top(ctx, Query{Mode: ModePassThrough})
	require.NoError(t, err)
	assert.NotNil(t, top)
	assert.Empty(t, top)
}
