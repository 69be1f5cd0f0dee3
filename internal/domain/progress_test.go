package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"levelup/internal/domain"
)

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{-50, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{899, 3},
		{900, 4},
		{1600, 5},
		{250000, 51},
		{249999, 50},
	}
	for _, tc := range tests {
		assert.Equalf(t, tc.want, domain.LevelForXP(tc.xp), "LevelForXP(%d)", tc.xp)
	}
}

func TestXPForLevel(t *testing.T) {
	for _, level := range []int{1, 2, 3, 4, 5, 10, 37} {
		threshold := domain.XPForLevel(level)
		assert.Equal(t, level, domain.LevelForXP(threshold), "threshold of level %d", level)
		if threshold > 0 {
			assert.Equal(t, level-1, domain.LevelForXP(threshold-1), "just below level %d", level)
		}
	}
	assert.Equal(t, 0, domain.XPForLevel(0))
}

func TestStatsApply(t *testing.T) {
	tests := []struct {
		name          string
		start         domain.Stats
		delta         domain.Delta
		wantXP        int
		wantLevel     int
		wantCompleted int
	}{
		{"completion", domain.Stats{XP: 80, Level: 1, TotalCompleted: 1}, domain.Delta{XP: 40, Completed: 1}, 120, 2, 2},
		{"reversal", domain.Stats{XP: 120, Level: 2, TotalCompleted: 2}, domain.Delta{XP: -40, Completed: -1}, 80, 1, 1},
		{"clamped at zero", domain.Stats{Level: 1}, domain.Delta{XP: -25, Completed: -1}, 0, 1, 0},
		{"partial clamp", domain.Stats{XP: 10, Level: 1, TotalCompleted: 0}, domain.Delta{XP: -120, Completed: -1}, 0, 1, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start := tc.start
			start.Name = "Ana"
			start.Streak = 3
			start.UnlockedAchievements = []string{"bookworm"}

			got := start.Apply(tc.delta)
			assert.Equal(t, tc.wantXP, got.XP)
			assert.Equal(t, tc.wantLevel, got.Level)
			assert.Equal(t, tc.wantCompleted, got.TotalCompleted)
			assert.Equal(t, "Ana", got.Name)
			assert.Equal(t, 3, got.Streak)
			assert.Equal(t, []string{"bookworm"}, got.UnlockedAchievements)
		})
	}
}

func TestProgressForXP(t *testing.T) {
	p := domain.ProgressForXP(250)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 100, p.Floor)
	assert.Equal(t, 400, p.Next)
	assert.Equal(t, 150, p.IntoLevel)
	assert.Equal(t, 300, p.Span)
	assert.InDelta(t, 50.0, p.Percent, 0.001)
	assert.Equal(t, "Wandering Novice", p.Title)

	zero := domain.ProgressForXP(0)
	assert.Equal(t, 1, zero.Level)
	assert.Equal(t, 100, zero.Next)
	assert.Zero(t, zero.Percent)
}

func TestTitleForLevel(t *testing.T) {
	assert.Equal(t, "Wandering Novice", domain.TitleForLevel(4))
	assert.Equal(t, "Trailblazer", domain.TitleForLevel(5))
	assert.Equal(t, "Routine Master", domain.TitleForLevel(19))
	assert.Equal(t, "Legend of Persistence", domain.TitleForLevel(20))
}

func TestStatsNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        domain.Stats
		wantXP    int
		wantLevel int
		wantTotal int
	}{
		{"negative counters", domain.Stats{XP: -50, TotalCompleted: -3}, 0, 1, 0},
		{"missing level", domain.Stats{XP: 450, TotalCompleted: 9}, 450, 3, 9},
		{"stale level", domain.Stats{XP: 100, Level: 7, TotalCompleted: 1}, 100, 2, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			assert.Equal(t, tc.wantXP, got.XP)
			assert.Equal(t, tc.wantLevel, got.Level)
			assert.Equal(t, tc.wantTotal, got.TotalCompleted)
			assert.NotNil(t, got.UnlockedAchievements)
		})
	}
}
