package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelOf_Zero(t *testing.T) {
	info := LevelOf(0)
	assert.Equal(t, 1, info.Level)
	assert.Equal(t, 0.0, info.Progress)
	assert.Equal(t, 0, info.CurrentThreshold)
	assert.Equal(t, 100, info.NextThreshold)
}

func TestLevelOf_Interpolates(t *testing.T) {
	info := LevelOf(150)
	assert.Equal(t, 2, info.Level)
	assert.InDelta(t, 25.0, info.Progress, 1e-9)
	assert.Equal(t, 100, info.CurrentThreshold)
	assert.Equal(t, 300, info.NextThreshold)
}

func TestLevelOf_ExactThresholds(t *testing.T) {
	for i, th := range Thresholds {
		info := LevelOf(th)
		assert.GreaterOrEqual(t, info.Level, i+1, "xp=%d", th)
		assert.Equal(t, 0.0, info.Progress, "xp=%d", th)
	}
}

func TestLevelOf_BeyondTable(t *testing.T) {
	info := LevelOf(6000)
	assert.Equal(t, len(Thresholds), info.Level)
	assert.Equal(t, 5500, info.CurrentThreshold)
	assert.Equal(t, 6500, info.NextThreshold)
	assert.InDelta(t, 50.0, info.Progress, 1e-9)

	capped := LevelOf(9000)
	assert.Equal(t, 100.0, capped.Progress)
}

func TestLevelOf_Monotonic(t *testing.T) {
	prev := LevelOf(0).Level
	for xp := 1; xp <= 8000; xp += 7 {
		lvl := LevelOf(xp).Level
		assert.GreaterOrEqual(t, lvl, prev, "xp=%d", xp)
		prev = lvl
	}
}

func TestLevelOf_NegativeClamped(t *testing.T) {
	info := LevelOf(-20)
	assert.Equal(t, 1, info.Level)
	assert.Equal(t, 0.0, info.Progress)
}
