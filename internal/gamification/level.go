package gamification

// Thresholds are the cumulative XP needed for level 1, 2, 3 and so on.
var Thresholds = []int{0, 100, 300, 600, 1000, 1500, 2100, 2800, 3600, 4500, 5500}

// stepBeyondLast is the XP span of every level past the table.
const stepBeyondLast = 1000

// LevelInfo describes where an XP total sits in the level table.
type LevelInfo struct {
	Level            int     `json:"level"`
	Progress         float64 `json:"progress"`
	CurrentThreshold int     `json:"currentThreshold"`
	NextThreshold    int     `json:"nextThreshold"`
}

// LevelOf returns the highest level whose threshold xp has reached and the
// linear progress towards the next one, clamped to [0, 100].
func LevelOf(xp int) LevelInfo {
	level := 1
	for i, th := range Thresholds {
		if xp < th {
			break
		}
		level = i + 1
	}

	current := Thresholds[level-1]
	next := current + stepBeyondLast
	if level < len(Thresholds) {
		next = Thresholds[level]
	}

	progress := float64(xp-current) / float64(next-current) * 100
	switch {
	case progress > 100:
		progress = 100
	case progress < 0:
		progress = 0
	}

	return LevelInfo{
		Level:            level,
		Progress:         progress,
		CurrentThreshold: current,
		NextThreshold:    next,
	}
}
