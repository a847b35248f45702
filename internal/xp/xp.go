// Package xp maps cumulative experience points to levels.
package xp

// PerLevel is the XP required to advance one level.
const PerLevel = 50

// LevelFromXP returns the level for a cumulative XP total.
// Level 1 starts at 0 XP; every PerLevel points adds a level.
func LevelFromXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/PerLevel + 1
}

// Progress describes position within the current level.
type Progress struct {
	Current    int // XP earned inside the current level, 0 <= Current < Needed
	Needed     int // XP required to finish the level
	Percentage int // 100 * Current / Needed
}

// ProgressFor computes the within-level progress for a cumulative XP total.
func ProgressFor(xpTotal int) Progress {
	if xpTotal < 0 {
		xpTotal = 0
	}
	level := LevelFromXP(xpTotal)
	current := xpTotal - (level-1)*PerLevel
	return Progress{
		Current:    current,
		Needed:     PerLevel,
		Percentage: 100 * current / PerLevel,
	}
}
