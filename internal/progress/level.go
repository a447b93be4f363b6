package progress

import "math"

// XPThreshold returns the cumulative XP required to hold the given level:
// floor(100 * 1.5^(level-1)).
func XPThreshold(level int) int {
	return int(math.Floor(100 * math.Pow(1.5, float64(level-1))))
}

// LevelForXP returns the highest level whose threshold xp has reached,
// never below 1.
func LevelForXP(xp int) int {
	level := 1
	for xp >= XPThreshold(level+1) {
		level++
	}
	return level
}

// LevelProgress reports how far into the current level the record's XP
// sits: earned XP within the level and the XP span of the level. Used by
// the header progress bar.
func LevelProgress(r Record) (earned, span int) {
	current := XPThreshold(r.Level)
	next := XPThreshold(r.Level + 1)
	earned = r.XP - current
	if earned < 0 {
		earned = 0
	}
	return earned, next - current
}
