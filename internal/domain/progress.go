package domain

import "math"

// DefaultProfileName is the display name given to a fresh profile.
const DefaultProfileName = "Traveler"

// Stats is the aggregate progression record of the single user.
type Stats struct {
	XP                   int      `json:"xp"`
	Level                int      `json:"level"`
	Streak               int      `json:"streak"`
	TotalCompleted       int      `json:"totalCompleted"`
	Name                 string   `json:"name"`
	UnlockedAchievements []string `json:"unlockedAchievements"`
}

// DefaultStats returns the first-run stats for a profile called name.
func DefaultStats(name string) Stats {
	if name == "" {
		name = DefaultProfileName
	}
	return Stats{Level: 1, Name: name, UnlockedAchievements: []string{}}
}

// Clone returns a copy of s that shares no slices with it.
func (s Stats) Clone() Stats {
	s.UnlockedAchievements = append([]string{}, s.UnlockedAchievements...)
	return s
}

// Normalize clamps the counters at zero and derives the level from XP.
// Stats coming from storage or a backup pass through it before going live.
func (s Stats) Normalize() Stats {
	out := s.Clone()
	out.XP = max(0, out.XP)
	out.TotalCompleted = max(0, out.TotalCompleted)
	out.Streak = max(0, out.Streak)
	out.Level = LevelForXP(out.XP)
	return out
}

// HasUnlocked reports whether the achievement id was already granted.
func (s Stats) HasUnlocked(id string) bool {
	for _, v := range s.UnlockedAchievements {
		if v == id {
			return true
		}
	}
	return false
}

// Apply adds a toggle delta to the stats. XP and the completed counter are
// clamped at zero and the level is recomputed from XP.
func (s Stats) Apply(d Delta) Stats {
	out := s.Clone()
	out.XP = max(0, s.XP+d.XP)
	out.TotalCompleted = max(0, s.TotalCompleted+d.Completed)
	out.Level = LevelForXP(out.XP)
	return out
}

// LevelForXP returns floor(sqrt(xp/100)) + 1.
func LevelForXP(xp int) int {
	if xp <= 0 {
		return 1
	}
	units := xp / 100
	n := int(math.Sqrt(float64(units)))
	// correct float rounding near perfect squares
	for n*n > units {
		n--
	}
	for (n+1)*(n+1) <= units {
		n++
	}
	return n + 1
}

// XPForLevel returns the cumulative XP needed to reach level.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * (level - 1) * 100
}

// LevelProgress describes how far the user is through the current level.
type LevelProgress struct {
	Level     int     `json:"level"`
	XP        int     `json:"xp"`
	Floor     int     `json:"floor"`
	Next      int     `json:"next"`
	IntoLevel int     `json:"intoLevel"`
	Span      int     `json:"span"`
	Percent   float64 `json:"percent"`
	Title     string  `json:"title"`
}

// ProgressForXP computes the level progress for a total XP value.
func ProgressForXP(xp int) LevelProgress {
	xp = max(0, xp)
	level := LevelForXP(xp)
	floor := XPForLevel(level)
	next := XPForLevel(level + 1)
	span := next - floor
	into := xp - floor
	return LevelProgress{
		Level:     level,
		XP:        xp,
		Floor:     floor,
		Next:      next,
		IntoLevel: into,
		Span:      span,
		Percent:   math.Min(100, float64(into)/float64(span)*100),
		Title:     TitleForLevel(level),
	}
}

// TitleForLevel returns the profile title earned at level.
func TitleForLevel(level int) string {
	switch {
	case level < 5:
		return "Wandering Novice"
	case level < 10:
		return "Trailblazer"
	case level < 20:
		return "Routine Master"
	default:
		return "Legend of Persistence"
	}
}
