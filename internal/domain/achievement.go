package domain

import "fmt"

// RuleKind tags the variant of an achievement rule.
type RuleKind string

const (
	// RuleTrailingWindow requires the habit on each of the last WindowDays days.
	RuleTrailingWindow RuleKind = "trailing_window"
	// RuleCumulativeCount requires the habit on at least Threshold distinct days.
	RuleCumulativeCount RuleKind = "cumulative_count"
)

// Rule is the activation condition of an achievement.
type Rule struct {
	Kind       RuleKind `json:"kind"`
	HabitID    string   `json:"habitId"`
	WindowDays int      `json:"windowDays,omitempty"`
	Threshold  int      `json:"threshold,omitempty"`
}

// TrailingWindowRule builds a RuleTrailingWindow rule.
func TrailingWindowRule(habitID string, windowDays int) Rule {
	return Rule{Kind: RuleTrailingWindow, HabitID: habitID, WindowDays: windowDays}
}

// CumulativeCountRule builds a RuleCumulativeCount rule.
func CumulativeCountRule(habitID string, threshold int) Rule {
	return Rule{Kind: RuleCumulativeCount, HabitID: habitID, Threshold: threshold}
}

// Satisfied evaluates the rule against the ledger, using today as the end of
// any trailing window. Only the ledger is consulted, so completions of a
// habit that has since left the habit list still count.
func (r Rule) Satisfied(l Ledger, _ []Habit, today string) bool {
	switch r.Kind {
	case RuleTrailingWindow:
		if r.WindowDays <= 0 {
			return false
		}
		days, err := LastDays(today, r.WindowDays)
		if err != nil {
			return false
		}
		for _, day := range days {
			if !l.Has(day, r.HabitID) {
				return false
			}
		}
		return true
	case RuleCumulativeCount:
		return r.Threshold > 0 && l.CountDays(r.HabitID) >= r.Threshold
	default:
		return false
	}
}

// Achievement is a one-time milestone from the static catalog.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	XPReward    int    `json:"xpReward"`
	Rule        Rule   `json:"rule"`
}

// DefaultAchievements returns the achievement catalog in evaluation order.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{
			ID:          "first_week_smoke_free",
			Title:       "Iron Lungs",
			Description: "Seven days in a row without smoking.",
			Icon:        "🫁",
			XPReward:    500,
			Rule:        TrailingWindowRule("h1", 7),
		},
		{
			ID:          "hydration_master",
			Title:       "Hydration Master",
			Description: "Drank 2L+ of water five days in a row.",
			Icon:        "🔱",
			XPReward:    200,
			Rule:        TrailingWindowRule("h4", 5),
		},
		{
			ID:          "bookworm",
			Title:       "Avid Reader",
			Description: "Completed 10 reading sessions.",
			Icon:        "🧠",
			XPReward:    300,
			Rule:        CumulativeCountRule("h2", 10),
		},
		{
			ID:          "workout_warrior",
			Title:       "Legendary Warrior",
			Description: "Completed 20 workouts.",
			Icon:        "🛡️",
			XPReward:    1000,
			Rule:        CumulativeCountRule("h3", 20),
		},
	}
}

// Unlock is emitted once per achievement granted.
type Unlock struct {
	AchievementID string `json:"achievementId"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	XPReward      int    `json:"xpReward"`
}

func (u Unlock) String() string {
	return fmt.Sprintf("%s %s (+%d XP)", u.Icon, u.Title, u.XPReward)
}

// EvaluateAchievements walks the catalog in order and grants every achievement
// that is not yet unlocked and whose rule holds. Rewards are added to XP and
// the level is recomputed. Running it again on the same inputs grants nothing.
func EvaluateAchievements(catalog []Achievement, l Ledger, habits []Habit, stats Stats, today string) (Stats, []Unlock) {
	out := stats.Clone()
	var unlocks []Unlock
	for _, a := range catalog {
		if out.HasUnlocked(a.ID) || !a.Rule.Satisfied(l, habits, today) {
			continue
		}
		out.UnlockedAchievements = append(out.UnlockedAchievements, a.ID)
		out.XP = max(0, out.XP+a.XPReward)
		unlocks = append(unlocks, Unlock{
			AchievementID: a.ID,
			Title:         a.Title,
			Description:   a.Description,
			Icon:          a.Icon,
			XPReward:      a.XPReward,
		})
	}
	out.Level = LevelForXP(out.XP)
	return out, unlocks
}
