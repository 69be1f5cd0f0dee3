package domain

// Category groups habits for display.
type Category string

const (
	CategoryHealth       Category = "Health"
	CategoryProductivity Category = "Productivity"
	CategoryMind         Category = "Mind"
	CategoryLifestyle    Category = "Lifestyle"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryHealth, CategoryProductivity, CategoryMind, CategoryLifestyle}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// CustomHabitXP is the reward given to habits added by the user.
const CustomHabitXP = 25

// DefaultHabitIcon is used when a custom habit is added without an icon.
const DefaultHabitIcon = "⭐"

// Habit represents a trackable daily action.
type Habit struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Category Category `json:"category"`
	XP       int      `json:"xp"`
	IsCustom bool     `json:"isCustom"`
}

// DefaultHabits returns the seed habit list used on first run.
func DefaultHabits() []Habit {
	return []Habit{
		{ID: "h1", Name: "No Smoking", Icon: "🚭", Category: CategoryHealth, XP: 80},
		{ID: "h2", Name: "Reading", Icon: "📚", Category: CategoryMind, XP: 40},
		{ID: "h3", Name: "Daily Workout", Icon: "💪", Category: CategoryHealth, XP: 120},
		{ID: "h4", Name: "Drink Water (2L+)", Icon: "💧", Category: CategoryHealth, XP: 30},
		{ID: "h5", Name: "Skin Care", Icon: "✨", Category: CategoryLifestyle, XP: 20},
		{ID: "h6", Name: "Eat Clean", Icon: "🥗", Category: CategoryHealth, XP: 50},
	}
}

// FindHabit returns the habit with the given id, if any.
func FindHabit(habits []Habit, id string) (Habit, bool) {
	for _, h := range habits {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}
