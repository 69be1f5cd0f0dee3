package domain

// Exercise is one entry of a workout day.
type Exercise struct {
	Name  string `json:"name"`
	Sets  string `json:"sets"`
	Notes string `json:"notes"`
}

// WorkoutDay is a numbered day of the training plan.
type WorkoutDay struct {
	Day       int        `json:"day"`
	Title     string     `json:"title"`
	Exercises []Exercise `json:"exercises"`
}

const toFailure = "To failure"

// WorkoutPlan returns the static four-day bodyweight plan.
func WorkoutPlan() []WorkoutDay {
	return []WorkoutDay{
		{
			Day:   1,
			Title: "Chest and Triceps",
			Exercises: []Exercise{
				{Name: "Standard Push-up", Sets: toFailure, Notes: "Keep your body straight"},
				{Name: "Decline Push-up (feet raised)", Sets: toFailure, Notes: "Targets the upper chest"},
				{Name: "Wide Push-up", Sets: toFailure, Notes: "Targets the outer chest"},
				{Name: "Skull Crusher (backpack/weight)", Sets: toFailure, Notes: "Keep elbows tucked"},
				{Name: "Bench Dip", Sets: toFailure, Notes: "Use a stable chair"},
				{Name: "Diamond Push-up", Sets: toFailure, Notes: "Hands together forming a diamond"},
			},
		},
		{
			Day:   2,
			Title: "Legs",
			Exercises: []Exercise{
				{Name: "Bulgarian Split Squat", Sets: toFailure, Notes: "Rear foot on a bench"},
				{Name: "Lunge", Sets: toFailure, Notes: "Long, controlled steps"},
				{Name: "Sumo Squat", Sets: toFailure, Notes: "Feet wide, toes out"},
				{Name: "Single-leg Stiff Deadlift (weight/backpack)", Sets: toFailure, Notes: "Focus on the hamstrings"},
				{Name: "Single-leg Calf Raise", Sets: toFailure, Notes: "Use a step for range of motion"},
			},
		},
		{
			Day:   3,
			Title: "Back and Biceps",
			Exercises: []Exercise{
				{Name: "Bent-over Row (weight/bar)", Sets: toFailure, Notes: "Straight spine, lean the torso"},
				{Name: "One-arm Row", Sets: toFailure, Notes: "Support one hand on the bench"},
				{Name: "Superman (floor)", Sets: toFailure, Notes: "Lift chest and legs off the floor"},
				{Name: "Biceps Curl (backpack/weight)", Sets: toFailure, Notes: "Keep elbows fixed"},
				{Name: "Hammer Curl", Sets: toFailure, Notes: "Neutral grip, palms facing in"},
				{Name: "Concentration Curl", Sets: toFailure, Notes: "Seated, elbow on the inner thigh"},
			},
		},
		{
			Day:   4,
			Title: "Shoulders and Abs",
			Exercises: []Exercise{
				{Name: "Pike Push-up", Sets: toFailure, Notes: "Hips high, head drops between the hands"},
				{Name: "Lateral Raise (bottles)", Sets: toFailure, Notes: "Arms slightly bent"},
				{Name: "Front Raise", Sets: "Up to eye level"},
				{Name: "Crunch", Sets: toFailure, Notes: "Focus on the upper contraction"},
				{Name: "Leg Raise", Sets: toFailure, Notes: "Lift the legs"},
				{Name: "Plank", Sets: toFailure, Notes: "Hold as long as possible"},
			},
		},
	}
}

// FindWorkoutDay returns the plan day numbered day.
func FindWorkoutDay(plan []WorkoutDay, day int) (WorkoutDay, bool) {
	for _, d := range plan {
		if d.Day == day {
			return d, true
		}
	}
	return WorkoutDay{}, false
}
