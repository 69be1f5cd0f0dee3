package domain

// CurrentStreak counts consecutive days with at least one completion, walking
// back from today. A today without completions does not break the run yet, so
// the count then starts at yesterday. Any earlier empty day ends the streak.
func CurrentStreak(l Ledger, today string) int {
	day := today
	if l.DoneOn(today) == 0 {
		prev, err := ShiftDay(today, -1)
		if err != nil {
			return 0
		}
		day = prev
	}

	streak := 0
	for l.DoneOn(day) > 0 {
		streak++
		prev, err := ShiftDay(day, -1)
		if err != nil {
			break
		}
		day = prev
	}
	return streak
}
