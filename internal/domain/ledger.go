package domain

// Ledger maps a date key to the habit ids completed on that day.
// A day without completions has no entry.
type Ledger map[string][]string

// Delta is the signed change a toggle hands to the progression engine.
type Delta struct {
	XP        int `json:"xp"`
	Completed int `json:"completed"`
}

// IsCompletion reports whether the delta came from marking a habit done.
func (d Delta) IsCompletion() bool { return d.Completed > 0 }

// Has reports whether habitID was completed on day.
func (l Ledger) Has(day, habitID string) bool {
	for _, id := range l[day] {
		if id == habitID {
			return true
		}
	}
	return false
}

// DoneOn returns the number of distinct habits completed on day.
func (l Ledger) DoneOn(day string) int {
	seen := make(map[string]struct{}, len(l[day]))
	for _, id := range l[day] {
		seen[id] = struct{}{}
	}
	return len(seen)
}

// CountDays returns how many date keys include habitID.
func (l Ledger) CountDays(habitID string) int {
	n := 0
	for day := range l {
		if l.Has(day, habitID) {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the ledger.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for day, ids := range l {
		out[day] = append([]string(nil), ids...)
	}
	return out
}

// Toggle flips the completion of habitID on day. It returns the new ledger,
// the delta to apply to stats and whether anything changed. An unknown habit
// leaves the ledger untouched. The receiver is never modified.
func (l Ledger) Toggle(habits []Habit, habitID, day string) (Ledger, Delta, bool) {
	habit, ok := FindHabit(habits, habitID)
	if !ok {
		return l, Delta{}, false
	}

	out := make(Ledger, len(l)+1)
	for d, ids := range l {
		out[d] = ids
	}

	if l.Has(day, habitID) {
		kept := make([]string, 0, len(l[day]))
		for _, id := range l[day] {
			if id != habitID {
				kept = append(kept, id)
			}
		}
		if len(kept) == 0 {
			delete(out, day)
		} else {
			out[day] = kept
		}
		return out, Delta{XP: -habit.XP, Completed: -1}, true
	}

	ids := make([]string, 0, len(l[day])+1)
	ids = append(ids, l[day]...)
	out[day] = append(ids, habitID)
	return out, Delta{XP: habit.XP, Completed: 1}, true
}
