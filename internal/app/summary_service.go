package app

import (
	"context"
	"math"

	"levelup/internal/domain"
)

// StateReader is the read side of ProgressService.
type StateReader interface {
	Today() string
	Snapshot(ctx context.Context) (domain.State, error)
}

// SummaryService derives dashboard, history and achievement views.
type SummaryService struct {
	state   StateReader
	catalog []domain.Achievement
}

// NewSummaryService creates a SummaryService over the given state.
func NewSummaryService(state StateReader, catalog []domain.Achievement) *SummaryService {
	if catalog == nil {
		catalog = domain.DefaultAchievements()
	}
	return &SummaryService{state: state, catalog: catalog}
}

// DayPoint is the completion count of one day.
type DayPoint struct {
	Day     string `json:"day"`
	Weekday string `json:"weekday"`
	Done    int    `json:"done"`
}

// Dashboard is the overview of today.
type Dashboard struct {
	Today     string               `json:"today"`
	Name      string               `json:"name"`
	Done      int                  `json:"done"`
	Total     int                  `json:"total"`
	Remaining int                  `json:"remaining"`
	Percent   float64              `json:"percent"`
	Streak    int                  `json:"streak"`
	Completed int                  `json:"totalCompleted"`
	Progress  domain.LevelProgress `json:"progress"`
	Week      []DayPoint           `json:"week"`
}

// HistoryDay is one day of the completion history.
type HistoryDay struct {
	Day     string   `json:"day"`
	Done    []string `json:"done"`
	Percent float64  `json:"percent"`
}

// AchievementStatus pairs a catalog entry with its unlocked flag.
type AchievementStatus struct {
	domain.Achievement
	Unlocked bool `json:"unlocked"`
}

const maxHistoryDays = 366

func percentOf(done, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Min(100, float64(done)/float64(total)*100)
}

// Dashboard returns the overview of today with a seven day series ending today.
func (s *SummaryService) Dashboard(ctx context.Context) (Dashboard, error) {
	st, err := s.state.Snapshot(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	today := s.state.Today()
	done := st.Completions.DoneOn(today)
	total := len(st.Habits)

	days, err := domain.LastDays(today, 7)
	if err != nil {
		return Dashboard{}, err
	}
	week := make([]DayPoint, 0, len(days))
	for i := len(days) - 1; i >= 0; i-- {
		t, err := domain.ParseDay(days[i])
		if err != nil {
			return Dashboard{}, err
		}
		week = append(week, DayPoint{
			Day:     days[i],
			Weekday: t.Weekday().String()[:3],
			Done:    st.Completions.DoneOn(days[i]),
		})
	}

	return Dashboard{
		Today:     today,
		Name:      st.Stats.Name,
		Done:      done,
		Total:     total,
		Remaining: max(0, total-done),
		Percent:   percentOf(done, total),
		Streak:    st.Stats.Streak,
		Completed: st.Stats.TotalCompleted,
		Progress:  domain.ProgressForXP(st.Stats.XP),
		Week:      week,
	}, nil
}

// History returns the last days days, newest first, capped at a year.
func (s *SummaryService) History(ctx context.Context, days int) ([]HistoryDay, error) {
	if days <= 0 {
		days = 30
	}
	if days > maxHistoryDays {
		days = maxHistoryDays
	}
	st, err := s.state.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	keys, err := domain.LastDays(s.state.Today(), days)
	if err != nil {
		return nil, err
	}
	out := make([]HistoryDay, 0, len(keys))
	for _, day := range keys {
		done := append([]string{}, st.Completions[day]...)
		out = append(out, HistoryDay{
			Day:     day,
			Done:    done,
			Percent: percentOf(st.Completions.DoneOn(day), len(st.Habits)),
		})
	}
	return out, nil
}

// Achievements lists the catalog with the unlocked state of each entry.
func (s *SummaryService) Achievements(ctx context.Context) ([]AchievementStatus, error) {
	st, err := s.state.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AchievementStatus, 0, len(s.catalog))
	for _, a := range s.catalog {
		out = append(out, AchievementStatus{Achievement: a, Unlocked: st.Stats.HasUnlocked(a.ID)})
	}
	return out, nil
}

// Progress returns the stats with the level progress.
func (s *SummaryService) Progress(ctx context.Context) (domain.Stats, domain.LevelProgress, error) {
	st, err := s.state.Snapshot(ctx)
	if err != nil {
		return domain.Stats{}, domain.LevelProgress{}, err
	}
	return st.Stats, domain.ProgressForXP(st.Stats.XP), nil
}
