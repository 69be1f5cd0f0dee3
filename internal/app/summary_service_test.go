package app_test

import (
	"context"
	"testing"

	"levelup/internal/app"
	"levelup/internal/domain"
)

type stubReader struct {
	today string
	state domain.State
	err   error
}

func (s stubReader) Today() string { return s.today }

func (s stubReader) Snapshot(context.Context) (domain.State, error) { return s.state, s.err }

func TestDashboard(t *testing.T) {
	st := domain.DefaultState("Ana")
	st.Completions = domain.Ledger{
		"2026-03-10": {"h1", "h2", "h3"},
		"2026-03-08": {"h1"},
		"2026-03-01": {"h1"},
	}
	st.Stats.XP = 250
	st.Stats.Streak = 1
	svc := app.NewSummaryService(stubReader{today: "2026-03-10", state: st}, nil)

	d, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Done != 3 || d.Total != 6 || d.Remaining != 3 || d.Percent != 50 {
		t.Errorf("unexpected today summary: %+v", d)
	}
	if d.Progress.Level != 2 || d.Progress.IntoLevel != 150 {
		t.Errorf("unexpected progress: %+v", d.Progress)
	}
	if len(d.Week) != 7 {
		t.Fatalf("expected 7 days, got %d", len(d.Week))
	}
	if d.Week[0].Day != "2026-03-04" || d.Week[6].Day != "2026-03-10" {
		t.Errorf("week should run oldest to newest, got %s..%s", d.Week[0].Day, d.Week[6].Day)
	}
	if d.Week[6].Done != 3 || d.Week[4].Done != 1 || d.Week[5].Done != 0 {
		t.Errorf("unexpected week counts: %+v", d.Week)
	}
	if d.Week[6].Weekday != "Tue" {
		t.Errorf("expected Tue, got %s", d.Week[6].Weekday)
	}
}

func TestHistory(t *testing.T) {
	st := domain.DefaultState("Ana")
	st.Completions = domain.Ledger{"2026-03-09": {"h1", "h4", "h5"}}
	svc := app.NewSummaryService(stubReader{today: "2026-03-10", state: st}, nil)

	tests := []struct {
		name  string
		days  int
		wantN int
	}{
		{"default", 0, 30},
		{"explicit", 7, 7},
		{"capped", 1000, 366},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, err := svc.History(context.Background(), tc.days)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(h) != tc.wantN {
				t.Fatalf("expected %d days, got %d", tc.wantN, len(h))
			}
			if h[0].Day != "2026-03-10" || len(h[0].Done) != 0 {
				t.Errorf("expected today first and empty, got %+v", h[0])
			}
			if h[1].Percent != 50 || len(h[1].Done) != 3 {
				t.Errorf("unexpected yesterday: %+v", h[1])
			}
		})
	}
}

func TestAchievementsStatus(t *testing.T) {
	st := domain.DefaultState("Ana")
	st.Stats.UnlockedAchievements = []string{"bookworm"}
	svc := app.NewSummaryService(stubReader{today: "2026-03-10", state: st}, nil)

	list, err := svc.Achievements(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 4 {
		t.Fatalf("expected 4 achievements, got %d", len(list))
	}
	for _, a := range list {
		if a.Unlocked != (a.ID == "bookworm") {
			t.Errorf("%s: unexpected unlocked=%v", a.ID, a.Unlocked)
		}
	}
}
