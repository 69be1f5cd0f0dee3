package app_test

import (
	"context"
	"testing"
	"time"

	"levelup/internal/app"
	"levelup/internal/domain"
)

func unlock(id string) domain.Unlock {
	return domain.Unlock{AchievementID: id, Title: id, XPReward: 100}
}

func TestNotificationQueue_OneAtATime(t *testing.T) {
	clock := newClock()
	q := app.NewNotificationQueue(clock, 5*time.Second)
	ctx := context.Background()

	if _, ok := q.Current(); ok {
		t.Fatal("expected empty queue")
	}

	q.Notify(ctx, unlock("a"))
	q.Notify(ctx, unlock("b"))
	if q.Pending() != 2 {
		t.Fatalf("expected 2 pending, got %d", q.Pending())
	}

	n, ok := q.Current()
	if !ok || n.Unlock.AchievementID != "a" {
		t.Fatalf("expected a first, got %+v", n)
	}

	clock.advance(4 * time.Second)
	if n, _ := q.Current(); n.Unlock.AchievementID != "a" {
		t.Fatalf("a should still be visible, got %+v", n)
	}

	clock.advance(time.Second)
	n, ok = q.Current()
	if !ok || n.Unlock.AchievementID != "b" {
		t.Fatalf("expected b after a expired, got %+v", n)
	}
	if !n.ShownAt.Equal(clock.Now()) {
		t.Errorf("expected b shown now, got %v", n.ShownAt)
	}
}

func TestNotificationQueue_Dismiss(t *testing.T) {
	q := app.NewNotificationQueue(newClock(), 0)
	ctx := context.Background()

	if q.Dismiss() {
		t.Fatal("dismiss on empty queue should report false")
	}
	q.Notify(ctx, unlock("a"))
	q.Notify(ctx, unlock("b"))
	if !q.Dismiss() {
		t.Fatal("expected dismiss to succeed")
	}
	n, ok := q.Current()
	if !ok || n.Unlock.AchievementID != "b" {
		t.Fatalf("expected b, got %+v", n)
	}

	drained := q.Drain()
	if len(drained) != 1 || q.Pending() != 0 {
		t.Fatalf("expected drain of 1, got %d (pending %d)", len(drained), q.Pending())
	}
}

func TestNotificationQueue_ReceivesEveryUnlock(t *testing.T) {
	clock := newClock()
	q := app.NewNotificationQueue(clock, time.Second)
	svc := newService(&mockStore{}, clock, q)
	ctx := context.Background()

	st := domain.DefaultState("Ana")
	for back := 1; back < 7; back++ {
		day, _ := domain.ShiftDay("2026-03-10", -back)
		st.Completions[day] = []string{"h1", "h4"}
	}
	st.Completions["2026-03-10"] = []string{"h4"}
	if err := svc.Replace(ctx, st); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Toggle(ctx, "h1"); err != nil {
		t.Fatal(err)
	}
	// h1 completes the week; hydration already held and unlocks in the same pass.
	if q.Pending() != 2 {
		t.Fatalf("expected both unlocks queued, got %d", q.Pending())
	}
	first, _ := q.Current()
	if first.Unlock.AchievementID != "first_week_smoke_free" {
		t.Errorf("expected catalog order, got %s", first.Unlock.AchievementID)
	}
}
