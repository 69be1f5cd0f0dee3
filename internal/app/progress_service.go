package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"levelup/internal/domain"
)

var (
	// ErrInvalidHabit indicates that a new habit failed validation.
	ErrInvalidHabit = errors.New("habit name is required")
	// ErrInvalidCategory indicates an unknown habit category.
	ErrInvalidCategory = errors.New("unknown category")
	// ErrInvalidName indicates that a profile name failed validation.
	ErrInvalidName = errors.New("name must be 1 to 64 characters")
)

const maxNameLength = 64

// ProgressOptions configures a ProgressService. Zero values select defaults.
type ProgressOptions struct {
	Clock       domain.Clock
	Location    *time.Location
	Notifier    domain.Notifier
	Catalog     []domain.Achievement
	ProfileName string
	Logger      *zap.Logger
	// NewHabitID allocates ids for custom habits.
	NewHabitID func() string
}

// ProgressService owns the application state and runs every mutation to
// completion: the ledger change, the stats update, the achievement pass and
// the save of all three blobs.
type ProgressService struct {
	store       domain.BlobStore
	clock       domain.Clock
	loc         *time.Location
	notifier    domain.Notifier
	catalog     []domain.Achievement
	profileName string
	log         *zap.Logger
	newHabitID  func() string

	mu     sync.Mutex
	state  domain.State
	loaded bool
}

// NewProgressService creates a ProgressService backed by the given store.
func NewProgressService(store domain.BlobStore, opts ProgressOptions) *ProgressService {
	s := &ProgressService{
		store:       store,
		clock:       opts.Clock,
		loc:         opts.Location,
		notifier:    opts.Notifier,
		catalog:     opts.Catalog,
		profileName: opts.ProfileName,
		log:         opts.Logger,
		newHabitID:  opts.NewHabitID,
	}
	if s.clock == nil {
		s.clock = domain.SystemClock{}
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.catalog == nil {
		s.catalog = domain.DefaultAchievements()
	}
	if s.profileName == "" {
		s.profileName = domain.DefaultProfileName
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.newHabitID == nil {
		s.newHabitID = func() string { return "h-" + uuid.NewString() }
	}
	return s
}

// ToggleResult describes the outcome of a toggle.
type ToggleResult struct {
	Applied   bool            `json:"applied"`
	Completed bool            `json:"completed"`
	HabitID   string          `json:"habitId"`
	Day       string          `json:"day"`
	Delta     domain.Delta    `json:"delta"`
	Stats     domain.Stats    `json:"stats"`
	Unlocks   []domain.Unlock `json:"unlocks"`
}

// Today returns the current ledger date key.
func (s *ProgressService) Today() string {
	return domain.DayKey(s.clock.Now(), s.loc)
}

// Load reads the persisted state. Blobs that fail to decode fall back to
// their defaults independently.
func (s *ProgressService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *ProgressService) loadLocked(ctx context.Context) error {
	blobs, err := s.store.GetBlobs(ctx, domain.BlobKeys...)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	st, bad := domain.DecodeState(blobs, s.profileName)
	for _, e := range bad {
		s.log.Warn("stored blob unreadable, using default", zap.String("key", e.Key), zap.Error(e.Err))
	}
	st.Stats.Streak = domain.CurrentStreak(st.Completions, s.Today())
	s.state = st
	s.loaded = true
	s.log.Debug("state loaded",
		zap.Int("habits", len(st.Habits)),
		zap.Int("days", len(st.Completions)),
		zap.Int("xp", st.Stats.XP))
	return nil
}

func (s *ProgressService) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	return s.loadLocked(ctx)
}

// Snapshot returns a copy of the current state with the streak computed for
// today.
func (s *ProgressService) Snapshot(ctx context.Context) (domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.State{}, err
	}
	st := s.state.Clone()
	st.Stats.Streak = domain.CurrentStreak(st.Completions, s.Today())
	return st, nil
}

// Toggle marks habitID done for today, or undoes it when already done.
// Unknown ids are ignored and reported with Applied=false.
func (s *ProgressService) Toggle(ctx context.Context, habitID string) (ToggleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return ToggleResult{}, err
	}

	today := s.Today()
	res := ToggleResult{HabitID: habitID, Day: today, Stats: s.state.Stats.Clone()}

	ledger, delta, ok := s.state.Completions.Toggle(s.state.Habits, habitID, today)
	if !ok {
		s.log.Debug("toggle ignored, unknown habit", zap.String("habit", habitID))
		return res, nil
	}

	stats := s.state.Stats.Apply(delta)
	stats.Streak = domain.CurrentStreak(ledger, today)
	stats, unlocks := domain.EvaluateAchievements(s.catalog, ledger, s.state.Habits, stats, today)

	next := domain.State{Habits: s.state.Habits, Completions: ledger, Stats: stats}
	if err := s.save(ctx, next); err != nil {
		return ToggleResult{}, err
	}
	s.state = next

	s.log.Debug("habit toggled",
		zap.String("habit", habitID),
		zap.String("day", today),
		zap.Int("xpDelta", delta.XP),
		zap.Int("xp", stats.XP),
		zap.Int("level", stats.Level))
	for _, u := range unlocks {
		s.log.Info("achievement unlocked", zap.String("achievement", u.AchievementID), zap.Int("reward", u.XPReward))
		if s.notifier != nil {
			s.notifier.Notify(ctx, u)
		}
	}

	res.Applied = true
	res.Completed = delta.IsCompletion()
	res.Delta = delta
	res.Stats = stats.Clone()
	res.Unlocks = unlocks
	return res, nil
}

// AddHabit appends a custom habit to the habit list.
func (s *ProgressService) AddHabit(ctx context.Context, name string, category domain.Category, icon string) (domain.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Habit{}, ErrInvalidHabit
	}
	if category == "" {
		category = domain.CategoryHealth
	}
	if !category.Valid() {
		return domain.Habit{}, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	icon = strings.TrimSpace(icon)
	if icon == "" {
		icon = domain.DefaultHabitIcon
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.Habit{}, err
	}

	h := domain.Habit{
		ID:       s.newHabitID(),
		Name:     name,
		Icon:     icon,
		Category: category,
		XP:       domain.CustomHabitXP,
		IsCustom: true,
	}
	next := s.state.Clone()
	next.Habits = append(next.Habits, h)
	if err := s.save(ctx, next); err != nil {
		return domain.Habit{}, err
	}
	s.state = next
	s.log.Info("habit added", zap.String("habit", h.ID), zap.String("name", h.Name))
	return h, nil
}

// Rename sets the profile display name.
func (s *ProgressService) Rename(ctx context.Context, name string) (domain.Stats, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return domain.Stats{}, ErrInvalidName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.Stats{}, err
	}

	next := s.state.Clone()
	next.Stats.Name = name
	if err := s.save(ctx, next); err != nil {
		return domain.Stats{}, err
	}
	s.state = next
	return next.Stats.Clone(), nil
}

// Replace overwrites the whole state, as a confirmed backup import does.
func (s *ProgressService) Replace(ctx context.Context, st domain.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := st.Clone()
	if next.Completions == nil {
		next.Completions = domain.Ledger{}
	}
	next.Stats = next.Stats.Normalize()
	if err := s.save(ctx, next); err != nil {
		return err
	}
	s.state = next
	s.loaded = true
	s.log.Info("state replaced", zap.Int("habits", len(next.Habits)), zap.Int("days", len(next.Completions)))
	return nil
}

func (s *ProgressService) save(ctx context.Context, st domain.State) error {
	blobs, err := st.Encode()
	if err != nil {
		return err
	}
	if err := s.store.PutBlobs(ctx, blobs); err != nil {
		s.log.Error("save state failed", zap.Error(err))
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}
