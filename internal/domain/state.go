// Package domain contains the core business entities and interfaces.
package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Names of the persisted state blobs.
const (
	KeyHabits      = "habits"
	KeyCompletions = "completions"
	KeyStats       = "stats"
)

// BlobKeys lists every persisted blob.
var BlobKeys = []string{KeyHabits, KeyCompletions, KeyStats}

// State is the whole application state: the habit list, the completion
// ledger and the stats record. The three are always saved together.
type State struct {
	Habits      []Habit `json:"habits"`
	Completions Ledger  `json:"completions"`
	Stats       Stats   `json:"stats"`
}

// DefaultState returns the first-run state.
func DefaultState(profileName string) State {
	return State{
		Habits:      DefaultHabits(),
		Completions: Ledger{},
		Stats:       DefaultStats(profileName),
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{
		Habits:      append([]Habit{}, s.Habits...),
		Completions: s.Completions.Clone(),
		Stats:       s.Stats.Clone(),
	}
}

// Encode serializes each part of the state into its named blob.
func (s State) Encode() (map[string][]byte, error) {
	parts := map[string]any{
		KeyHabits:      s.Habits,
		KeyCompletions: s.Completions,
		KeyStats:       s.Stats,
	}
	out := make(map[string][]byte, len(parts))
	for key, v := range parts {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		out[key] = b
	}
	return out, nil
}

// BlobError reports a stored blob that could not be decoded.
type BlobError struct {
	Key string
	Err error
}

func (e BlobError) Error() string { return fmt.Sprintf("decode %s: %v", e.Key, e.Err) }

func (e BlobError) Unwrap() error { return e.Err }

// DecodeState rebuilds the state from stored blobs. Each blob that is
// missing, null or malformed is replaced by its default on its own; the
// malformed ones are reported.
func DecodeState(blobs map[string][]byte, profileName string) (State, []BlobError) {
	st := DefaultState(profileName)
	var errs []BlobError

	decode := func(key string, dst any) bool {
		raw, ok := blobs[key]
		if !ok || len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return false
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			errs = append(errs, BlobError{Key: key, Err: err})
			return false
		}
		return true
	}

	var habits []Habit
	if decode(KeyHabits, &habits) {
		st.Habits = habits
	}
	var ledger Ledger
	if decode(KeyCompletions, &ledger) && ledger != nil {
		st.Completions = ledger
	}
	var stats Stats
	if decode(KeyStats, &stats) {
		st.Stats = stats.Normalize()
	}
	if st.Habits == nil {
		st.Habits = []Habit{}
	}
	return st, errs
}

// BlobStore is the port for persisting named state blobs.
type BlobStore interface {
	// GetBlobs returns the stored value of each requested key. Keys that
	// were never written are absent from the result.
	GetBlobs(ctx context.Context, keys ...string) (map[string][]byte, error)
	// PutBlobs writes every given blob in one atomic step.
	PutBlobs(ctx context.Context, blobs map[string][]byte) error
}

// Clock yields the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// Notifier receives achievement unlock events.
type Notifier interface {
	Notify(ctx context.Context, u Unlock)
}
