// Package app holds the application services and business logic.
package app

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"

	"levelup/internal/domain"
)

var (
	// ErrInvalidBackup indicates a backup document without the required keys.
	ErrInvalidBackup = errors.New("invalid backup")
	// ErrMalformedBackup indicates a backup document that could not be parsed.
	ErrMalformedBackup = errors.New("malformed backup")
)

// StateKeeper is the part of ProgressService the backup use cases need.
type StateKeeper interface {
	Today() string
	Snapshot(ctx context.Context) (domain.State, error)
	Replace(ctx context.Context, st domain.State) error
}

// Backup is an exported state document ready to be written to a file.
type Backup struct {
	Filename   string
	Data       []byte
	Digest     string
	ExportedAt time.Time
}

type backupDoc struct {
	Habits      []domain.Habit `json:"habits"`
	Completions domain.Ledger  `json:"completions"`
	Stats       domain.Stats   `json:"stats"`
	ExportedAt  string         `json:"exportedAt"`
}

// BackupService implements export and import of the whole state.
type BackupService struct {
	state StateKeeper
	clock domain.Clock
	log   *zap.Logger
}

// NewBackupService creates a BackupService over the given state owner.
func NewBackupService(state StateKeeper, clock domain.Clock, log *zap.Logger) *BackupService {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &BackupService{state: state, clock: clock, log: log}
}

// BackupFilename returns the export file name for day.
func BackupFilename(day string) string {
	return "levelup-backup-" + day + ".json"
}

// Digest returns the hex BLAKE2b-256 digest of data.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Export bundles the current state with an export timestamp.
func (s *BackupService) Export(ctx context.Context) (Backup, error) {
	st, err := s.state.Snapshot(ctx)
	if err != nil {
		return Backup{}, err
	}
	now := s.clock.Now()
	doc := backupDoc{
		Habits:      st.Habits,
		Completions: st.Completions,
		Stats:       st.Stats,
		ExportedAt:  now.UTC().Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return Backup{}, fmt.Errorf("encode backup: %w", err)
	}
	return Backup{
		Filename:   BackupFilename(s.state.Today()),
		Data:       data,
		Digest:     Digest(data),
		ExportedAt: now,
	}, nil
}

// Import replaces the whole state with the backup in data. The document only
// has to carry the habits, completions and stats keys; anything else fails
// without touching the current state.
func (s *BackupService) Import(ctx context.Context, data []byte) (domain.State, error) {
	st, err := ParseBackup(data)
	if err != nil {
		s.log.Warn("backup rejected", zap.Error(err))
		return domain.State{}, err
	}
	if err := s.state.Replace(ctx, st); err != nil {
		return domain.State{}, err
	}
	s.log.Info("backup imported", zap.String("digest", Digest(data)))
	return st, nil
}

// ParseBackup decodes a backup document into a state.
func ParseBackup(data []byte) (domain.State, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.State{}, fmt.Errorf("%w: %v", ErrMalformedBackup, err)
	}
	for _, key := range domain.BlobKeys {
		raw, ok := doc[key]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return domain.State{}, fmt.Errorf("%w: missing %q", ErrInvalidBackup, key)
		}
	}

	var st domain.State
	if err := json.Unmarshal(doc[domain.KeyHabits], &st.Habits); err != nil {
		return domain.State{}, fmt.Errorf("%w: habits: %v", ErrMalformedBackup, err)
	}
	if err := json.Unmarshal(doc[domain.KeyCompletions], &st.Completions); err != nil {
		return domain.State{}, fmt.Errorf("%w: completions: %v", ErrMalformedBackup, err)
	}
	if err := json.Unmarshal(doc[domain.KeyStats], &st.Stats); err != nil {
		return domain.State{}, fmt.Errorf("%w: stats: %v", ErrMalformedBackup, err)
	}
	st.Stats = st.Stats.Normalize()
	return st, nil
}
