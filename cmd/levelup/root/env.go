package root

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"levelup/internal/adapter/memory"
	"levelup/internal/adapter/postgres"
	"levelup/internal/adapter/redis"
	"levelup/internal/adapter/sqlite"
	"levelup/internal/app"
	"levelup/internal/config"
	"levelup/internal/domain"
	"levelup/internal/logging"
)

// env is the wired application used by every command.
type env struct {
	cfg      config.Config
	log      *zap.Logger
	progress *app.ProgressService
	summary  *app.SummaryService
	backups  *app.BackupService
	notes    *app.NotificationQueue
}

func openEnv(ctx context.Context) (*env, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}

	store, closeStore, err := openStore(cfg.Store)
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}

	clock := domain.SystemClock{}
	notes := app.NewNotificationQueue(clock, cfg.ToastTTL)
	progress := app.NewProgressService(store, app.ProgressOptions{
		Clock:       clock,
		Location:    loc,
		Notifier:    notes,
		ProfileName: cfg.ProfileName,
		Logger:      log,
	})
	if err := progress.Load(ctx); err != nil {
		_ = closeStore()
		_ = log.Sync()
		return nil, nil, err
	}

	e := &env{
		cfg:      cfg,
		log:      log,
		progress: progress,
		summary:  app.NewSummaryService(progress, nil),
		backups:  app.NewBackupService(progress, clock, log),
		notes:    notes,
	}
	cleanup := func() {
		if err := closeStore(); err != nil {
			log.Warn("close store", zap.Error(err))
		}
		_ = log.Sync()
	}
	return e, cleanup, nil
}

func openStore(cfg config.StoreConfig) (domain.BlobStore, func() error, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.New(), func() error { return nil }, nil
	case config.DriverPostgres:
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("db open: %w", err)
		}
		return db, db.Close, nil
	case config.DriverRedis:
		s, err := redis.Open(redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		path := cfg.SQLitePath
		if path == "" {
			p, err := sqlite.DefaultPath()
			if err != nil {
				return nil, nil, err
			}
			path = p
		}
		db, err := sqlite.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	}
}
