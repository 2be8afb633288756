package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/richezza/rmv/internal/config"
	"github.com/richezza/rmv/internal/metrics"
	"github.com/richezza/rmv/internal/storage"
	"github.com/richezza/rmv/internal/store"
)

// App holds the record store and the medium behind it.
// This is the main application container that manages their lifecycle.
type App struct {
	medium storage.Medium
	logger *slog.Logger

	Store   *store.Store
	Metrics *metrics.Metrics
}

// New opens the medium cfg selects, caps it with the configured quota and
// builds the store over it.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	options := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}

	medium := options.medium
	if medium == nil {
		m, err := openMedium(ctx, cfg.Storage)
		if err != nil {
			return nil, err
		}
		medium = m
	}
	medium = storage.WithQuota(medium, int(cfg.Storage.Quota()))

	counters := metrics.New()
	options.logger.Debug("app initialized",
		"driver", cfg.Storage.Driver,
		"path", cfg.Storage.Path,
		"quota_bytes", cfg.Storage.Quota(),
	)

	return &App{
		medium:  medium,
		logger:  options.logger,
		Store:   store.New(medium, store.WithLogger(options.logger), store.WithMetrics(counters)),
		Metrics: counters,
	}, nil
}

func openMedium(ctx context.Context, sc config.StorageConfig) (storage.Medium, error) {
	switch sc.Driver {
	case config.DriverMemory:
		return storage.NewMemory(), nil
	case config.DriverSQLite, "":
		db, err := storage.OpenSQLite(ctx, sc.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open storage: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", sc.Driver)
	}
}

// Close releases the medium
func (a *App) Close() error {
	if c, ok := a.medium.(io.Closer); ok {
		if err := c.Close(); err != nil {
			a.logger.Error("failed to close storage", "error", err)
			return err
		}
	}
	return nil
}
