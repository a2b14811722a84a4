package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/RavenCompanion_Go/internal/bridge"
	"github.com/osse101/RavenCompanion_Go/internal/config"
	"github.com/osse101/RavenCompanion_Go/internal/counter"
	"github.com/osse101/RavenCompanion_Go/internal/event"
	"github.com/osse101/RavenCompanion_Go/internal/item"
	"github.com/osse101/RavenCompanion_Go/internal/logger"
	"github.com/osse101/RavenCompanion_Go/internal/metrics"
	"github.com/osse101/RavenCompanion_Go/internal/naming"
	"github.com/osse101/RavenCompanion_Go/internal/progress"
	"github.com/osse101/RavenCompanion_Go/internal/repository"
	"github.com/osse101/RavenCompanion_Go/internal/scheduler"
	"github.com/osse101/RavenCompanion_Go/internal/stats"
	"github.com/osse101/RavenCompanion_Go/internal/targets"
	"github.com/osse101/RavenCompanion_Go/internal/worker"
)

// App is the wired service graph of one companion session
type App struct {
	Config     *config.Config
	Store      repository.Store
	Catalog    *item.Catalog
	Bus        *event.MemoryBus
	Bridge     *bridge.Bridge
	ResetAlert *worker.ResetAlertJob

	pool      *worker.Pool
	scheduler *scheduler.Scheduler
}

// Build opens the store, loads the item data and wires every service.
// Background jobs are not started; see Start.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.FromContext(ctx)

	descriptors, err := counter.LoadDescriptors(cfg.CounterTypesPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCounterTypes, err)
	}

	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	repo := repository.NewProgress(store)
	catalog := item.NewCatalog(item.NewLoader(),
		cfg.DataFile(config.FileCosmetics),
		cfg.DataFile(config.FileTrophies),
		naming.NewResolver())

	bus := event.NewMemoryBus()
	metrics.NewEventMetricsCollector().Register(bus)

	b := bridge.New(bridge.Deps{
		Catalog:     catalog,
		Progress:    progress.NewService(repo, catalog),
		Counters:    counter.NewTracker(repo),
		Descriptors: descriptors,
		Targets:     targets.NewService(repo),
		Stats:       stats.NewService(repo, catalog),
		Bus:         bus,
	})

	data := b.ReloadData(ctx)
	for _, w := range data.Warnings {
		log.Warn(LogMsgCatalogWarning, "warning", w)
	}
	log.Info(LogMsgCatalogLoaded, "cosmetics", len(data.Cosmetics), "trophies", len(data.Trophies))

	location, err := time.LoadLocation(cfg.ResetTimezone)
	if err != nil {
		log.Warn(LogMsgTimezoneFallback, "timezone", cfg.ResetTimezone, "error", err)
		location = time.UTC
	}

	pool := worker.NewPool(WorkerCount, WorkerQueueSize)
	return &App{
		Config:     cfg,
		Store:      store,
		Catalog:    catalog,
		Bus:        bus,
		Bridge:     b,
		ResetAlert: worker.NewResetAlertJob(bus, location, cfg.ResetHour),
		pool:       pool,
		scheduler:  scheduler.New(pool),
	}, nil
}

// Start runs the background jobs: the reset alert check every minute,
// starting immediately.
func (a *App) Start(ctx context.Context) {
	a.pool.Start()
	a.scheduler.Schedule(ResetAlertInterval, a.ResetAlert, true)
	logger.FromContext(ctx).Info(LogMsgBackgroundStarted, "reset_alert_interval", ResetAlertInterval)
}
