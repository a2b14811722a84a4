package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/RavenCompanion_Go/internal/config"
	"github.com/osse101/RavenCompanion_Go/internal/database/memory"
	"github.com/osse101/RavenCompanion_Go/internal/database/sqlite"
	"github.com/osse101/RavenCompanion_Go/internal/logger"
	"github.com/osse101/RavenCompanion_Go/internal/repository"
)

// OpenStore opens the progress store selected by the configuration
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	var (
		store repository.Store
		err   error
	)

	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		store, err = sqlite.Open(ctx, cfg.StorePath, cfg.StoreCacheSize)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgOpenStoreFailed, err)
		}
	case config.StoreDriverMemory:
		store = memory.New()
	default:
		return nil, fmt.Errorf(ErrMsgUnknownStoreDriver, cfg.StoreDriver)
	}

	logger.FromContext(ctx).Info(LogMsgStoreOpened, "driver", cfg.StoreDriver, "path", cfg.StorePath)
	return store, nil
}
