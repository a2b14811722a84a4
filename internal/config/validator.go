package config

import (
	"fmt"
	"os"
	"time"
)

// ValidateEnvWithWarnings checks the loaded configuration and returns warnings
// for non-critical issues. Only an unusable store driver is fatal.
func ValidateEnvWithWarnings(cfg *Config) ([]string, error) {
	switch cfg.StoreDriver {
	case StoreDriverSQLite, StoreDriverMemory:
	default:
		return nil, fmt.Errorf("unknown %s %q (expected %s or %s)", EnvStoreDriver, cfg.StoreDriver, StoreDriverSQLite, StoreDriverMemory)
	}

	var warnings []string

	if info, err := os.Stat(cfg.DataDir); err != nil || !info.IsDir() {
		warnings = append(warnings, fmt.Sprintf("%s %q is not a directory - item data will load empty", EnvDataDir, cfg.DataDir))
	}

	if _, err := time.LoadLocation(cfg.ResetTimezone); err != nil {
		warnings = append(warnings, fmt.Sprintf("%s %q could not be loaded - falling back to UTC", EnvResetTimezone, cfg.ResetTimezone))
	}

	if cfg.StoreDriver == StoreDriverMemory {
		warnings = append(warnings, "memory store selected - progress will not survive restarts")
	}

	if cfg.StoreCacheSize <= 0 {
		warnings = append(warnings, fmt.Sprintf("%s must be positive - using %d", EnvStoreCacheSize, DefaultStoreCacheSize))
		cfg.StoreCacheSize = DefaultStoreCacheSize
	}

	return warnings, nil
}
