package config

// Environment variable names
const (
	EnvDataDir          = "DATA_DIR"
	EnvStoreDriver      = "STORE_DRIVER"
	EnvStorePath        = "STORE_PATH"
	EnvStoreCacheSize   = "STORE_CACHE_SIZE"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvLogDir           = "LOG_DIR"
	EnvEnvironment      = "ENVIRONMENT"
	EnvVersion          = "VERSION"
	EnvCounterTypesPath = "COUNTER_TYPES_PATH"
	EnvMetricsFile      = "METRICS_FILE"
	EnvResetTimezone    = "RESET_TIMEZONE"
	EnvResetHour        = "RESET_HOUR"
)

// Store drivers
const (
	StoreDriverSQLite = "sqlite"
	StoreDriverMemory = "memory"
)

// Defaults
const (
	DefaultDataDir        = "data"
	DefaultStorePath      = "companion.db"
	DefaultStoreCacheSize = 128
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultLogDir         = "logs"
	DefaultEnvironment    = "dev"
	DefaultVersion        = "dev"
	DefaultResetTimezone  = "America/Los_Angeles"
	DefaultResetHour      = 6
)

// Data file names inside DATA_DIR
const (
	FileCosmetics = "cosmetics.json"
	FileTrophies  = "trophies.json"
)
