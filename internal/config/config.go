package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	DataDir          string
	StoreDriver      string
	StorePath        string
	StoreCacheSize   int
	LogLevel         string
	LogFormat        string
	LogDir           string
	Environment      string
	Version          string
	CounterTypesPath string // optional YAML override of counter types
	MetricsFile      string // optional prometheus textfile written on shutdown
	ResetTimezone    string
	ResetHour        int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:          getEnv(EnvDataDir, DefaultDataDir),
		StoreDriver:      strings.ToLower(getEnv(EnvStoreDriver, StoreDriverSQLite)),
		StorePath:        getEnv(EnvStorePath, DefaultStorePath),
		StoreCacheSize:   getEnvAsInt(EnvStoreCacheSize, DefaultStoreCacheSize),
		LogLevel:         getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:        getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:           getEnv(EnvLogDir, DefaultLogDir),
		Environment:      getEnv(EnvEnvironment, DefaultEnvironment),
		Version:          getEnv(EnvVersion, DefaultVersion),
		CounterTypesPath: getEnv(EnvCounterTypesPath, ""),
		MetricsFile:      getEnv(EnvMetricsFile, ""),
		ResetTimezone:    getEnv(EnvResetTimezone, DefaultResetTimezone),
	}

	hourStr := getEnv(EnvResetHour, strconv.Itoa(DefaultResetHour))
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvResetHour, err)
	}
	if hour < 0 || hour > 23 {
		return nil, fmt.Errorf("invalid %s value: %d is not an hour of day", EnvResetHour, hour)
	}
	cfg.ResetHour = hour

	return cfg, nil
}

// DataFile returns the path of a data file inside the data directory
func (c *Config) DataFile(name string) string {
	return filepath.Join(c.DataDir, name)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
