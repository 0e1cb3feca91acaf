package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all application configuration in a structured way.
type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Valkey   ValkeyConfig
	Database DatabaseConfig
	Breaker  BreakerConfig
	Cache    CacheConfig
}

type AppConfig struct {
	Version     string
	Port        string
	Debug       bool
	Environment string
	BasePath    string
	// Timezone is used to bucket analytics by local hour. Empty means UTC.
	Timezone string
	// BasicAuth holds user:secret pairs guarding the API. Empty leaves it open.
	BasicAuth          []string
	CorsAllowedOrigins []string
}

type StorageConfig struct {
	// KVDriver selects the local cache backend: memory, badger or valkey.
	KVDriver  string
	BaseDir   string
	BadgerDir string
}

type ValkeyConfig struct {
	Address   string
	Password  string
	DB        int
	KeyPrefix string
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string // File path for SQLite, DB Name for Postgres
}

type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

type CacheConfig struct {
	DefaultExpiry time.Duration
}

// Global provides access to the loaded configuration globally.
var Global *Config

// LoadConfig loads configuration from Environment Variables or defaults.
// A .env file in the working directory is read first when present.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("[CONFIG] Failed to read .env file")
	}

	baseDir := getEnv("APP_BASE_DIR", "storages")

	debug := getEnvBool("APP_DEBUG", false)
	if !debug {
		debug = getEnvBool("DEBUG", false)
	}

	appCfg := AppConfig{
		Version:     "v0.4.0",
		Port:        getEnv("APP_PORT", "3000"),
		Debug:       debug,
		Environment: getEnv("APP_ENV", "development"),
		BasePath:    getEnv("APP_BASE_PATH", ""),
		Timezone:    getEnv("APP_TIMEZONE", ""),

		BasicAuth:          getEnvSlice("APP_BASIC_AUTH", nil),
		CorsAllowedOrigins: getEnvSlice("APP_CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	storageCfg := StorageConfig{
		KVDriver:  getEnv("KV_DRIVER", "badger"),
		BaseDir:   baseDir,
		BadgerDir: getEnv("KV_BADGER_DIR", filepath.Join(baseDir, "cache")),
	}

	valkeyCfg := ValkeyConfig{
		Address:   getEnv("VALKEY_ADDRESS", "localhost:6379"),
		Password:  getEnv("VALKEY_PASSWORD", ""),
		DB:        getEnvInt("VALKEY_DB", 0),
		KeyPrefix: getEnv("VALKEY_KEY_PREFIX", "azlearn:"),
	}

	dbCfg := DatabaseConfig{
		Driver:   getEnv("DB_DRIVER", "sqlite"),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnvInt("DB_PORT", 5432),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", filepath.Join(baseDir, "documents.db")),
	}

	breakerCfg := BreakerConfig{
		MaxRequests:      uint32(getEnvInt("BREAKER_MAX_REQUESTS", 1)),
		Interval:         getEnvDuration("BREAKER_INTERVAL", time.Minute),
		Timeout:          getEnvDuration("BREAKER_TIMEOUT", 30*time.Second),
		FailureThreshold: uint32(getEnvInt("BREAKER_FAILURE_THRESHOLD", 5)),
	}

	cfg := &Config{
		App:      appCfg,
		Storage:  storageCfg,
		Valkey:   valkeyCfg,
		Database: dbCfg,
		Breaker:  breakerCfg,
		Cache:    CacheConfig{DefaultExpiry: getEnvDuration("CACHE_DEFAULT_EXPIRY", time.Hour)},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	Global = cfg
	return cfg, nil
}

// Validate rejects driver names the rest of the app cannot wire.
func (c *Config) Validate() error {
	switch c.Storage.KVDriver {
	case "memory", "badger", "valkey":
	default:
		return fmt.Errorf("unsupported kv driver: %s", c.Storage.KVDriver)
	}
	switch c.Database.Driver {
	case "sqlite", "postgres", "memory":
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	for _, pair := range c.App.BasicAuth {
		if user, secret, ok := strings.Cut(pair, ":"); !ok || user == "" || secret == "" {
			return fmt.Errorf("basic auth entry %q must be user:secret", pair)
		}
	}
	if c.App.Timezone != "" {
		if _, err := time.LoadLocation(c.App.Timezone); err != nil {
			return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.App.Timezone, err)
		}
	}
	return nil
}

// Location returns the analytics timezone, UTC when unset.
func (c *Config) Location() *time.Location {
	if c.App.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
