// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds all dashboard service configuration.
type Config struct {
	Port       string
	ScoringURL string // base URL of the remote fraud-scoring service

	ScoringTimeout time.Duration
	FallbackDelay  time.Duration
	HomeCity       string // customer profile home city for the fallback rule

	HistoryDSN string // sqlite DSN for the session ledger

	LogLevel  string
	LogFormat string // "console" or "json"
}

const (
	DefaultPort           = "8080"
	DefaultScoringURL     = "http://localhost:8000"
	DefaultScoringTimeout = 5 * time.Second
	DefaultFallbackDelay  = time.Second
	DefaultHomeCity       = "Houston"
	DefaultHistoryDSN     = ":memory:"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "console"
)

// Load reads configuration from environment variables, loading a .env file
// first if one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", DefaultPort),
		ScoringURL:     getEnv("SCORING_URL", DefaultScoringURL),
		ScoringTimeout: getEnvMillis("SCORING_TIMEOUT_MS", DefaultScoringTimeout),
		FallbackDelay:  getEnvMillis("FALLBACK_DELAY_MS", DefaultFallbackDelay),
		HomeCity:       getEnv("HOME_CITY", DefaultHomeCity),
		HistoryDSN:     getEnv("HISTORY_DSN", DefaultHistoryDSN),
		LogLevel:       getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:      getEnv("LOG_FORMAT", DefaultLogFormat),
	}
}

// InitLogger builds the global zap logger from the config.
func InitLogger(cfg *Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.LogFormat == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.LogLevel, err)
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)

	return logger, nil
}

// --- helpers ---

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvMillis(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if ms, err := strconv.Atoi(value); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultValue
}
