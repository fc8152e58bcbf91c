package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	// MovepoolPath points at a YAML or JSON movepool file; empty uses the embedded default
	MovepoolPath string

	EffectCacheSize int           `validate:"min=1"`
	EffectCacheTTL  time.Duration `validate:"min=0"`

	BattleMaxRounds int    `validate:"min=1"`
	BattleTieBreak  string `validate:"oneof=a b"`

	SimWorkers   int `validate:"min=1"`
	SimQueueSize int `validate:"min=1"`
	SimMatches   int `validate:"min=0"`

	TrainerName    string `validate:"required"`
	RivalName      string `validate:"required"`
	TutorialTarget string `validate:"required"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:       getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:     getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:     getEnv(EnvServiceName, DefaultServiceName),
		Version:         getEnv(EnvVersion, DefaultVersion),
		MovepoolPath:    getEnv(EnvMovepoolPath, ""),
		BattleTieBreak:  getEnv(EnvBattleTieBreak, DefaultBattleTieBreak),
		TrainerName:     getEnv(EnvTrainerName, DefaultTrainerName),
		RivalName:       getEnv(EnvRivalName, DefaultRivalName),
		TutorialTarget:  getEnv(EnvTutorialTarget, DefaultTutorialTarget),
		EffectCacheTTL:  DefaultEffectCacheTTL,
		EffectCacheSize: DefaultEffectCacheSize,
	}

	var err error
	if cfg.EffectCacheSize, err = getEnvAsInt(EnvEffectCacheSize, DefaultEffectCacheSize); err != nil {
		return nil, err
	}
	if cfg.BattleMaxRounds, err = getEnvAsInt(EnvBattleMaxRounds, DefaultBattleMaxRounds); err != nil {
		return nil, err
	}
	if cfg.SimWorkers, err = getEnvAsInt(EnvSimWorkers, DefaultSimWorkers); err != nil {
		return nil, err
	}
	if cfg.SimQueueSize, err = getEnvAsInt(EnvSimQueueSize, DefaultSimQueueSize); err != nil {
		return nil, err
	}
	if cfg.SimMatches, err = getEnvAsInt(EnvSimMatches, DefaultSimMatches); err != nil {
		return nil, err
	}

	if ttl, ok := os.LookupEnv(EnvEffectCacheTTL); ok && ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", EnvEffectCacheTTL, err)
		}
		cfg.EffectCacheTTL = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or returns a default value
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}
