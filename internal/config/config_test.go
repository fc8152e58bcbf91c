package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars resets every variable Load reads so tests start from defaults
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvServiceName, EnvVersion,
		EnvMovepoolPath, EnvEffectCacheSize, EnvEffectCacheTTL, EnvBattleMaxRounds,
		EnvBattleTieBreak, EnvSimWorkers, EnvSimQueueSize, EnvSimMatches,
		EnvTrainerName, EnvRivalName, EnvTutorialTarget,
	} {
		t.Setenv(key, "")
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		// Empty strings are treated as set for string values, so restore the required ones
		t.Setenv(EnvLogLevel, DefaultLogLevel)
		t.Setenv(EnvLogFormat, DefaultLogFormat)
		t.Setenv(EnvEnvironment, DefaultEnvironment)
		t.Setenv(EnvServiceName, DefaultServiceName)
		t.Setenv(EnvBattleTieBreak, DefaultBattleTieBreak)
		t.Setenv(EnvTrainerName, DefaultTrainerName)
		t.Setenv(EnvRivalName, DefaultRivalName)
		t.Setenv(EnvTutorialTarget, DefaultTutorialTarget)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, DefaultEffectCacheSize, cfg.EffectCacheSize)
		assert.Equal(t, DefaultEffectCacheTTL, cfg.EffectCacheTTL)
		assert.Equal(t, DefaultBattleMaxRounds, cfg.BattleMaxRounds)
		assert.Equal(t, "a", cfg.BattleTieBreak)
		assert.Equal(t, DefaultSimWorkers, cfg.SimWorkers)
		assert.Equal(t, 0, cfg.SimMatches)
		assert.Empty(t, cfg.MovepoolPath, "Empty path selects the embedded movepool")
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "prod")
		t.Setenv(EnvServiceName, "arena")
		t.Setenv(EnvMovepoolPath, "configs/movepool.json")
		t.Setenv(EnvEffectCacheSize, "8")
		t.Setenv(EnvEffectCacheTTL, "30s")
		t.Setenv(EnvBattleMaxRounds, "50")
		t.Setenv(EnvBattleTieBreak, "b")
		t.Setenv(EnvSimWorkers, "2")
		t.Setenv(EnvSimQueueSize, "4")
		t.Setenv(EnvSimMatches, "100")
		t.Setenv(EnvTrainerName, "Red")
		t.Setenv(EnvRivalName, "Blue")
		t.Setenv(EnvTutorialTarget, "Pika")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "arena", cfg.ServiceName)
		assert.Equal(t, "configs/movepool.json", cfg.MovepoolPath)
		assert.Equal(t, 8, cfg.EffectCacheSize)
		assert.Equal(t, 30*time.Second, cfg.EffectCacheTTL)
		assert.Equal(t, 50, cfg.BattleMaxRounds)
		assert.Equal(t, "b", cfg.BattleTieBreak)
		assert.Equal(t, 100, cfg.SimMatches)
		assert.Equal(t, "Pika", cfg.TutorialTarget)
	})

	t.Run("rejects non-numeric integer values", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvBattleMaxRounds, "lots")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvBattleMaxRounds)
	})

	t.Run("rejects malformed cache ttl", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvEffectCacheTTL, "ten minutes")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvEffectCacheTTL)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			LogLevel:        "info",
			LogFormat:       "text",
			Environment:     "dev",
			ServiceName:     "pokebattle",
			EffectCacheSize: 1,
			BattleMaxRounds: 1,
			BattleTieBreak:  "a",
			SimWorkers:      1,
			SimQueueSize:    1,
			TrainerName:     "John",
			RivalName:       "Mew",
			TutorialTarget:  "John",
		}
	}

	t.Run("accepts valid config", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("rejects unknown tie break side", func(t *testing.T) {
		cfg := valid()
		cfg.BattleTieBreak = "c"

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "BattleTieBreak must be one of")
	})

	t.Run("rejects zero workers and missing names", func(t *testing.T) {
		cfg := valid()
		cfg.SimWorkers = 0
		cfg.TrainerName = ""

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "SimWorkers must be at least 1")
		assert.Contains(t, err.Error(), "TrainerName is required")
	})

	t.Run("warns about idle workers", func(t *testing.T) {
		cfg := valid()
		cfg.SimWorkers = 8
		cfg.SimMatches = 2
		cfg.EffectCacheTTL = time.Minute

		warnings, err := cfg.ValidateWithWarnings()

		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "SIM_WORKERS")
	})
}
