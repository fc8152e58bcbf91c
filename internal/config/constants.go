package config

import "time"

// Default configuration values
const (
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "pokebattle"
	DefaultVersion         = "dev"
	DefaultEffectCacheSize = 64
	DefaultEffectCacheTTL  = 10 * time.Minute
	DefaultBattleMaxRounds = 1000
	DefaultBattleTieBreak  = "a"
	DefaultSimWorkers      = 4
	DefaultSimQueueSize    = 32
	DefaultSimMatches      = 0
	DefaultTrainerName     = "John"
	DefaultRivalName       = "Mew"
	DefaultTutorialTarget  = "John"
)

// Environment variable names
const (
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvEnvironment     = "ENVIRONMENT"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvMovepoolPath    = "MOVEPOOL_PATH"
	EnvEffectCacheSize = "EFFECT_CACHE_SIZE"
	EnvEffectCacheTTL  = "EFFECT_CACHE_TTL"
	EnvBattleMaxRounds = "BATTLE_MAX_ROUNDS"
	EnvBattleTieBreak  = "BATTLE_TIE_BREAK"
	EnvSimWorkers      = "SIM_WORKERS"
	EnvSimQueueSize    = "SIM_QUEUE_SIZE"
	EnvSimMatches      = "SIM_MATCHES"
	EnvTrainerName     = "TRAINER_NAME"
	EnvRivalName       = "RIVAL_NAME"
	EnvTutorialTarget  = "TUTORIAL_TARGET"
)
