package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Item metric names
const (
	MetricNameItemsAcquired  = "items_acquired_total"
	MetricNameItemsConsumed  = "items_consumed_total"
	MetricNameEffectsApplied = "effects_applied_total"
)

// Battle metric names
const (
	MetricNameBattlesTotal     = "battles_total"
	MetricNameBattleRounds     = "battle_rounds"
	MetricNameCreaturesFainted = "creatures_fainted_total"
	MetricNameSimulationsTotal = "simulated_matches_total"
)

// ============================================================================
// Help Text
// ============================================================================

const (
	HelpTextItemsAcquired    = "Total number of items added to backpacks"
	HelpTextItemsConsumed    = "Total number of items consumed from backpacks"
	HelpTextEffectsApplied   = "Total number of item effects applied, by effect and outcome"
	HelpTextBattlesTotal     = "Total number of completed matches, by outcome"
	HelpTextBattleRounds     = "Number of rounds per completed match"
	HelpTextCreaturesFainted = "Total number of creatures that fainted in battle"
	HelpTextSimulationsTotal = "Total number of matches run by the simulator"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelItem    = "item"
	LabelEffect  = "effect"
	LabelOutcome = "outcome"
	LabelSide    = "side"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// BattleRoundBuckets defines the histogram buckets for match length in rounds
var BattleRoundBuckets = []float64{1, 2, 4, 6, 8, 12, 16, 24, 32, 64, 128}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnexpectedPayload = "Unexpected payload type for event"
)
