package effect

// ==================== Parsing ====================

const (
	// SegmentSeparator separates effect entries in an ability text
	SegmentSeparator = ","
	// PairSeparator separates an effect name from its value
	PairSeparator = ":"
	// MinSegmentLength is the trimmed length at or below which a segment is ignored
	MinSegmentLength = 2
)

// ==================== Error Format Strings ====================

const (
	ErrFmtInvalidDigit      = "%w: %q in %q"
	ErrFmtEmptyMagnitude    = "%w: empty magnitude"
	ErrFmtMagnitudeOverflow = "%w: %q overflows"
	ErrFmtMissingValue      = "%w: %q has no value"
	ErrFmtTargetNotInParty  = "%w: %s"
	ErrFmtInvalidValue      = "invalid value for effect %s: %w"
	ErrFmtParseAbility      = "failed to parse ability %q: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgTargetNotInParty = "Effect target is not in the party"
	LogMsgHealed           = "Creature healed"
	LogMsgHealNoEffect     = "Creature already at full health, item had no effect"
	LogMsgCured            = "Creature recovered from status"
	LogMsgStatusNoEffect   = "Creature has no status to cure, item had no effect"
	LogMsgUnhandledEffect  = "Effect has no handler, ignoring"
)
