package inventory

// ==================== Formatting ====================

// ListEntryFormat renders one backpack entry as "name: ability-text"
const ListEntryFormat = "%s: %s"

// ==================== Error Format Strings ====================

const (
	ErrFmtNotOwned     = "%w: %q"
	ErrFmtApplyEffects = "failed to use %s on %s: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgItemAcquired  = "Item obtained"
	LogMsgItemUsed      = "Item used"
	LogMsgItemNotOwned  = "Item is not in the backpack"
	LogMsgUnknownItem   = "Item is not in the catalog"
	LogMsgUseFailed     = "Item use failed"
	LogMsgPublishFailed = "Failed to publish backpack event"
)
