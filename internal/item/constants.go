package item

// Catalog item names
const (
	Potion      = "Potion"
	SuperPotion = "Super Potion"
	HyperPotion = "Hyper Potion"
	FullRecover = "Full Recover"
	Antidote    = "Antidote"
)

// ==================== Error Messages ====================

const (
	ErrFmtUnknownItem    = "%w: %q"
	ErrFmtInvalidAbility = "item %q has an invalid ability text: %w"
)
